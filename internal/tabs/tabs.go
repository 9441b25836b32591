// Package tabs keeps a set of labelled panels of which exactly one is mounted at a time.
package tabs

import (
	"errors"
	"fmt"
)

// ErrUnknownTab is returned when selecting an id that was not registered.
var ErrUnknownTab = errors.New("tabs: unknown tab")

// Tab registers a panel constructor under an id.
type Tab[P any] struct {
	ID    string
	Label string
	New   func() P
}

// Container mounts the panel of the active tab. Switching tabs drops the previous panel
// and builds a fresh one, so transient panel state does not survive a switch.
type Container[P any] struct {
	tabs   []Tab[P]
	active int
	panel  P
}

// New creates a container with the first tab active. It fails on an empty or duplicated tab list.
func New[P any](tabs []Tab[P]) (*Container[P], error) {
	if len(tabs) == 0 {
		return nil, errors.New("tabs: no tabs")
	}
	seen := make(map[string]bool, len(tabs))
	for _, t := range tabs {
		if t.New == nil {
			return nil, fmt.Errorf("tabs: tab %q has no constructor", t.ID)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("tabs: duplicate tab %q", t.ID)
		}
		seen[t.ID] = true
	}
	c := &Container[P]{tabs: tabs}
	c.panel = tabs[0].New()
	return c, nil
}

// Tabs returns the registered tabs in display order.
func (c *Container[P]) Tabs() []Tab[P] {
	return c.tabs
}

// Active returns the id of the active tab.
func (c *Container[P]) Active() string {
	return c.tabs[c.active].ID
}

// ActiveIndex returns the position of the active tab.
func (c *Container[P]) ActiveIndex() int {
	return c.active
}

// Panel returns the mounted panel.
func (c *Container[P]) Panel() P {
	return c.panel
}

// Select activates the tab with id. An unknown id leaves the container unchanged.
func (c *Container[P]) Select(id string) error {
	for i, t := range c.tabs {
		if t.ID == id {
			c.mount(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTab, id)
}

// Next activates the following tab, wrapping around.
func (c *Container[P]) Next() {
	c.mount((c.active + 1) % len(c.tabs))
}

// Prev activates the preceding tab, wrapping around.
func (c *Container[P]) Prev() {
	c.mount((c.active - 1 + len(c.tabs)) % len(c.tabs))
}

func (c *Container[P]) mount(i int) {
	c.active = i
	c.panel = c.tabs[i].New()
}
