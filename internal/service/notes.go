package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aebalz/ubermensch-tracker/internal/model"
)

// NoteTimeLayout formats note timestamps in the text export.
const NoteTimeLayout = "1/2/2006, 3:04:05 PM"

// Notes is the free-text journal, newest note first.
type Notes struct {
	*Tracker[model.Note, *model.Note]
	clock clock
}

// Add stores a trimmed note at the top of the list. remindAt, when non-nil, schedules a reminder.
func (n *Notes) Add(ctx context.Context, content string, remindAt *time.Time) (model.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return model.Note{}, fmt.Errorf("%w: note content is empty", ErrValidation)
	}
	note := model.Note{Content: content, CreatedAt: n.clock.Now()}
	if remindAt != nil {
		note.Reminder = &model.Reminder{Time: *remindAt}
	}
	return n.Create(ctx, note)
}

// ExportText writes every note as "[timestamp]\ncontent\n\n", separated by "---\n\n".
func (n *Notes) ExportText(ctx context.Context, w io.Writer) error {
	items, err := n.List(ctx)
	if err != nil {
		return err
	}
	blocks := make([]string, len(items))
	for i, note := range items {
		blocks[i] = fmt.Sprintf("[%s]\n%s\n\n", note.CreatedAt.In(n.clock.loc).Format(NoteTimeLayout), note.Content)
	}
	_, err = io.WriteString(w, strings.Join(blocks, "---\n\n"))
	return err
}

// DueReminders returns the notes whose reminder time has passed without a notification.
func (n *Notes) DueReminders(ctx context.Context, now time.Time) ([]model.Note, error) {
	items, err := n.List(ctx)
	if err != nil {
		return nil, err
	}
	due := []model.Note{}
	for i := range items {
		if items[i].ReminderDue(now) {
			due = append(due, items[i])
		}
	}
	return due, nil
}

// MarkNotified flags the reminders of the given notes as delivered. Unknown ids are ignored.
func (n *Notes) MarkNotified(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	_, err := n.Repo.Mutate(ctx, func(items []model.Note) ([]model.Note, error) {
		for i := range items {
			if want[items[i].ID] && items[i].Reminder != nil {
				items[i].Reminder.Notified = true
			}
		}
		return items, nil
	})
	return wrap(err)
}

func noteDefaults(clk clock) func(*model.Note) {
	return func(note *model.Note) {
		note.Content = strings.TrimSpace(note.Content)
		if note.CreatedAt.IsZero() {
			note.CreatedAt = clk.Now()
		}
	}
}
