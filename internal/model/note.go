package model

import "time"

// Reminder schedules a one-off notification for a note.
type Reminder struct {
	Time     time.Time `json:"time"`
	Notified bool      `json:"notified"`
}

type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
	Reminder  *Reminder `json:"reminder,omitempty"`
}

func (n *Note) GetID() string   { return n.ID }
func (n *Note) SetID(id string) { n.ID = id }

// ReminderDue reports whether the reminder time has passed without a notification.
func (n *Note) ReminderDue(now time.Time) bool {
	return n.Reminder != nil && !n.Reminder.Notified && !n.Reminder.Time.After(now)
}
