package model

import "time"

// EventStatus represents the lifecycle of a contest event.
type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusOngoing  EventStatus = "ongoing"
	EventStatusFinished EventStatus = "finished"
)

// Event represents a contest event. Judges are assigned through the
// event_judges join table; a judge only sees registrations whose
// contest_name matches the title of an event they are assigned to.
type Event struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Title       string      `json:"title" gorm:"size:255;not null;uniqueIndex"`
	Description string      `json:"description" gorm:"type:text"`
	ImageURL    string      `json:"image_url" gorm:"size:512"`
	Location    string      `json:"location" gorm:"size:255"`
	EventDate   string      `json:"event_date" gorm:"size:32"`
	Status      EventStatus `json:"status" gorm:"type:varchar(20);not null;default:'upcoming';index"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Relations
	Judges []User `json:"judges,omitempty" gorm:"many2many:event_judges;"`
}
