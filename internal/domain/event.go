package domain

import (
	"context"
	"time"
)

// Event is a calendar entry with an optional team and a set of participating employees.
// swagger:model Event
type Event struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Details   string     `json:"details"`
	Start     time.Time  `json:"start"`
	End       time.Time  `json:"end"`
	Team      *Team      `json:"team"`
	Employees []Employee `json:"employees"`
}

// EventInput carries the writable fields of an event. ID is ignored on create.
type EventInput struct {
	ID          int64
	Title       string
	Details     string
	Start       time.Time
	End         time.Time
	TeamID      *int64
	EmployeeIDs []int64
}

// NewEventInput returns an EventInput with timestamps truncated to the precision kept by the store.
func NewEventInput(title, details string, start, end time.Time, teamID *int64, employeeIDs []int64) *EventInput {
	return &EventInput{
		Title:       title,
		Details:     details,
		Start:       start.Truncate(time.Millisecond),
		End:         end.Truncate(time.Millisecond),
		TeamID:      teamID,
		EmployeeIDs: employeeIDs,
	}
}

// EventsQuery is an inclusive time window. A nil bound is unbounded in that direction.
type EventsQuery struct {
	Start *time.Time
	End   *time.Time
}

// Inverted reports whether both bounds are set and start is after end.
func (q EventsQuery) Inverted() bool {
	return q.Start != nil && q.End != nil && q.Start.After(*q.End)
}

// EventRepository defines the interface for event storage. Writes join the transaction
// carried by ctx, if any.
type EventRepository interface {
	List(ctx context.Context, query EventsQuery) ([]*Event, error)
	Create(ctx context.Context, input *EventInput) (int64, error)
	Update(ctx context.Context, input *EventInput) error
	Delete(ctx context.Context, id int64) error
	// ClearEmployees removes every employee association of the event.
	ClearEmployees(ctx context.Context, eventID int64) error
	// AddEmployees links the given employees to the event. An empty list is a no-op.
	AddEmployees(ctx context.Context, eventID int64, employeeIDs []int64) error
}

// EventService defines the business logic for events.
type EventService interface {
	ListEvents(ctx context.Context, query EventsQuery) ([]*Event, error)
	CreateEvent(ctx context.Context, input *EventInput) (int64, error)
	UpdateEvent(ctx context.Context, input *EventInput) error
	DeleteEvent(ctx context.Context, id int64) error
}

// TransactionManager runs fn inside a transaction carried by the context passed to fn.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
