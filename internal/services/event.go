package services

import (
	"context"
	"fmt"
	"time"

	"teamcalendar/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	txManager      domain.TransactionManager
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, txManager domain.TransactionManager, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		txManager:      txManager,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context, query domain.EventsQuery) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if query.Inverted() {
		return nil, fmt.Errorf("%w: start must not be after end", domain.ErrInvalidInput)
	}
	events, err := s.eventRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// CreateEvent inserts the event and its participants in one transaction.
func (s *eventService) CreateEvent(ctx context.Context, input *domain.EventInput) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateEventInput(input); err != nil {
		return 0, err
	}
	employeeIDs := uniqueIDs(input.EmployeeIDs)

	var id int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.eventRepo.Create(ctx, input)
		if err != nil {
			return err
		}
		return s.eventRepo.AddEmployees(ctx, id, employeeIDs)
	})
	if err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}
	return id, nil
}

// UpdateEvent rewrites the event and replaces its participant set in one transaction.
func (s *eventService) UpdateEvent(ctx context.Context, input *domain.EventInput) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireID(input.ID); err != nil {
		return err
	}
	if err := validateEventInput(input); err != nil {
		return err
	}
	employeeIDs := uniqueIDs(input.EmployeeIDs)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.eventRepo.Update(ctx, input); err != nil {
			return err
		}
		if err := s.eventRepo.ClearEmployees(ctx, input.ID); err != nil {
			return err
		}
		return s.eventRepo.AddEmployees(ctx, input.ID, employeeIDs)
	})
	if err != nil {
		return fmt.Errorf("update event %d: %w", input.ID, err)
	}
	return nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireID(id); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	return nil
}

// validateEventInput checks the time range and ids. Title and details may be empty.
func validateEventInput(in *domain.EventInput) error {
	if in.Start.IsZero() || in.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", domain.ErrInvalidInput)
	}
	if in.Start.After(in.End) {
		return fmt.Errorf("%w: start must not be after end", domain.ErrInvalidInput)
	}
	if in.TeamID != nil && *in.TeamID <= 0 {
		return fmt.Errorf("%w: teamId must be positive", domain.ErrInvalidInput)
	}
	for _, id := range in.EmployeeIDs {
		if id <= 0 {
			return fmt.Errorf("%w: employee ids must be positive", domain.ErrInvalidInput)
		}
	}
	return nil
}
