package services

import (
	"context"
	"fmt"
	"time"

	"teamcalendar/internal/domain"
)

type teamService struct {
	teamRepo       domain.TeamRepository
	contextTimeout time.Duration
}

func NewTeamService(teamRepo domain.TeamRepository, timeout time.Duration) domain.TeamService {
	return &teamService{
		teamRepo:       teamRepo,
		contextTimeout: timeout,
	}
}

func (s *teamService) ListTeams(ctx context.Context, includeDisabled bool) ([]*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	teams, err := s.teamRepo.List(ctx, includeDisabled)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	if teams == nil {
		teams = []*domain.Team{}
	}
	return teams, nil
}

func (s *teamService) CreateTeam(ctx context.Context, team *domain.Team) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateTeam(team); err != nil {
		return 0, err
	}
	team.Disabled = false
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return 0, fmt.Errorf("create team: %w", err)
	}
	return team.ID, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, team *domain.Team) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireID(team.ID); err != nil {
		return err
	}
	if err := validateTeam(team); err != nil {
		return err
	}
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return fmt.Errorf("update team %d: %w", team.ID, err)
	}
	return nil
}

func (s *teamService) DisableTeam(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireID(id); err != nil {
		return err
	}
	if err := s.teamRepo.Disable(ctx, id); err != nil {
		return fmt.Errorf("disable team %d: %w", id, err)
	}
	return nil
}

func validateTeam(t *domain.Team) error {
	if err := requireName("name", &t.Name); err != nil {
		return err
	}
	if err := requireColor("primaryColor", t.PrimaryColor); err != nil {
		return err
	}
	return requireColor("secondaryColor", t.SecondaryColor)
}
