package domain

import "context"

// Team groups events under a pair of display colors.
// swagger:model Team
type Team struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	Disabled       bool   `json:"disabled"`
}

// NewTeam returns an enabled Team. ID is set by the repository on create.
func NewTeam(name, primaryColor, secondaryColor string) *Team {
	return &Team{
		Name:           name,
		PrimaryColor:   primaryColor,
		SecondaryColor: secondaryColor,
	}
}

// TeamRepository defines the interface for team storage
type TeamRepository interface {
	List(ctx context.Context, includeDisabled bool) ([]*Team, error)
	Create(ctx context.Context, team *Team) error
	Update(ctx context.Context, team *Team) error
	Disable(ctx context.Context, id int64) error
}

// TeamService defines the business logic for teams.
type TeamService interface {
	ListTeams(ctx context.Context, includeDisabled bool) ([]*Team, error)
	CreateTeam(ctx context.Context, team *Team) (int64, error)
	UpdateTeam(ctx context.Context, team *Team) error
	DisableTeam(ctx context.Context, id int64) error
}
