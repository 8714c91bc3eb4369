package teamdesk

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	UserID   uuid.UUID `json:"userId"`
	UserName string    `json:"userName"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

type Team struct {
	ID       uuid.UUID    `json:"id"`
	TeamName string       `json:"teamName"`
	Managers []TeamMember `json:"managers"`
	Members  []TeamMember `json:"members"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Has reports whether userID appears anywhere in the roster, managers
// included.
func (t Team) Has(userID uuid.UUID) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	for _, m := range t.Managers {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

type TeamMemberRef struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName,omitempty"`
}

type CreateTeamRequest struct {
	TeamName string          `json:"teamName"`
	Managers []TeamMemberRef `json:"managers,omitempty"`
	Members  []TeamMemberRef `json:"members,omitempty"`
}

// TeamBackend covers the REST team surface of the user service. Every
// mutation is keyed by team id in the URL path.
type TeamBackend interface {
	Teams(ctx context.Context) ([]Team, error)
	CreateTeam(ctx context.Context, req CreateTeamRequest) (Team, error)
	Team(ctx context.Context, id uuid.UUID) (Team, error)

	AddMember(ctx context.Context, teamID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error
	AddManager(ctx context.Context, teamID, userID uuid.UUID) error
	RemoveManager(ctx context.Context, teamID, userID uuid.UUID) error
}
