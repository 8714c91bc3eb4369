package views

import (
	"context"

	"teamdesk"
	"teamdesk/workspace"
)

// TeamList is the state behind the team listing screen.
type TeamList struct {
	state
	ws *workspace.Workspace

	teams []teamdesk.Team
}

type TeamListSnapshot struct {
	Teams   []teamdesk.Team
	Loading bool
	Error   string
}

func NewTeamList(ws *workspace.Workspace) *TeamList {
	return &TeamList{ws: ws}
}

func (v *TeamList) Refresh(ctx context.Context) error {
	v.begin()
	teams, err := v.ws.Teams(ctx)
	if err == nil {
		v.mu.Lock()
		v.teams = teams
		v.mu.Unlock()
	}
	v.finish(err)
	return err
}

// CreateTeam appends the created team to the list without refetching.
func (v *TeamList) CreateTeam(ctx context.Context, req teamdesk.CreateTeamRequest) (teamdesk.Team, error) {
	v.begin()
	team, err := v.ws.CreateTeam(ctx, req)
	if err == nil {
		v.mu.Lock()
		v.teams = append(v.teams, team)
		v.mu.Unlock()
	}
	v.finish(err)
	return team, err
}

func (v *TeamList) Snapshot() TeamListSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	teams := make([]teamdesk.Team, len(v.teams))
	copy(teams, v.teams)
	return TeamListSnapshot{Teams: teams, Loading: v.loading, Error: v.err}
}
