package workspace

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"teamdesk"
	"teamdesk/errors"
)

func (w *Workspace) Teams(ctx context.Context) ([]teamdesk.Team, error) {
	return w.teams.Teams(ctx)
}

func (w *Workspace) CreateTeam(ctx context.Context, req teamdesk.CreateTeamRequest) (teamdesk.Team, error) {
	if req.TeamName == "" {
		return teamdesk.Team{}, errors.New("team name is required", errors.BadRequest())
	}

	return w.teams.CreateTeam(ctx, req)
}

func (w *Workspace) Team(ctx context.Context, id uuid.UUID) (teamdesk.Team, error) {
	return w.teams.Team(ctx, id)
}

// AddTeamMember refuses to add a user who is already in the roster, in
// either set: the same identity must never be both manager and member
// of one team. The server does not enforce this, so it is checked here
// at the cost of one extra read.
func (w *Workspace) AddTeamMember(ctx context.Context, teamID, userID uuid.UUID) error {
	team, err := w.teams.Team(ctx, teamID)
	if err != nil {
		return err
	}
	if team.Has(userID) {
		return errors.New(fmt.Sprintf("user %s is already in team %s", userID, team.TeamName), errors.BadRequest())
	}

	return w.teams.AddMember(ctx, teamID, userID)
}

func (w *Workspace) RemoveTeamMember(ctx context.Context, teamID, userID uuid.UUID) error {
	return w.teams.RemoveMember(ctx, teamID, userID)
}

// AddTeamManager applies the same roster check as AddTeamMember.
func (w *Workspace) AddTeamManager(ctx context.Context, teamID, userID uuid.UUID) error {
	team, err := w.teams.Team(ctx, teamID)
	if err != nil {
		return err
	}
	if team.Has(userID) {
		return errors.New(fmt.Sprintf("user %s is already in team %s", userID, team.TeamName), errors.BadRequest())
	}

	return w.teams.AddManager(ctx, teamID, userID)
}

func (w *Workspace) RemoveTeamManager(ctx context.Context, teamID, userID uuid.UUID) error {
	return w.teams.RemoveManager(ctx, teamID, userID)
}

// InitialNote seeds the first note of CreateTeamWithAssets.
type InitialNote struct {
	Title   string
	Content string
}

// TeamAssets is the result of CreateTeamWithAssets. Note is nil when no
// initial note was requested. On error the fields that were created
// before the failing step are still set.
type TeamAssets struct {
	Team   *teamdesk.Team
	Folder *teamdesk.Folder
	Note   *teamdesk.Note
}

// CreateTeamWithAssets creates, in order: the team, a folder named
// "<folderName> - <teamName>", and, when supplied, an initial note
// inside that folder.
//
// There is no rollback. When step 2 or 3 fails, the entities already
// created stay on the server and are returned alongside the error so
// the caller can see how far the workflow got.
func (w *Workspace) CreateTeamWithAssets(ctx context.Context, teamName, folderName string, initialNote *InitialNote) (TeamAssets, error) {
	if teamName == "" {
		return TeamAssets{}, errors.New("team name is required", errors.BadRequest())
	}
	if folderName == "" {
		return TeamAssets{}, errors.New("folder name is required", errors.BadRequest())
	}

	var result TeamAssets

	team, err := w.teams.CreateTeam(ctx, teamdesk.CreateTeamRequest{TeamName: teamName})
	if err != nil {
		w.logger.Errorf("create team with assets: team step failed: %v", err)
		return result, err
	}
	result.Team = &team

	folder, err := w.assets.CreateFolder(ctx, fmt.Sprintf("%s - %s", folderName, teamName))
	if err != nil {
		w.logger.Errorf("create team with assets: folder step failed, team %s is orphaned: %v", team.ID, err)
		return result, err
	}
	result.Folder = &folder

	if initialNote != nil {
		note, err := w.assets.CreateNote(ctx, teamdesk.CreateNoteRequest{
			Title:    initialNote.Title,
			Content:  initialNote.Content,
			FolderID: folder.ID,
		})
		if err != nil {
			w.logger.Errorf("create team with assets: note step failed, team %s and folder %s are kept: %v", team.ID, folder.ID, err)
			return result, err
		}
		result.Note = &note
	}

	return result, nil
}
