package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"teamdesk"
	"teamdesk/errors"
	"teamdesk/log"
	"teamdesk/session"
)

// In-memory backends, enough behaviour to drive the facade.

type fakeIdentity struct {
	payload   teamdesk.AuthPayload
	loginErr  error
	logoutErr error

	users []teamdesk.User
}

func (f *fakeIdentity) FetchUsers(context.Context) ([]teamdesk.User, error) {
	return f.users, nil
}

func (f *fakeIdentity) CreateUser(_ context.Context, req teamdesk.CreateUserRequest) (teamdesk.User, error) {
	user := teamdesk.User{ID: uuid.New(), Username: req.Username, Email: req.Email, Role: req.Role}
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeIdentity) Login(context.Context, string, string) (teamdesk.AuthPayload, error) {
	if f.loginErr != nil {
		return teamdesk.AuthPayload{}, f.loginErr
	}
	return f.payload, nil
}

func (f *fakeIdentity) Logout(context.Context) error {
	return f.logoutErr
}

type fakeTeams struct {
	teams map[uuid.UUID]teamdesk.Team

	createErr error
	getErr    error

	addedMembers  []uuid.UUID
	addedManagers []uuid.UUID
}

func newFakeTeams() *fakeTeams {
	return &fakeTeams{teams: map[uuid.UUID]teamdesk.Team{}}
}

func (f *fakeTeams) Teams(context.Context) ([]teamdesk.Team, error) {
	teams := make([]teamdesk.Team, 0, len(f.teams))
	for _, team := range f.teams {
		teams = append(teams, team)
	}
	return teams, nil
}

func (f *fakeTeams) CreateTeam(_ context.Context, req teamdesk.CreateTeamRequest) (teamdesk.Team, error) {
	if f.createErr != nil {
		return teamdesk.Team{}, f.createErr
	}
	team := teamdesk.Team{
		ID:        uuid.New(),
		TeamName:  req.TeamName,
		Managers:  []teamdesk.TeamMember{},
		Members:   []teamdesk.TeamMember{},
		CreatedAt: time.Now(),
	}
	f.teams[team.ID] = team
	return team, nil
}

func (f *fakeTeams) Team(_ context.Context, id uuid.UUID) (teamdesk.Team, error) {
	if f.getErr != nil {
		return teamdesk.Team{}, f.getErr
	}
	team, ok := f.teams[id]
	if !ok {
		return teamdesk.Team{}, errors.New("Team not found", errors.NotFound())
	}
	return team, nil
}

func (f *fakeTeams) AddMember(_ context.Context, teamID, userID uuid.UUID) error {
	f.addedMembers = append(f.addedMembers, userID)
	team := f.teams[teamID]
	team.Members = append(team.Members, teamdesk.TeamMember{UserID: userID, Role: teamdesk.RoleMember})
	f.teams[teamID] = team
	return nil
}

func (f *fakeTeams) RemoveMember(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (f *fakeTeams) AddManager(_ context.Context, teamID, userID uuid.UUID) error {
	f.addedManagers = append(f.addedManagers, userID)
	team := f.teams[teamID]
	team.Managers = append(team.Managers, teamdesk.TeamMember{UserID: userID, Role: teamdesk.RoleManager})
	f.teams[teamID] = team
	return nil
}

func (f *fakeTeams) RemoveManager(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type grantCall struct {
	FolderID   uuid.UUID
	UserID     uuid.UUID
	Permission teamdesk.Permission
}

type fakeAssets struct {
	mu sync.Mutex

	folders map[uuid.UUID]teamdesk.Folder
	notes   map[uuid.UUID]teamdesk.Note

	createFolderErr error
	createNoteErr   error

	// shareErrs makes the grant for a given user fail.
	shareErrs map[uuid.UUID]error
	grants    []grantCall
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{
		folders:   map[uuid.UUID]teamdesk.Folder{},
		notes:     map[uuid.UUID]teamdesk.Note{},
		shareErrs: map[uuid.UUID]error{},
	}
}

func (f *fakeAssets) Folders(context.Context) ([]teamdesk.Folder, error) {
	folders := make([]teamdesk.Folder, 0, len(f.folders))
	for _, folder := range f.folders {
		folders = append(folders, folder)
	}
	return folders, nil
}

func (f *fakeAssets) CreateFolder(_ context.Context, name string) (teamdesk.Folder, error) {
	if f.createFolderErr != nil {
		return teamdesk.Folder{}, f.createFolderErr
	}
	folder := teamdesk.Folder{ID: uuid.New(), FolderName: name}
	f.folders[folder.ID] = folder
	return folder, nil
}

func (f *fakeAssets) Folder(_ context.Context, id uuid.UUID) (teamdesk.Folder, error) {
	folder, ok := f.folders[id]
	if !ok {
		return teamdesk.Folder{}, errors.New("folder not found", errors.NotFound())
	}
	return folder, nil
}

func (f *fakeAssets) DeleteFolder(_ context.Context, id uuid.UUID) error {
	delete(f.folders, id)
	return nil
}

func (f *fakeAssets) Notes(context.Context) ([]teamdesk.Note, error) {
	notes := make([]teamdesk.Note, 0, len(f.notes))
	for _, note := range f.notes {
		notes = append(notes, note)
	}
	return notes, nil
}

func (f *fakeAssets) CreateNote(_ context.Context, req teamdesk.CreateNoteRequest) (teamdesk.Note, error) {
	if f.createNoteErr != nil {
		return teamdesk.Note{}, f.createNoteErr
	}
	note := teamdesk.Note{ID: uuid.New(), NoteName: req.Title, NoteContent: req.Content, FolderID: req.FolderID}
	f.notes[note.ID] = note
	return note, nil
}

func (f *fakeAssets) Note(_ context.Context, id uuid.UUID) (teamdesk.Note, error) {
	note, ok := f.notes[id]
	if !ok {
		return teamdesk.Note{}, errors.New("note not found", errors.NotFound())
	}
	return note, nil
}

func (f *fakeAssets) UpdateNote(_ context.Context, id uuid.UUID, title, content string) (teamdesk.Note, error) {
	note, ok := f.notes[id]
	if !ok {
		return teamdesk.Note{}, errors.New("note not found", errors.NotFound())
	}
	note.NoteName = title
	note.NoteContent = content
	f.notes[id] = note
	return note, nil
}

func (f *fakeAssets) DeleteNote(_ context.Context, id uuid.UUID) error {
	delete(f.notes, id)
	return nil
}

func (f *fakeAssets) ShareFolder(_ context.Context, folderID, userID uuid.UUID, perm teamdesk.Permission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.shareErrs[userID]; ok {
		return err
	}
	f.grants = append(f.grants, grantCall{FolderID: folderID, UserID: userID, Permission: perm})
	return nil
}

func (f *fakeAssets) RevokeFolderSharing(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (f *fakeAssets) FolderSharings(context.Context, uuid.UUID) ([]teamdesk.Sharing, error) {
	return nil, nil
}

func (f *fakeAssets) ShareNote(context.Context, uuid.UUID, uuid.UUID, teamdesk.Permission) error {
	return nil
}

func (f *fakeAssets) RevokeNoteSharing(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (f *fakeAssets) NoteSharings(context.Context, uuid.UUID) ([]teamdesk.Sharing, error) {
	return nil, nil
}

func (f *fakeAssets) grantsSnapshot() []grantCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]grantCall(nil), f.grants...)
}

// newWorkspace wires a facade over the fakes with a fresh in-memory
// session.
func newWorkspace(identity *fakeIdentity, teams *fakeTeams, assets *fakeAssets) (*Workspace, *session.Session) {
	s := session.New(&session.MemStore{})
	return New(identity, teams, assets, s, log.Silent()), s
}
