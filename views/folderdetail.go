package views

import (
	"context"

	"github.com/google/uuid"

	"teamdesk"
	"teamdesk/workspace"
)

// FolderDetail is the state behind a single folder screen: the folder
// itself plus its notes. Mutations refetch the whole folder so the
// note list never drifts from the server.
type FolderDetail struct {
	state
	ws       *workspace.Workspace
	folderID uuid.UUID

	folder teamdesk.Folder
	loaded bool
}

type FolderDetailSnapshot struct {
	Folder  teamdesk.Folder
	Loaded  bool
	Loading bool
	Error   string
}

func NewFolderDetail(ws *workspace.Workspace, folderID uuid.UUID) *FolderDetail {
	return &FolderDetail{ws: ws, folderID: folderID}
}

func (v *FolderDetail) Refresh(ctx context.Context) error {
	v.begin()
	err := v.refetch(ctx)
	v.finish(err)
	return err
}

func (v *FolderDetail) CreateNote(ctx context.Context, title, content string) (teamdesk.Note, error) {
	v.begin()
	note, err := v.ws.CreateNote(ctx, teamdesk.CreateNoteRequest{
		Title:    title,
		Content:  content,
		FolderID: v.folderID,
	})
	if err == nil {
		err = v.refetch(ctx)
	}
	v.finish(err)
	return note, err
}

func (v *FolderDetail) UpdateNote(ctx context.Context, noteID uuid.UUID, title, content string) (teamdesk.Note, error) {
	v.begin()
	note, err := v.ws.UpdateNote(ctx, noteID, title, content)
	if err == nil {
		err = v.refetch(ctx)
	}
	v.finish(err)
	return note, err
}

func (v *FolderDetail) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	v.begin()
	err := v.ws.DeleteNote(ctx, noteID)
	if err == nil {
		err = v.refetch(ctx)
	}
	v.finish(err)
	return err
}

func (v *FolderDetail) refetch(ctx context.Context) error {
	folder, err := v.ws.Folder(ctx, v.folderID)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.folder = folder
	v.loaded = true
	v.mu.Unlock()
	return nil
}

func (v *FolderDetail) Snapshot() FolderDetailSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return FolderDetailSnapshot{Folder: v.folder, Loaded: v.loaded, Loading: v.loading, Error: v.err}
}
