package workspace

import (
	"context"

	"github.com/google/uuid"

	"teamdesk"
	"teamdesk/errors"
)

func (w *Workspace) Folders(ctx context.Context) ([]teamdesk.Folder, error) {
	return w.assets.Folders(ctx)
}

func (w *Workspace) CreateFolder(ctx context.Context, name string) (teamdesk.Folder, error) {
	if name == "" {
		return teamdesk.Folder{}, errors.New("folder name is required", errors.BadRequest())
	}

	return w.assets.CreateFolder(ctx, name)
}

func (w *Workspace) Folder(ctx context.Context, id uuid.UUID) (teamdesk.Folder, error) {
	return w.assets.Folder(ctx, id)
}

func (w *Workspace) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	return w.assets.DeleteFolder(ctx, id)
}

func (w *Workspace) Notes(ctx context.Context) ([]teamdesk.Note, error) {
	return w.assets.Notes(ctx)
}

func (w *Workspace) CreateNote(ctx context.Context, req teamdesk.CreateNoteRequest) (teamdesk.Note, error) {
	if req.Title == "" {
		return teamdesk.Note{}, errors.New("note title is required", errors.BadRequest())
	}
	if req.FolderID == uuid.Nil {
		return teamdesk.Note{}, errors.New("note folder is required", errors.BadRequest())
	}

	return w.assets.CreateNote(ctx, req)
}

func (w *Workspace) Note(ctx context.Context, id uuid.UUID) (teamdesk.Note, error) {
	return w.assets.Note(ctx, id)
}

func (w *Workspace) UpdateNote(ctx context.Context, id uuid.UUID, title, content string) (teamdesk.Note, error) {
	if title == "" {
		return teamdesk.Note{}, errors.New("note title is required", errors.BadRequest())
	}

	return w.assets.UpdateNote(ctx, id, title, content)
}

func (w *Workspace) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return w.assets.DeleteNote(ctx, id)
}

func (w *Workspace) ShareFolder(ctx context.Context, folderID, userID uuid.UUID, perm teamdesk.Permission) error {
	return w.assets.ShareFolder(ctx, folderID, userID, perm)
}

func (w *Workspace) RevokeFolderSharing(ctx context.Context, folderID, userID uuid.UUID) error {
	return w.assets.RevokeFolderSharing(ctx, folderID, userID)
}

func (w *Workspace) FolderSharings(ctx context.Context, folderID uuid.UUID) ([]teamdesk.Sharing, error) {
	return w.assets.FolderSharings(ctx, folderID)
}

func (w *Workspace) ShareNote(ctx context.Context, noteID, userID uuid.UUID, perm teamdesk.Permission) error {
	return w.assets.ShareNote(ctx, noteID, userID, perm)
}

func (w *Workspace) RevokeNoteSharing(ctx context.Context, noteID, userID uuid.UUID) error {
	return w.assets.RevokeNoteSharing(ctx, noteID, userID)
}

func (w *Workspace) NoteSharings(ctx context.Context, noteID uuid.UUID) ([]teamdesk.Sharing, error) {
	return w.assets.NoteSharings(ctx, noteID)
}
