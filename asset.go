package teamdesk

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Permission string

const (
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"
)

type Folder struct {
	ID         uuid.UUID `json:"id"`
	FolderName string    `json:"folderName"`
	Notes      []Note    `json:"notes"`
	Sharings   []Sharing `json:"sharings"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Note struct {
	ID          uuid.UUID `json:"id"`
	NoteName    string    `json:"noteName"`
	NoteContent string    `json:"noteContent"`
	FolderID    uuid.UUID `json:"folderId"`
	Sharings    []Sharing `json:"sharings"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sharing is a grant on exactly one resource: either FolderID or NoteID
// is set, never both.
type Sharing struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	Permission Permission `json:"permission"`
	FolderID   *uuid.UUID `json:"folderId,omitempty"`
	NoteID     *uuid.UUID `json:"noteId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateNoteRequest struct {
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	FolderID uuid.UUID `json:"folder_id"`
}

// AssetBackend covers the REST surface of the asset service: folders,
// notes, and the sharing subresources under each.
type AssetBackend interface {
	Folders(ctx context.Context) ([]Folder, error)
	CreateFolder(ctx context.Context, name string) (Folder, error)
	Folder(ctx context.Context, id uuid.UUID) (Folder, error)
	DeleteFolder(ctx context.Context, id uuid.UUID) error

	Notes(ctx context.Context) ([]Note, error)
	CreateNote(ctx context.Context, req CreateNoteRequest) (Note, error)
	Note(ctx context.Context, id uuid.UUID) (Note, error)
	UpdateNote(ctx context.Context, id uuid.UUID, title, content string) (Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error

	ShareFolder(ctx context.Context, folderID, userID uuid.UUID, perm Permission) error
	RevokeFolderSharing(ctx context.Context, folderID, userID uuid.UUID) error
	FolderSharings(ctx context.Context, folderID uuid.UUID) ([]Sharing, error)

	ShareNote(ctx context.Context, noteID, userID uuid.UUID, perm Permission) error
	RevokeNoteSharing(ctx context.Context, noteID, userID uuid.UUID) error
	NoteSharings(ctx context.Context, noteID uuid.UUID) ([]Sharing, error)
}
