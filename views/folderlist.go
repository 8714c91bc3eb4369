package views

import (
	"context"

	"github.com/google/uuid"

	"teamdesk"
	"teamdesk/workspace"
)

// FolderList is the state behind the folder listing screen.
type FolderList struct {
	state
	ws *workspace.Workspace

	folders []teamdesk.Folder
}

type FolderListSnapshot struct {
	Folders []teamdesk.Folder
	Loading bool
	Error   string
}

func NewFolderList(ws *workspace.Workspace) *FolderList {
	return &FolderList{ws: ws}
}

func (v *FolderList) Refresh(ctx context.Context) error {
	v.begin()
	folders, err := v.ws.Folders(ctx)
	if err == nil {
		v.mu.Lock()
		v.folders = folders
		v.mu.Unlock()
	}
	v.finish(err)
	return err
}

// CreateFolder appends the created folder to the list without refetching.
func (v *FolderList) CreateFolder(ctx context.Context, name string) (teamdesk.Folder, error) {
	v.begin()
	folder, err := v.ws.CreateFolder(ctx, name)
	if err == nil {
		v.mu.Lock()
		v.folders = append(v.folders, folder)
		v.mu.Unlock()
	}
	v.finish(err)
	return folder, err
}

// DeleteFolder drops the folder from the list once the remote delete
// succeeds.
func (v *FolderList) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	v.begin()
	err := v.ws.DeleteFolder(ctx, id)
	if err == nil {
		v.mu.Lock()
		kept := v.folders[:0]
		for _, f := range v.folders {
			if f.ID != id {
				kept = append(kept, f)
			}
		}
		v.folders = kept
		v.mu.Unlock()
	}
	v.finish(err)
	return err
}

func (v *FolderList) Snapshot() FolderListSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	folders := make([]teamdesk.Folder, len(v.folders))
	copy(folders, v.folders)
	return FolderListSnapshot{Folders: folders, Loading: v.loading, Error: v.err}
}
