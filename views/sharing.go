package views

import (
	"context"

	"github.com/google/uuid"

	"teamdesk"
	"teamdesk/workspace"
)

// Sharing carries no data of its own, only the in-flight and error
// state of the sharing dialogs.
type Sharing struct {
	state
	ws *workspace.Workspace
}

type SharingSnapshot struct {
	Loading bool
	Error   string
}

func NewSharing(ws *workspace.Workspace) *Sharing {
	return &Sharing{ws: ws}
}

func (v *Sharing) ShareFolder(ctx context.Context, folderID, userID uuid.UUID, perm teamdesk.Permission) error {
	v.begin()
	err := v.ws.ShareFolder(ctx, folderID, userID, perm)
	v.finish(err)
	return err
}

func (v *Sharing) ShareNote(ctx context.Context, noteID, userID uuid.UUID, perm teamdesk.Permission) error {
	v.begin()
	err := v.ws.ShareNote(ctx, noteID, userID, perm)
	v.finish(err)
	return err
}

func (v *Sharing) ShareTeamAssets(ctx context.Context, teamID, folderID uuid.UUID, perm teamdesk.Permission) (workspace.ShareReport, error) {
	v.begin()
	report, err := v.ws.ShareTeamAssets(ctx, teamID, folderID, perm)
	v.finish(err)
	return report, err
}

func (v *Sharing) Snapshot() SharingSnapshot {
	loading, errMsg := v.snapshot()
	return SharingSnapshot{Loading: loading, Error: errMsg}
}
