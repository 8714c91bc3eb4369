package views

import (
	"context"

	"teamdesk"
	"teamdesk/workspace"
)

type UserList struct {
	state
	ws *workspace.Workspace

	users []teamdesk.User
}

type UserListSnapshot struct {
	Users   []teamdesk.User
	Loading bool
	Error   string
}

func NewUserList(ws *workspace.Workspace) *UserList {
	return &UserList{ws: ws}
}

func (v *UserList) Refresh(ctx context.Context) error {
	v.begin()
	users, err := v.ws.Users(ctx)
	if err == nil {
		v.mu.Lock()
		v.users = users
		v.mu.Unlock()
	}
	v.finish(err)
	return err
}

func (v *UserList) Snapshot() UserListSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	users := make([]teamdesk.User, len(v.users))
	copy(users, v.users)
	return UserListSnapshot{Users: users, Loading: v.loading, Error: v.err}
}
