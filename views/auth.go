package views

import (
	"context"

	"teamdesk"
	"teamdesk/workspace"
)

// Auth is the state behind the login screen and the identity badge.
// The session itself lives in the workspace; this view only adds the
// loading and error surface around it.
type Auth struct {
	state
	ws *workspace.Workspace
}

type AuthSnapshot struct {
	User          teamdesk.User
	Authenticated bool
	CanManage     bool
	Loading       bool
	Error         string
}

func NewAuth(ws *workspace.Workspace) *Auth {
	return &Auth{ws: ws}
}

func (v *Auth) Login(ctx context.Context, email, password string) (teamdesk.AuthPayload, error) {
	v.begin()
	payload, err := v.ws.Login(ctx, email, password)
	v.finish(err)
	return payload, err
}

func (v *Auth) Logout(ctx context.Context) error {
	v.begin()
	err := v.ws.Logout(ctx)
	v.finish(err)
	return err
}

func (v *Auth) CreateUser(ctx context.Context, req teamdesk.CreateUserRequest) (teamdesk.User, error) {
	v.begin()
	user, err := v.ws.CreateUser(ctx, req)
	v.finish(err)
	return user, err
}

func (v *Auth) Snapshot() AuthSnapshot {
	loading, errMsg := v.snapshot()
	s := v.ws.Session()
	user, authed := s.Current()
	return AuthSnapshot{
		User:          user,
		Authenticated: authed,
		CanManage:     s.IsManager(),
		Loading:       loading,
		Error:         errMsg,
	}
}
