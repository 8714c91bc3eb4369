// Package workspace is the single entry point over the three backends:
// identity (GraphQL), teams and assets (REST). It adds the composite
// workflows that span services and owns the login/logout orchestration
// around the session.
package workspace

import (
	"context"

	"teamdesk"
	"teamdesk/errors"
	"teamdesk/log"
	"teamdesk/session"
)

type Workspace struct {
	identity teamdesk.IdentityBackend
	teams    teamdesk.TeamBackend
	assets   teamdesk.AssetBackend

	session *session.Session
	logger  log.Logger
}

func New(identity teamdesk.IdentityBackend, teams teamdesk.TeamBackend, assets teamdesk.AssetBackend, s *session.Session, logger log.Logger) *Workspace {
	return &Workspace{
		identity: identity,
		teams:    teams,
		assets:   assets,
		session:  s,
		logger:   logger,
	}
}

func (w *Workspace) Session() *session.Session {
	return w.session
}

// ----------------------------------------------------------------------------
// Identity

func (w *Workspace) Users(ctx context.Context) ([]teamdesk.User, error) {
	return w.identity.FetchUsers(ctx)
}

func (w *Workspace) CreateUser(ctx context.Context, req teamdesk.CreateUserRequest) (teamdesk.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return teamdesk.User{}, errors.New("username, email and password are required", errors.BadRequest())
	}
	if req.Role != teamdesk.RoleManager && req.Role != teamdesk.RoleMember {
		return teamdesk.User{}, errors.New("role must be manager or member", errors.BadRequest())
	}

	return w.identity.CreateUser(ctx, req)
}

// Login authenticates against the user service and, on success, moves
// the session to authenticated with the pair persisted. On failure the
// session does not change state.
func (w *Workspace) Login(ctx context.Context, email, password string) (teamdesk.AuthPayload, error) {
	if email == "" || password == "" {
		return teamdesk.AuthPayload{}, errors.New("email and password are required", errors.BadRequest())
	}

	payload, err := w.identity.Login(ctx, email, password)
	if err != nil {
		w.logger.Error("login failed:", err)
		return teamdesk.AuthPayload{}, err
	}

	if err := w.session.Set(payload.Token, payload.User); err != nil {
		return teamdesk.AuthPayload{}, err
	}

	return payload, nil
}

// Logout clears the session unconditionally: a failing remote
// invalidation call must not keep the user logged in locally. The
// remote error, when there is one, is still returned so the caller can
// surface it.
func (w *Workspace) Logout(ctx context.Context) error {
	remoteErr := w.identity.Logout(ctx)
	if remoteErr != nil {
		w.logger.Error("remote logout failed, clearing local session anyway:", remoteErr)
	}

	if err := w.session.Clear(); err != nil {
		return err
	}

	return remoteErr
}
