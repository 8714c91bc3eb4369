package workspace

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"teamdesk"
	"teamdesk/errors"
)

// Grant records one sharing request that succeeded.
type Grant struct {
	UserID     uuid.UUID
	Permission teamdesk.Permission
}

// GrantFailure records one sharing request that failed. The other
// grants of the same fan-out may well have taken effect server-side,
// there is no compensation.
type GrantFailure struct {
	UserID     uuid.UUID
	Permission teamdesk.Permission
	Err        error
}

// ShareReport is the outcome of a share fan-out. Full success, partial
// success and total failure are all distinguishable: Granted holds what
// went through, Failures what did not.
//
// Attempted is the roster size (members + managers). The self-skip
// does not reduce it, so Message can read "shared with 3 team members"
// when only 2 requests were issued. Callers display Message verbatim.
type ShareReport struct {
	Attempted int
	Granted   []Grant
	Failures  []GrantFailure
	Message   string
}

func (r ShareReport) AllGranted() bool {
	return len(r.Failures) == 0
}

// ShareTeamAssets shares a folder with the whole roster of a team:
// every member gets perm, every manager gets write. A roster entry
// matching the caller's own identity is skipped. The grants are issued
// concurrently with no ordering between them, and the call returns once
// all of them have settled.
//
// The returned error is non-nil as soon as one grant failed, even
// though others succeeded, the report carries the detail.
func (w *Workspace) ShareTeamAssets(ctx context.Context, teamID, folderID uuid.UUID, perm teamdesk.Permission) (ShareReport, error) {
	team, err := w.teams.Team(ctx, teamID)
	if err != nil {
		w.logger.Errorf("share team assets: could not fetch roster of %s: %v", teamID, err)
		return ShareReport{}, err
	}

	caller, _ := w.session.Current()

	type target struct {
		userID uuid.UUID
		perm   teamdesk.Permission
	}

	targets := make([]target, 0, len(team.Members)+len(team.Managers))
	for _, member := range team.Members {
		if member.UserID == caller.ID {
			continue
		}
		targets = append(targets, target{userID: member.UserID, perm: perm})
	}
	for _, manager := range team.Managers {
		if manager.UserID == caller.ID {
			continue
		}
		targets = append(targets, target{userID: manager.UserID, perm: teamdesk.PermissionWrite})
	}

	report := ShareReport{
		Attempted: len(team.Members) + len(team.Managers),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, tg := range targets {
		wg.Add(1)
		go func(tg target) {
			defer wg.Done()

			err := w.assets.ShareFolder(ctx, folderID, tg.userID, tg.perm)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failures = append(report.Failures, GrantFailure{UserID: tg.userID, Permission: tg.perm, Err: err})
				return
			}
			report.Granted = append(report.Granted, Grant{UserID: tg.userID, Permission: tg.perm})
		}(tg)
	}
	wg.Wait()

	report.Message = fmt.Sprintf("Assets shared with %d team members", report.Attempted)

	if len(report.Failures) > 0 {
		err := errors.New(fmt.Sprintf("%d of %d grants failed", len(report.Failures), len(targets)))
		w.logger.Errorf("share team assets: %v", err)
		return report, err
	}

	return report, nil
}
