package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"teamdesk"
	"teamdesk/errors"
)

func init() {
	ShareCommand.AddCommand(&ShareFolderCommand)
	ShareCommand.AddCommand(&ShareNoteCommand)
	ShareCommand.AddCommand(&ShareTeamCommand)

	RootCmd.AddCommand(&ShareCommand)
}

var ShareCommand = cobra.Command{
	Use:   "share",
	Short: "Share folders and notes",
	Long:  "Share folders and notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func parsePermission(raw string) (teamdesk.Permission, error) {
	perm := teamdesk.Permission(raw)
	if perm != teamdesk.PermissionRead && perm != teamdesk.PermissionWrite {
		return "", errors.New("permission must be read or write", errors.BadRequest())
	}
	return perm, nil
}

var ShareFolderCommand = cobra.Command{
	Use:   "folder <folder-id> <user-id> <read|write>",
	Short: "Grant a user access to a folder",
	Long:  "Grant a user access to a folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 {
			return errors.New("takes three arguments: folder id, user id and permission")
		}

		folderID, err := uuid.Parse(args[0])
		if err != nil {
			return errors.New("invalid folder id", errors.WithCause(err))
		}
		userID, err := uuid.Parse(args[1])
		if err != nil {
			return errors.New("invalid user id", errors.WithCause(err))
		}
		perm, err := parsePermission(args[2])
		if err != nil {
			return err
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		if err := ws.ShareFolder(cmd.Context(), folderID, userID, perm); err != nil {
			return err
		}

		cmd.Println("done")
		return nil
	},
}

var ShareNoteCommand = cobra.Command{
	Use:   "note <note-id> <user-id> <read|write>",
	Short: "Grant a user access to a note",
	Long:  "Grant a user access to a note",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 {
			return errors.New("takes three arguments: note id, user id and permission")
		}

		noteID, err := uuid.Parse(args[0])
		if err != nil {
			return errors.New("invalid note id", errors.WithCause(err))
		}
		userID, err := uuid.Parse(args[1])
		if err != nil {
			return errors.New("invalid user id", errors.WithCause(err))
		}
		perm, err := parsePermission(args[2])
		if err != nil {
			return err
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		if err := ws.ShareNote(cmd.Context(), noteID, userID, perm); err != nil {
			return err
		}

		cmd.Println("done")
		return nil
	},
}

var ShareTeamCommand = cobra.Command{
	Use:   "team <team-id> <folder-id> <read|write>",
	Short: "Share a folder with a whole team roster",
	Long: `Share a folder with a whole team roster.

Members receive the given permission, managers always receive write.
Grants that were already in place on a previous run make the whole
command fail, but the grants that did go through stay in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 {
			return errors.New("takes three arguments: team id, folder id and permission")
		}

		teamID, err := uuid.Parse(args[0])
		if err != nil {
			return errors.New("invalid team id", errors.WithCause(err))
		}
		folderID, err := uuid.Parse(args[1])
		if err != nil {
			return errors.New("invalid folder id", errors.WithCause(err))
		}
		perm, err := parsePermission(args[2])
		if err != nil {
			return err
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		report, shareErr := ws.ShareTeamAssets(cmd.Context(), teamID, folderID, perm)
		for _, failure := range report.Failures {
			logger.Errorf("grant for %s failed: %s", failure.UserID, failure.Err)
		}
		if shareErr != nil {
			return shareErr
		}

		cmd.Println(report.Message)
		return nil
	},
}
