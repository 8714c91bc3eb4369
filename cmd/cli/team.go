package main

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"teamdesk"
	"teamdesk/errors"
	"teamdesk/workspace"
)

func init() {
	TeamCreateCommand.Flags().String("folder", "", "create a starter folder with this name")
	TeamCreateCommand.Flags().String("note", "", "create a starter note with this title, requires --folder")

	TeamCommand.AddCommand(&TeamListCommand)
	TeamCommand.AddCommand(&TeamCreateCommand)
	TeamCommand.AddCommand(&TeamGetCommand)
	TeamCommand.AddCommand(&TeamMemberCommand)
	TeamCommand.AddCommand(&TeamManagerCommand)

	TeamMemberCommand.AddCommand(rosterCommand("add", "member"))
	TeamMemberCommand.AddCommand(rosterCommand("rm", "member"))
	TeamManagerCommand.AddCommand(rosterCommand("add", "manager"))
	TeamManagerCommand.AddCommand(rosterCommand("rm", "manager"))

	RootCmd.AddCommand(&TeamCommand)
}

var TeamCommand = cobra.Command{
	Use:   "team",
	Short: "Manage teams",
	Long:  "Manage teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var TeamListCommand = cobra.Command{
	Use:   "ls",
	Short: "List the teams you belong to",
	Long:  "List the teams you belong to",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		teams, err := ws.Teams(cmd.Context())
		if err != nil {
			return err
		}

		for _, team := range teams {
			data, err := json.Marshal(team)
			if err != nil {
				return err
			}
			cmd.Println(string(data))
		}
		return nil
	},
}

var TeamCreateCommand = cobra.Command{
	Use:   "create <name>",
	Short: "Create a team, optionally with a starter folder and note",
	Long:  "Create a team, optionally with a starter folder and note",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("takes only one argument: the team name")
		}

		folderName := cmd.Flag("folder").Value.String()
		noteTitle := cmd.Flag("note").Value.String()
		if noteTitle != "" && folderName == "" {
			return errors.New("--note requires --folder")
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		if folderName == "" {
			team, err := ws.CreateTeam(cmd.Context(), teamdesk.CreateTeamRequest{TeamName: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd, team)
		}

		var note *workspace.InitialNote
		if noteTitle != "" {
			note = &workspace.InitialNote{Title: noteTitle}
		}

		result, err := ws.CreateTeamWithAssets(cmd.Context(), args[0], folderName, note)
		if err != nil {
			return err
		}
		return printJSON(cmd, result)
	},
}

var TeamGetCommand = cobra.Command{
	Use:   "get <team-id>",
	Short: "Show one team with its roster",
	Long:  "Show one team with its roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("takes only one argument: the team id")
		}

		teamID, err := uuid.Parse(args[0])
		if err != nil {
			return errors.New("invalid team id", errors.WithCause(err))
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		team, err := ws.Team(cmd.Context(), teamID)
		if err != nil {
			return err
		}
		return printJSON(cmd, team)
	},
}

var TeamMemberCommand = cobra.Command{
	Use:   "member",
	Short: "Manage team members",
	Long:  "Manage team members",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var TeamManagerCommand = cobra.Command{
	Use:   "manager",
	Short: "Manage team managers",
	Long:  "Manage team managers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func rosterCommand(verb, role string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <team-id> <user-id>",
		Short: verb + " a " + role,
		Long:  verb + " a " + role,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("takes two arguments: team id and user id")
			}

			teamID, err := uuid.Parse(args[0])
			if err != nil {
				return errors.New("invalid team id", errors.WithCause(err))
			}
			userID, err := uuid.Parse(args[1])
			if err != nil {
				return errors.New("invalid user id", errors.WithCause(err))
			}

			ws, release, err := openWorkspace()
			if err != nil {
				return err
			}
			defer release()

			ctx := cmd.Context()
			switch {
			case role == "member" && verb == "add":
				err = ws.AddTeamMember(ctx, teamID, userID)
			case role == "member" && verb == "rm":
				err = ws.RemoveTeamMember(ctx, teamID, userID)
			case role == "manager" && verb == "add":
				err = ws.AddTeamManager(ctx, teamID, userID)
			case role == "manager" && verb == "rm":
				err = ws.RemoveTeamManager(ctx, teamID, userID)
			}
			if err != nil {
				return err
			}

			cmd.Println("done")
			return nil
		},
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}
