package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"teamdesk"
	"teamdesk/errors"
)

func init() {
	UserCommand.AddCommand(&UserListCommand)
	UserCommand.AddCommand(&UserCreateCommand)

	RootCmd.AddCommand(&LoginCommand)
	RootCmd.AddCommand(&LogoutCommand)
	RootCmd.AddCommand(&WhoamiCommand)
	RootCmd.AddCommand(&UserCommand)
}

var LoginCommand = cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in against the user service",
	Long:  "Log in against the user service",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("takes two arguments: email and password")
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		payload, err := ws.Login(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		cmd.Printf("logged in as %s (%s)\n", payload.User.Username, payload.User.Role)
		return nil
	},
}

var LogoutCommand = cobra.Command{
	Use:   "logout",
	Short: "Log out and drop the local session",
	Long:  "Log out and drop the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		// The local session is dropped even when the server call
		// fails.
		err = ws.Logout(cmd.Context())
		if err != nil {
			logger.Error("remote logout failed:", err)
		}

		cmd.Println("logged out")
		return nil
	},
}

var WhoamiCommand = cobra.Command{
	Use:   "whoami",
	Short: "Show the current identity",
	Long:  "Show the current identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		sess := ws.Session()
		user, ok := sess.Current()
		if !ok {
			cmd.Println("not logged in")
			return nil
		}

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		cmd.Println(string(data))

		if sess.Expired() {
			cmd.Println("token expired, log in again")
		}
		return nil
	},
}

var UserCommand = cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long:  "Manage users",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var UserListCommand = cobra.Command{
	Use:   "ls",
	Short: "List all users",
	Long:  "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		users, err := ws.Users(cmd.Context())
		if err != nil {
			return err
		}

		for _, user := range users {
			data, err := json.Marshal(user)
			if err != nil {
				return err
			}
			cmd.Println(string(data))
		}
		return nil
	},
}

var UserCreateCommand = cobra.Command{
	Use:   "create",
	Short: "Create a user from its json description",
	Long:  "Create a user from its json description",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("takes only one argument: the user in json")
		}

		var req teamdesk.CreateUserRequest
		if err := json.Unmarshal([]byte(args[0]), &req); err != nil {
			return errors.New("invalid user json", errors.WithCause(err))
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		user, err := ws.CreateUser(cmd.Context(), req)
		if err != nil {
			return err
		}

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	},
}
