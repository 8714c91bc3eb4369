package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"teamdesk/errors"
)

func init() {
	FolderCommand.AddCommand(&FolderListCommand)
	FolderCommand.AddCommand(&FolderCreateCommand)
	FolderCommand.AddCommand(&FolderGetCommand)
	FolderCommand.AddCommand(&FolderDeleteCommand)

	RootCmd.AddCommand(&FolderCommand)
}

var FolderCommand = cobra.Command{
	Use:   "folder",
	Short: "Manage folders",
	Long:  "Manage folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var FolderListCommand = cobra.Command{
	Use:   "ls",
	Short: "List the folders you can see",
	Long:  "List the folders you can see",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		folders, err := ws.Folders(cmd.Context())
		if err != nil {
			return err
		}

		for _, folder := range folders {
			if err := printJSON(cmd, folder); err != nil {
				return err
			}
		}
		return nil
	},
}

var FolderCreateCommand = cobra.Command{
	Use:   "create <name>",
	Short: "Create a folder",
	Long:  "Create a folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("takes only one argument: the folder name")
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		folder, err := ws.CreateFolder(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, folder)
	},
}

var FolderGetCommand = cobra.Command{
	Use:   "get <folder-id>",
	Short: "Show one folder with its notes and sharings",
	Long:  "Show one folder with its notes and sharings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("takes only one argument: the folder id")
		}

		folderID, err := uuid.Parse(args[0])
		if err != nil {
			return errors.New("invalid folder id", errors.WithCause(err))
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		folder, err := ws.Folder(cmd.Context(), folderID)
		if err != nil {
			return err
		}
		return printJSON(cmd, folder)
	},
}

var FolderDeleteCommand = cobra.Command{
	Use:   "rm <folder-id>",
	Short: "Delete a folder",
	Long:  "Delete a folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("takes only one argument: the folder id")
		}

		folderID, err := uuid.Parse(args[0])
		if err != nil {
			return errors.New("invalid folder id", errors.WithCause(err))
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		if err := ws.DeleteFolder(cmd.Context(), folderID); err != nil {
			return err
		}

		cmd.Println("done")
		return nil
	},
}
