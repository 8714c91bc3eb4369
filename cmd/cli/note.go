package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"teamdesk"
	"teamdesk/errors"
	"teamdesk/index"
)

func init() {
	NoteEditCommand.Flags().String("title", "", "new title")
	NoteEditCommand.Flags().String("content", "", "new content")

	NoteCommand.AddCommand(&NoteListCommand)
	NoteCommand.AddCommand(&NoteCreateCommand)
	NoteCommand.AddCommand(&NoteGetCommand)
	NoteCommand.AddCommand(&NoteEditCommand)
	NoteCommand.AddCommand(&NoteDeleteCommand)
	NoteCommand.AddCommand(&NoteSearchCommand)

	RootCmd.AddCommand(&NoteCommand)
}

var NoteCommand = cobra.Command{
	Use:   "note",
	Short: "Manage notes",
	Long:  "Manage notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var NoteListCommand = cobra.Command{
	Use:   "ls",
	Short: "List the notes you can see",
	Long:  "List the notes you can see",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		notes, err := ws.Notes(cmd.Context())
		if err != nil {
			return err
		}

		for _, note := range notes {
			if err := printJSON(cmd, note); err != nil {
				return err
			}
		}
		return nil
	},
}

var NoteCreateCommand = cobra.Command{
	Use:   "create <folder-id> <title> [content]",
	Short: "Create a note in a folder",
	Long:  "Create a note in a folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 && len(args) != 3 {
			return errors.New("takes the folder id, the title and optionally the content")
		}

		folderID, err := uuid.Parse(args[0])
		if err != nil {
			return errors.New("invalid folder id", errors.WithCause(err))
		}

		content := ""
		if len(args) == 3 {
			content = args[2]
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		note, err := ws.CreateNote(cmd.Context(), teamdesk.CreateNoteRequest{
			Title:    args[1],
			Content:  content,
			FolderID: folderID,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, note)
	},
}

var NoteGetCommand = cobra.Command{
	Use:   "get <note-id>",
	Short: "Show one note",
	Long:  "Show one note",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("takes only one argument: the note id")
		}

		noteID, err := uuid.Parse(args[0])
		if err != nil {
			return errors.New("invalid note id", errors.WithCause(err))
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		note, err := ws.Note(cmd.Context(), noteID)
		if err != nil {
			return err
		}
		return printJSON(cmd, note)
	},
}

var NoteEditCommand = cobra.Command{
	Use:   "edit <note-id>",
	Short: "Update a note's title and content",
	Long:  "Update a note's title and content",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("takes only one argument: the note id")
		}

		noteID, err := uuid.Parse(args[0])
		if err != nil {
			return errors.New("invalid note id", errors.WithCause(err))
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		// Unchanged fields keep their current value.
		current, err := ws.Note(cmd.Context(), noteID)
		if err != nil {
			return err
		}

		title := current.NoteName
		if cmd.Flags().Changed("title") {
			title = cmd.Flag("title").Value.String()
		}
		content := current.NoteContent
		if cmd.Flags().Changed("content") {
			content = cmd.Flag("content").Value.String()
		}

		note, err := ws.UpdateNote(cmd.Context(), noteID, title, content)
		if err != nil {
			return err
		}
		return printJSON(cmd, note)
	},
}

var NoteDeleteCommand = cobra.Command{
	Use:   "rm <note-id>",
	Short: "Delete a note",
	Long:  "Delete a note",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("takes only one argument: the note id")
		}

		noteID, err := uuid.Parse(args[0])
		if err != nil {
			return errors.New("invalid note id", errors.WithCause(err))
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		if err := ws.DeleteNote(cmd.Context(), noteID); err != nil {
			return err
		}

		cmd.Println("done")
		return nil
	},
}

var NoteSearchCommand = cobra.Command{
	Use:   "search <query>",
	Short: "Search your notes by title and content",
	Long:  "Search your notes by title and content",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("takes only one argument: the query")
		}

		ws, release, err := openWorkspace()
		if err != nil {
			return err
		}
		defer release()

		notes, err := ws.Notes(cmd.Context())
		if err != nil {
			return err
		}

		idx, err := index.Open()
		if err != nil {
			return err
		}
		defer idx.Close()

		if err := idx.IndexAll(notes); err != nil {
			return err
		}

		ids, err := idx.Search(args[0], 0)
		if err != nil {
			return err
		}

		byID := make(map[uuid.UUID]teamdesk.Note, len(notes))
		for _, note := range notes {
			byID[note.ID] = note
		}

		for _, id := range ids {
			if note, ok := byID[id]; ok {
				if err := printJSON(cmd, note); err != nil {
					return err
				}
			}
		}
		return nil
	},
}
