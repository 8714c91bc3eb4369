package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamdesk"
	"teamdesk/errors"
)

type grantRecord struct {
	FolderID   string
	UserID     uuid.UUID
	Permission teamdesk.Permission
}

type serviceState struct {
	folders map[string]teamdesk.Folder
	notes   map[string]teamdesk.Note
	grants  []grantRecord
	revoked map[string]bool
}

// fakeAssetService mirrors the /api/v1 routes of the real asset
// service.
func fakeAssetService(t *testing.T) (*Client, *serviceState) {
	gin.SetMode(gin.TestMode)
	state := &serviceState{
		folders: map[string]teamdesk.Folder{},
		notes:   map[string]teamdesk.Note{},
		revoked: map[string]bool{},
	}

	r := gin.New()
	v1 := r.Group("/api/v1")

	folders := v1.Group("/folders")
	{
		folders.POST("", func(c *gin.Context) {
			var req struct {
				Name string `json:"name"`
			}
			if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
				return
			}
			folder := teamdesk.Folder{
				ID:         uuid.New(),
				FolderName: req.Name,
				Notes:      []teamdesk.Note{},
				Sharings:   []teamdesk.Sharing{},
			}
			state.folders[folder.ID.String()] = folder
			c.JSON(http.StatusCreated, folder)
		})
		folders.GET("", func(c *gin.Context) {
			list := make([]teamdesk.Folder, 0, len(state.folders))
			for _, f := range state.folders {
				list = append(list, f)
			}
			c.JSON(http.StatusOK, list)
		})
		folders.GET("/:folderId", func(c *gin.Context) {
			folder, ok := state.folders[c.Param("folderId")]
			if !ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "folder not found"})
				return
			}
			c.JSON(http.StatusOK, folder)
		})
		folders.DELETE("/:folderId", func(c *gin.Context) {
			delete(state.folders, c.Param("folderId"))
			c.JSON(http.StatusNoContent, nil)
		})

		folders.POST("/:folderId/share", func(c *gin.Context) {
			var req struct {
				UserID     uuid.UUID           `json:"userId"`
				Permission teamdesk.Permission `json:"permission"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			state.grants = append(state.grants, grantRecord{
				FolderID:   c.Param("folderId"),
				UserID:     req.UserID,
				Permission: req.Permission,
			})
			c.JSON(http.StatusOK, gin.H{"message": "Folder shared successfully"})
		})
		folders.DELETE("/:folderId/share/:userId", func(c *gin.Context) {
			key := c.Param("folderId") + "/" + c.Param("userId")
			if state.revoked[key] {
				c.JSON(http.StatusBadRequest, gin.H{"error": "sharing not found"})
				return
			}
			state.revoked[key] = true
			c.JSON(http.StatusOK, gin.H{"message": "Folder sharing revoked successfully"})
		})
		folders.GET("/:folderId/share", func(c *gin.Context) {
			sharings := make([]teamdesk.Sharing, 0)
			for _, g := range state.grants {
				if g.FolderID == c.Param("folderId") {
					folderID := uuid.MustParse(g.FolderID)
					sharings = append(sharings, teamdesk.Sharing{
						ID:         uuid.New(),
						UserID:     g.UserID,
						Permission: g.Permission,
						FolderID:   &folderID,
					})
				}
			}
			c.JSON(http.StatusOK, sharings)
		})
	}

	notes := v1.Group("/notes")
	{
		notes.POST("", func(c *gin.Context) {
			var req teamdesk.CreateNoteRequest
			if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
				return
			}
			note := teamdesk.Note{
				ID:          uuid.New(),
				NoteName:    req.Title,
				NoteContent: req.Content,
				FolderID:    req.FolderID,
			}
			state.notes[note.ID.String()] = note
			c.JSON(http.StatusCreated, note)
		})
		notes.GET("", func(c *gin.Context) {
			list := make([]teamdesk.Note, 0, len(state.notes))
			for _, n := range state.notes {
				list = append(list, n)
			}
			c.JSON(http.StatusOK, list)
		})
		notes.GET("/:noteId", func(c *gin.Context) {
			note, ok := state.notes[c.Param("noteId")]
			if !ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
				return
			}
			c.JSON(http.StatusOK, note)
		})
		notes.PUT("/:noteId", func(c *gin.Context) {
			note, ok := state.notes[c.Param("noteId")]
			if !ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
				return
			}
			var req struct {
				Title   string `json:"title"`
				Content string `json:"content"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			note.NoteName = req.Title
			note.NoteContent = req.Content
			state.notes[note.ID.String()] = note
			c.JSON(http.StatusOK, note)
		})
		notes.DELETE("/:noteId", func(c *gin.Context) {
			delete(state.notes, c.Param("noteId"))
			c.JSON(http.StatusNoContent, nil)
		})
	}

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return NewClient(http.DefaultClient, server.URL+"/api/v1"), state
}

func TestClient_FolderLifecycle(t *testing.T) {
	client, _ := fakeAssetService(t)
	ctx := context.Background()

	folder, err := client.CreateFolder(ctx, "Specs")
	require.NoError(t, err)
	assert.Equal(t, "Specs", folder.FolderName)

	retrieved, err := client.Folder(ctx, folder.ID)
	require.NoError(t, err)
	assert.Equal(t, folder.ID, retrieved.ID)

	list, err := client.Folders(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, client.DeleteFolder(ctx, folder.ID))
	_, err = client.Folder(ctx, folder.ID)
	require.Error(t, err)
	errors.AssertCode(t, err, 404)
}

func TestClient_NoteLifecycle(t *testing.T) {
	client, _ := fakeAssetService(t)
	ctx := context.Background()

	folderID := uuid.New()
	note, err := client.CreateNote(ctx, teamdesk.CreateNoteRequest{
		Title:    "kickoff",
		Content:  "agenda",
		FolderID: folderID,
	})
	require.NoError(t, err)
	assert.Equal(t, "kickoff", note.NoteName)
	assert.Equal(t, "agenda", note.NoteContent)
	assert.Equal(t, folderID, note.FolderID)

	updated, err := client.UpdateNote(ctx, note.ID, "kickoff v2", "new agenda")
	require.NoError(t, err)
	assert.Equal(t, "kickoff v2", updated.NoteName)
	assert.Equal(t, "new agenda", updated.NoteContent)

	require.NoError(t, client.DeleteNote(ctx, note.ID))
	_, err = client.Note(ctx, note.ID)
	require.Error(t, err)
	errors.AssertCode(t, err, 404)
}

func TestClient_ShareFolder(t *testing.T) {
	client, state := fakeAssetService(t)
	ctx := context.Background()

	folderID := uuid.New()
	userID := uuid.New()

	require.NoError(t, client.ShareFolder(ctx, folderID, userID, teamdesk.PermissionWrite))
	require.Len(t, state.grants, 1)
	assert.Equal(t, folderID.String(), state.grants[0].FolderID)
	assert.Equal(t, userID, state.grants[0].UserID)
	assert.Equal(t, teamdesk.PermissionWrite, state.grants[0].Permission)

	sharings, err := client.FolderSharings(ctx, folderID)
	require.NoError(t, err)
	require.Len(t, sharings, 1)
	require.NotNil(t, sharings[0].FolderID)
	assert.Equal(t, folderID, *sharings[0].FolderID)
	assert.Nil(t, sharings[0].NoteID, "a grant refers to exactly one resource")
}

func TestClient_RevokeIsNotIdempotent(t *testing.T) {
	client, _ := fakeAssetService(t)
	ctx := context.Background()

	folderID := uuid.New()
	userID := uuid.New()

	require.NoError(t, client.RevokeFolderSharing(ctx, folderID, userID))

	// The second revoke surfaces the server's error, with the same
	// shape every time.
	err := client.RevokeFolderSharing(ctx, folderID, userID)
	require.Error(t, err)
	errors.AssertCode(t, err, 400)
	assert.Equal(t, "sharing not found", err.Error())

	err2 := client.RevokeFolderSharing(ctx, folderID, userID)
	require.Error(t, err2)
	assert.Equal(t, err.Error(), err2.Error(), "repeated revokes should not raise differently")
}
