// Package assets talks to the REST surface of the asset service:
// folders, notes, and the sharing subresources under each.
package assets

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"teamdesk"
	"teamdesk/clients/internal"
)

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string
	client  HTTPClient
}

// NewClient expects baseURL to carry the API prefix, e.g.
// http://localhost:7070/api/v1.
func NewClient(c HTTPClient, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  c,
	}
}

// ----------------------------------------------------------------------------
// Folders

func (c *Client) Folders(ctx context.Context) ([]teamdesk.Folder, error) {
	var folders []teamdesk.Folder
	if err := c.do(ctx, "GET", fmt.Sprintf("%s/folders", c.baseURL), nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (c *Client) CreateFolder(ctx context.Context, name string) (teamdesk.Folder, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: name}

	var folder teamdesk.Folder
	if err := c.do(ctx, "POST", fmt.Sprintf("%s/folders", c.baseURL), body, &folder); err != nil {
		return teamdesk.Folder{}, err
	}
	return folder, nil
}

func (c *Client) Folder(ctx context.Context, id uuid.UUID) (teamdesk.Folder, error) {
	var folder teamdesk.Folder
	if err := c.do(ctx, "GET", fmt.Sprintf("%s/folders/%s", c.baseURL, id), nil, &folder); err != nil {
		return teamdesk.Folder{}, err
	}
	return folder, nil
}

func (c *Client) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("%s/folders/%s", c.baseURL, id), nil, nil)
}

// ----------------------------------------------------------------------------
// Notes

func (c *Client) Notes(ctx context.Context) ([]teamdesk.Note, error) {
	var notes []teamdesk.Note
	if err := c.do(ctx, "GET", fmt.Sprintf("%s/notes", c.baseURL), nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) CreateNote(ctx context.Context, r teamdesk.CreateNoteRequest) (teamdesk.Note, error) {
	var note teamdesk.Note
	if err := c.do(ctx, "POST", fmt.Sprintf("%s/notes", c.baseURL), r, &note); err != nil {
		return teamdesk.Note{}, err
	}
	return note, nil
}

func (c *Client) Note(ctx context.Context, id uuid.UUID) (teamdesk.Note, error) {
	var note teamdesk.Note
	if err := c.do(ctx, "GET", fmt.Sprintf("%s/notes/%s", c.baseURL, id), nil, &note); err != nil {
		return teamdesk.Note{}, err
	}
	return note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id uuid.UUID, title, content string) (teamdesk.Note, error) {
	body := struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}{Title: title, Content: content}

	var note teamdesk.Note
	if err := c.do(ctx, "PUT", fmt.Sprintf("%s/notes/%s", c.baseURL, id), body, &note); err != nil {
		return teamdesk.Note{}, err
	}
	return note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("%s/notes/%s", c.baseURL, id), nil, nil)
}

// ----------------------------------------------------------------------------
// Sharing

type shareRequest struct {
	UserID     uuid.UUID           `json:"userId"`
	Permission teamdesk.Permission `json:"permission"`
}

func (c *Client) ShareFolder(ctx context.Context, folderID, userID uuid.UUID, perm teamdesk.Permission) error {
	body := shareRequest{UserID: userID, Permission: perm}
	return c.do(ctx, "POST", fmt.Sprintf("%s/folders/%s/share", c.baseURL, folderID), body, nil)
}

func (c *Client) RevokeFolderSharing(ctx context.Context, folderID, userID uuid.UUID) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("%s/folders/%s/share/%s", c.baseURL, folderID, userID), nil, nil)
}

func (c *Client) FolderSharings(ctx context.Context, folderID uuid.UUID) ([]teamdesk.Sharing, error) {
	var sharings []teamdesk.Sharing
	if err := c.do(ctx, "GET", fmt.Sprintf("%s/folders/%s/share", c.baseURL, folderID), nil, &sharings); err != nil {
		return nil, err
	}
	return sharings, nil
}

func (c *Client) ShareNote(ctx context.Context, noteID, userID uuid.UUID, perm teamdesk.Permission) error {
	body := shareRequest{UserID: userID, Permission: perm}
	return c.do(ctx, "POST", fmt.Sprintf("%s/notes/%s/share", c.baseURL, noteID), body, nil)
}

func (c *Client) RevokeNoteSharing(ctx context.Context, noteID, userID uuid.UUID) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("%s/notes/%s/share/%s", c.baseURL, noteID, userID), nil, nil)
}

func (c *Client) NoteSharings(ctx context.Context, noteID uuid.UUID) ([]teamdesk.Sharing, error) {
	var sharings []teamdesk.Sharing
	if err := c.do(ctx, "GET", fmt.Sprintf("%s/notes/%s/share", c.baseURL, noteID), nil, &sharings); err != nil {
		return nil, err
	}
	return sharings, nil
}

func (c *Client) do(ctx context.Context, method, url string, body, v interface{}) error {
	req, err := internal.NewJSONRequest(ctx, method, url, body)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}

	return internal.DecodeResponse(res, v)
}
