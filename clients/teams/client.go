// Package teams talks to the REST team surface of the user service.
package teams

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

func NewClient(c HTTPClient, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  c,
	}
}

func (c *Client) Teams(ctx context.Context) ([]teamdesk.Team, error) {
	req, err := internal.NewJSONRequest(ctx, "GET", fmt.Sprintf("%s/teams", c.baseURL), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	// The list endpoint wraps its payload, unlike the others.
	var body struct {
		Teams []teamdesk.Team `json:"teams"`
	}
	if err := internal.DecodeResponse(res, &body); err != nil {
		return nil, err
	}

	return body.Teams, nil
}

func (c *Client) CreateTeam(ctx context.Context, r teamdesk.CreateTeamRequest) (teamdesk.Team, error) {
	req, err := internal.NewJSONRequest(ctx, "POST", fmt.Sprintf("%s/teams", c.baseURL), r)
	if err != nil {
		return teamdesk.Team{}, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return teamdesk.Team{}, err
	}

	var team teamdesk.Team
	if err := internal.DecodeResponse(res, &team); err != nil {
		return teamdesk.Team{}, err
	}

	return team, nil
}

func (c *Client) Team(ctx context.Context, id uuid.UUID) (teamdesk.Team, error) {
	req, err := internal.NewJSONRequest(ctx, "GET", fmt.Sprintf("%s/teams/%s", c.baseURL, id), nil)
	if err != nil {
		return teamdesk.Team{}, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return teamdesk.Team{}, err
	}

	var team teamdesk.Team
	if err := internal.DecodeResponse(res, &team); err != nil {
		return teamdesk.Team{}, err
	}

	return team, nil
}

func (c *Client) AddMember(ctx context.Context, teamID, userID uuid.UUID) error {
	return c.add(ctx, teamID, userID, "members")
}

func (c *Client) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	return c.remove(ctx, teamID, userID, "members")
}

func (c *Client) AddManager(ctx context.Context, teamID, userID uuid.UUID) error {
	return c.add(ctx, teamID, userID, "managers")
}

func (c *Client) RemoveManager(ctx context.Context, teamID, userID uuid.UUID) error {
	return c.remove(ctx, teamID, userID, "managers")
}

func (c *Client) add(ctx context.Context, teamID, userID uuid.UUID, kind string) error {
	body := struct {
		UserID string `json:"userId"`
	}{UserID: userID.String()}

	req, err := internal.NewJSONRequest(ctx, "POST", fmt.Sprintf("%s/teams/%s/%s", c.baseURL, teamID, kind), body)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}

	return internal.DecodeResponse(res, nil)
}

func (c *Client) remove(ctx context.Context, teamID, userID uuid.UUID, kind string) error {
	req, err := internal.NewJSONRequest(ctx, "DELETE", fmt.Sprintf("%s/teams/%s/%s/%s", c.baseURL, teamID, kind, userID), nil)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}

	return internal.DecodeResponse(res, nil)
}
