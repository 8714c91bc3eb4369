// Package users talks to the GraphQL surface of the user service.
package users

import (
	"context"
	"fmt"
	"net/http"

	"github.com/machinebox/graphql"

	"teamdesk"
)

const fetchUsersQuery = `
query FetchUsers {
	fetchUsers {
		id
		username
		email
		role
	}
}`

const createUserMutation = `
mutation CreateUser($username: String!, $email: String!, $password: String!, $role: String!) {
	createUser(username: $username, email: $email, password: $password, role: $role) {
		id
		username
		email
		role
	}
}`

const loginMutation = `
mutation Login($email: String!, $password: String!) {
	login(email: $email, password: $password) {
		token
		user {
			id
			username
			email
			role
		}
	}
}`

const logoutMutation = `
mutation Logout {
	logout
}`

type Client struct {
	gql *graphql.Client
}

// NewClient expects baseURL without the query path, e.g.
// http://localhost:8080. httpClient should be the authenticated client
// from the clients package so that the bearer token travels along.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		gql: graphql.NewClient(fmt.Sprintf("%s/user/query", baseURL), graphql.WithHTTPClient(httpClient)),
	}
}

func (c *Client) FetchUsers(ctx context.Context) ([]teamdesk.User, error) {
	var res struct {
		FetchUsers []teamdesk.User `json:"fetchUsers"`
	}
	if err := c.gql.Run(ctx, graphql.NewRequest(fetchUsersQuery), &res); err != nil {
		return nil, err
	}

	return res.FetchUsers, nil
}

func (c *Client) CreateUser(ctx context.Context, r teamdesk.CreateUserRequest) (teamdesk.User, error) {
	req := graphql.NewRequest(createUserMutation)
	req.Var("username", r.Username)
	req.Var("email", r.Email)
	req.Var("password", r.Password)
	req.Var("role", string(r.Role))

	var res struct {
		CreateUser teamdesk.User `json:"createUser"`
	}
	if err := c.gql.Run(ctx, req, &res); err != nil {
		return teamdesk.User{}, err
	}

	return res.CreateUser, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (teamdesk.AuthPayload, error) {
	req := graphql.NewRequest(loginMutation)
	req.Var("email", email)
	req.Var("password", password)

	var res struct {
		Login teamdesk.AuthPayload `json:"login"`
	}
	if err := c.gql.Run(ctx, req, &res); err != nil {
		return teamdesk.AuthPayload{}, err
	}

	return res.Login, nil
}

func (c *Client) Logout(ctx context.Context) error {
	var res struct {
		Logout bool `json:"logout"`
	}
	return c.gql.Run(ctx, graphql.NewRequest(logoutMutation), &res)
}
