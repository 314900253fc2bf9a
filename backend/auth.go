package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/senandung-senja/kasir/models"
)

type LoginResult struct {
	Token string
	User  models.User
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	raw, err := c.do(ctx, http.MethodPost, "/login", "", body)
	if err != nil {
		return LoginResult{}, err
	}

	var resp struct {
		AccessToken string      `json:"access_token"`
		User        models.User `json:"user"`
	}
	if err := unwrap(raw, &resp); err != nil {
		return LoginResult{}, fmt.Errorf("decode login response: %w", err)
	}
	if resp.AccessToken == "" {
		return LoginResult{}, fmt.Errorf("login response missing access token")
	}

	return LoginResult{Token: resp.AccessToken, User: resp.User}, nil
}
