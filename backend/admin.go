package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/senandung-senja/kasir/models"
)

// Master-data calls. These mirror the admin screens one to one; the gateway
// validates required fields, the backend stays the source of truth.

type MenuInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	CategoryID  int     `json:"category_id"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"is_available"`
}

type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

func (c *Client) AdminMenus(ctx context.Context, token string) ([]models.MenuItem, error) {
	raw, err := c.do(ctx, http.MethodGet, "/admin/menus", token, nil)
	if err != nil {
		return nil, err
	}

	var menus []models.MenuItem
	if err := unwrap(raw, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

func (c *Client) CreateMenu(ctx context.Context, token string, in MenuInput) (models.MenuItem, error) {
	raw, err := c.do(ctx, http.MethodPost, "/admin/menus", token, in)
	if err != nil {
		return models.MenuItem{}, err
	}

	var menu models.MenuItem
	if err := unwrap(raw, &menu); err != nil {
		return models.MenuItem{}, err
	}
	return menu, nil
}

func (c *Client) UpdateMenu(ctx context.Context, token string, id int, in MenuInput) (models.MenuItem, error) {
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/menus/%d", id), token, in)
	if err != nil {
		return models.MenuItem{}, err
	}

	var menu models.MenuItem
	if err := unwrap(raw, &menu); err != nil {
		return models.MenuItem{}, err
	}
	return menu, nil
}

func (c *Client) ToggleMenu(ctx context.Context, token string, id int) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/menus/%d/toggle", id), token, nil)
	return err
}

func (c *Client) DeleteMenu(ctx context.Context, token string, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/menus/%d", id), token, nil)
	return err
}

func (c *Client) Categories(ctx context.Context, token string) ([]models.Category, error) {
	raw, err := c.do(ctx, http.MethodGet, "/admin/categories", token, nil)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := unwrap(raw, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) Users(ctx context.Context, token string) ([]models.User, error) {
	raw, err := c.do(ctx, http.MethodGet, "/admin/users", token, nil)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := unwrap(raw, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, token string, in UserInput) (models.User, error) {
	raw, err := c.do(ctx, http.MethodPost, "/admin/users", token, in)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := unwrap(raw, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, token string, id int, in UserInput) (models.User, error) {
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d", id), token, in)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := unwrap(raw, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *Client) ToggleUser(ctx context.Context, token string, id int) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d/toggle", id), token, nil)
	return err
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), token, nil)
	return err
}
