package backend

import (
	"context"
	"net/http"

	"github.com/senandung-senja/kasir/models"
)

// Menus fetches the sellable catalog. The returned total comes from the
// response meta when the backend paginates, falling back to the list length.
func (c *Client) Menus(ctx context.Context, token string) ([]models.MenuItem, int, error) {
	raw, err := c.do(ctx, http.MethodGet, "/menus", token, nil)
	if err != nil {
		return nil, 0, err
	}

	var menus []models.MenuItem
	if err := unwrap(raw, &menus); err != nil {
		return nil, 0, err
	}

	total := len(menus)
	if meta := unwrapMeta(raw); meta != nil && meta.Total > 0 {
		total = meta.Total
	}

	return menus, total, nil
}
