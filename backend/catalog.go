package backend

import (
	"context"
	"sync"

	"github.com/senandung-senja/kasir/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Catalog wraps the /menus call with a last-known-good cache. When the
// backend is down the transaction screen keeps working against the stale
// list instead of going blank; concurrent refreshes are collapsed so a busy
// counter produces one upstream call.
type Catalog struct {
	client *Client

	sfg singleflight.Group

	mu        sync.RWMutex
	items     []models.MenuItem
	total     int
	populated bool
}

type CatalogResult struct {
	Items []models.MenuItem
	Total int
	Stale bool
}

func NewCatalog(client *Client) *Catalog {
	return &Catalog{client: client}
}

func (c *Catalog) Fetch(ctx context.Context, token string) (CatalogResult, error) {
	v, err, _ := c.sfg.Do("menus", func() (interface{}, error) {
		items, total, err := c.client.Menus(ctx, token)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.items = items
		c.total = total
		c.populated = true
		c.mu.Unlock()

		return CatalogResult{Items: items, Total: total}, nil
	})
	if err == nil {
		return v.(CatalogResult), nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.populated {
		logrus.WithError(err).Warn("catalog refresh failed, serving stale copy")
		return CatalogResult{Items: c.items, Total: c.total, Stale: true}, nil
	}

	return CatalogResult{}, err
}

// Lookup finds one item in the cached catalog, fetching it first when the
// cache is cold. Adding to cart snapshots name and price from here.
func (c *Catalog) Lookup(ctx context.Context, token string, menuID int) (models.MenuItem, bool, error) {
	c.mu.RLock()
	populated := c.populated
	c.mu.RUnlock()

	if !populated {
		if _, err := c.Fetch(ctx, token); err != nil {
			return models.MenuItem{}, false, err
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.ID == menuID {
			return item, true, nil
		}
	}
	return models.MenuItem{}, false, nil
}
