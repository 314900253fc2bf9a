package backend

import (
	"context"
	"net/http"

	"github.com/senandung-senja/kasir/models"
)

func (c *Client) DailySales(ctx context.Context, token string) ([]models.DailySale, error) {
	raw, err := c.do(ctx, http.MethodGet, "/dashboard/daily-sales", token, nil)
	if err != nil {
		return nil, err
	}

	var sales []models.DailySale
	if err := unwrap(raw, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (c *Client) MonthlySales(ctx context.Context, token string) ([]models.MonthlySale, error) {
	raw, err := c.do(ctx, http.MethodGet, "/dashboard/monthly-sales", token, nil)
	if err != nil {
		return nil, err
	}

	var sales []models.MonthlySale
	if err := unwrap(raw, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (c *Client) PaymentMethods(ctx context.Context, token string) ([]models.PaymentMethodCount, error) {
	raw, err := c.do(ctx, http.MethodGet, "/dashboard/payment-method", token, nil)
	if err != nil {
		return nil, err
	}

	var counts []models.PaymentMethodCount
	if err := unwrap(raw, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *Client) TopItems(ctx context.Context, token string) ([]models.TopItem, error) {
	raw, err := c.do(ctx, http.MethodGet, "/dashboard/top-items", token, nil)
	if err != nil {
		return nil, err
	}

	var items []models.TopItem
	if err := unwrap(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
