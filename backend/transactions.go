package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/senandung-senja/kasir/models"
)

// TransactionLine is one ordered item as the backend expects it. The cart's
// price snapshot is deliberately absent: the backend prices the final
// transaction from its own catalog.
type TransactionLine struct {
	MenuID int `json:"menu_id"`
	Qty    int `json:"qty"`
}

func (c *Client) CreateTransaction(ctx context.Context, token string, lines []TransactionLine, method models.PaymentMethod) (models.Transaction, error) {
	body := map[string]interface{}{
		"items":          lines,
		"payment_method": method,
	}

	raw, err := c.do(ctx, http.MethodPost, "/transactions", token, body)
	if err != nil {
		return models.Transaction{}, err
	}

	var trx models.Transaction
	if err := unwrap(raw, &trx); err != nil {
		return models.Transaction{}, fmt.Errorf("decode transaction: %w", err)
	}
	return trx, nil
}

func (c *Client) Summary(ctx context.Context, token string) (models.SalesSummary, error) {
	raw, err := c.do(ctx, http.MethodGet, "/transactions/summary", token, nil)
	if err != nil {
		return models.SalesSummary{}, err
	}

	var summary models.SalesSummary
	if err := unwrap(raw, &summary); err != nil {
		return models.SalesSummary{}, err
	}
	return summary, nil
}

func (c *Client) History(ctx context.Context, token string) ([]models.Transaction, error) {
	raw, err := c.do(ctx, http.MethodGet, "/transactions/history", token, nil)
	if err != nil {
		return nil, err
	}

	var history []models.Transaction
	if err := unwrap(raw, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (c *Client) CancelTransaction(ctx context.Context, token string, id int, reason string) error {
	body := map[string]string{"cancel_reason": reason}
	path := fmt.Sprintf("/admin/transactions/%d/cancel", id)
	_, err := c.do(ctx, http.MethodPatch, path, token, body)
	return err
}
