package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// download fetches a binary report. Unlike do it keeps the response content
// type so the caller can forward the PDF as-is.
func (c *Client) download(ctx context.Context, path, token string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, "", newAPIError(resp.StatusCode, raw)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}
	return raw, contentType, nil
}

// DailyReportPDF returns the backend-rendered daily sales report for a
// YYYY-MM-DD date.
func (c *Client) DailyReportPDF(ctx context.Context, token, date string) ([]byte, string, error) {
	return c.download(ctx, "/reports/daily?date="+date, token)
}

// TransactionPDF returns the backend-rendered receipt for one transaction.
func (c *Client) TransactionPDF(ctx context.Context, token string, id int) ([]byte, string, error) {
	return c.download(ctx, fmt.Sprintf("/reports/transaction/%d", id), token)
}
