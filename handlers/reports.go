package handlers

import (
	"math"
	"net/http"

	"github.com/senandung-senja/kasir/middlewares"
	"github.com/senandung-senja/kasir/models"
	"golang.org/x/sync/errgroup"
)

// The report pages chart pre-aggregated series from the backend; the
// arithmetic on top (totals, averages, best day, dominant method) happens
// here. Unlike the dashboard these need every series, so a failed leg fails
// the whole report.

func (h *Handler) DailyReport(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	var (
		sales    []models.DailySale
		payments []models.PaymentMethodCount
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		sales, err = h.Backend.DailySales(ctx, claims.BackendToken)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = h.Backend.PaymentMethods(ctx, claims.BackendToken)
		return err
	})
	if err := g.Wait(); err != nil {
		respondBackendError(w, err)
		return
	}

	var total float64
	for _, s := range sales {
		total += s.Total
	}
	var average float64
	if len(sales) > 0 {
		average = math.Round(total / float64(len(sales)))
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sales":         sales,
		"payments":      payments,
		"total_omzet":   total,
		"average_daily": average,
	})
}

func (h *Handler) WeeklyReport(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	var (
		sales    []models.DailySale
		payments []models.PaymentMethodCount
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		sales, err = h.Backend.DailySales(ctx, claims.BackendToken)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = h.Backend.PaymentMethods(ctx, claims.BackendToken)
		return err
	})
	if err := g.Wait(); err != nil {
		respondBackendError(w, err)
		return
	}

	var total float64
	var bestDay *models.DailySale
	for i, s := range sales {
		total += s.Total
		if bestDay == nil || s.Total > bestDay.Total {
			bestDay = &sales[i]
		}
	}

	var topPayment *models.PaymentMethodCount
	for i, p := range payments {
		if topPayment == nil || p.Total > topPayment.Total {
			topPayment = &payments[i]
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sales":        sales,
		"payments":     payments,
		"total_weekly": total,
		"best_day":     bestDay,
		"top_payment":  topPayment,
	})
}

func (h *Handler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	var (
		sales    []models.MonthlySale
		payments []models.PaymentMethodCount
		topItems []models.TopItem
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		sales, err = h.Backend.MonthlySales(ctx, claims.BackendToken)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = h.Backend.PaymentMethods(ctx, claims.BackendToken)
		return err
	})
	g.Go(func() error {
		var err error
		topItems, err = h.Backend.TopItems(ctx, claims.BackendToken)
		return err
	})
	if err := g.Wait(); err != nil {
		respondBackendError(w, err)
		return
	}

	var total float64
	var bestMonth *models.MonthlySale
	for i, s := range sales {
		total += s.Total
		if bestMonth == nil || s.Total > bestMonth.Total {
			bestMonth = &sales[i]
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sales":         sales,
		"payments":      payments,
		"top_items":     topItems,
		"total_monthly": total,
		"best_month":    bestMonth,
	})
}
