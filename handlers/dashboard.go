package handlers

import (
	"net/http"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/senandung-senja/kasir/middlewares"
	"github.com/senandung-senja/kasir/models"
	"github.com/sirupsen/logrus"
)

const (
	recentTransactionsLimit = 6
	topItemsLimit           = 6
)

// Dashboard fans out the screen's independent reads in parallel and settles
// once all are done. Each leg may fail on its own: its section comes back
// zero-valued and the others still render. Admin and owner additionally get
// the popular-items panel; cashiers never trigger that call.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	ctx := r.Context()
	token := claims.BackendToken

	var (
		wg sync.WaitGroup
		mu sync.Mutex

		errs *multierror.Error

		summary    models.SalesSummary
		menuTotal  int
		recent     []models.Transaction
		topItems   []models.TopItem
		hasSummary bool
	)

	collect := func(name string, err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = multierror.Append(errs, &dashboardSectionError{section: name, err: err})
	}

	wg.Add(3)

	go func() {
		defer wg.Done()
		s, err := h.Backend.Summary(ctx, token)
		if err != nil {
			collect("summary", err)
			return
		}
		mu.Lock()
		summary, hasSummary = s, true
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		result, err := h.Catalog.Fetch(ctx, token)
		if err != nil {
			collect("menus", err)
			return
		}
		mu.Lock()
		menuTotal = result.Total
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		history, err := h.Backend.History(ctx, token)
		if err != nil {
			collect("history", err)
			return
		}
		if len(history) > recentTransactionsLimit {
			history = history[:recentTransactionsLimit]
		}
		mu.Lock()
		recent = history
		mu.Unlock()
	}()

	if claims.Role.CanViewTopItems() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := h.Backend.TopItems(ctx, token)
			if err != nil {
				collect("top_items", err)
				return
			}
			if len(items) > topItemsLimit {
				items = items[:topItemsLimit]
			}
			mu.Lock()
			topItems = items
			mu.Unlock()
		}()
	}

	wg.Wait()

	if err := errs.ErrorOrNil(); err != nil {
		logrus.WithError(err).WithField("session", claims.SessionID).Warn("dashboard loaded partially")
	}

	failed := make([]string, 0)
	if errs != nil {
		for _, e := range errs.Errors {
			if se, ok := e.(*dashboardSectionError); ok {
				failed = append(failed, se.section)
			}
		}
	}

	if recent == nil {
		recent = []models.Transaction{}
	}
	if topItems == nil {
		topItems = []models.TopItem{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"summary":             summary,
		"summary_available":   hasSummary,
		"available_menus":     menuTotal,
		"recent_transactions": recent,
		"top_items":           topItems,
		"role":                claims.Role,
		"failed_sections":     failed,
	})
}

type dashboardSectionError struct {
	section string
	err     error
}

func (e *dashboardSectionError) Error() string {
	return e.section + ": " + e.err.Error()
}

func (e *dashboardSectionError) Unwrap() error {
	return e.err
}
