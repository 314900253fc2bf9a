package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/senandung-senja/kasir/models"
)

type dashboardBackend struct {
	mu    sync.Mutex
	calls map[string]int

	failSummary bool
	failHistory bool
}

func (b *dashboardBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	if b.calls == nil {
		b.calls = make(map[string]int)
	}
	b.calls[r.URL.Path]++
	b.mu.Unlock()

	switch r.URL.Path {
	case "/transactions/summary":
		if b.failSummary {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"data":{"total_transactions":10,"total_revenue":250000,"total_items_sold":31}}`))
	case "/menus":
		w.Write([]byte(`{"data":[{"id":1,"name":"Kopi Susu","price":15000}],"meta":{"total":8}}`))
	case "/transactions/history":
		if b.failHistory {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"data":[{"id":1},{"id":2},{"id":3},{"id":4},{"id":5},{"id":6},{"id":7}]}`))
	case "/dashboard/top-items":
		w.Write([]byte(`{"data":[{"name":"Kopi Susu","sold":20}]}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (b *dashboardBackend) count(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[path]
}

func TestDashboard_AllSectionsForAdmin(t *testing.T) {
	be := &dashboardBackend{}
	h := newTestHandler(t, be)

	recorder := httptest.NewRecorder()
	h.Dashboard(recorder, authedRequest("GET", "/api/dashboard", nil, testSession(models.RoleAdmin)))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body)
	}

	var resp struct {
		SummaryAvailable   bool                 `json:"summary_available"`
		AvailableMenus     int                  `json:"available_menus"`
		RecentTransactions []models.Transaction `json:"recent_transactions"`
		TopItems           []models.TopItem     `json:"top_items"`
		FailedSections     []string             `json:"failed_sections"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.SummaryAvailable {
		t.Error("expected summary loaded")
	}
	if resp.AvailableMenus != 8 {
		t.Errorf("expected 8 available menus, got %d", resp.AvailableMenus)
	}
	if len(resp.RecentTransactions) != recentTransactionsLimit {
		t.Errorf("expected recent list capped at %d, got %d", recentTransactionsLimit, len(resp.RecentTransactions))
	}
	if len(resp.TopItems) != 1 {
		t.Errorf("expected top items for admin, got %+v", resp.TopItems)
	}
	if len(resp.FailedSections) != 0 {
		t.Errorf("expected no failed sections, got %v", resp.FailedSections)
	}
}

func TestDashboard_CashierNeverFetchesTopItems(t *testing.T) {
	be := &dashboardBackend{}
	h := newTestHandler(t, be)

	recorder := httptest.NewRecorder()
	h.Dashboard(recorder, authedRequest("GET", "/api/dashboard", nil, testSession(models.RoleCashier)))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if got := be.count("/dashboard/top-items"); got != 0 {
		t.Errorf("cashier dashboard must not request top items, got %d calls", got)
	}
}

func TestDashboard_PartialFailureStillRenders(t *testing.T) {
	be := &dashboardBackend{failSummary: true, failHistory: true}
	h := newTestHandler(t, be)

	recorder := httptest.NewRecorder()
	h.Dashboard(recorder, authedRequest("GET", "/api/dashboard", nil, testSession(models.RoleOwner)))

	if recorder.Code != http.StatusOK {
		t.Fatalf("partial failure must still render, got %d", recorder.Code)
	}

	var resp struct {
		SummaryAvailable bool     `json:"summary_available"`
		AvailableMenus   int      `json:"available_menus"`
		FailedSections   []string `json:"failed_sections"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.SummaryAvailable {
		t.Error("summary must be reported unavailable")
	}
	if resp.AvailableMenus != 8 {
		t.Errorf("healthy sections must still load, got %d menus", resp.AvailableMenus)
	}

	failed := map[string]bool{}
	for _, s := range resp.FailedSections {
		failed[s] = true
	}
	if !failed["summary"] || !failed["history"] {
		t.Errorf("expected summary and history flagged, got %v", resp.FailedSections)
	}
}
