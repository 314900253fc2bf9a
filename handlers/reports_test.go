package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/senandung-senja/kasir/models"
)

func reportsBackend(failPayments bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dashboard/daily-sales":
			w.Write([]byte(`{"data":[
				{"date":"2026-08-29","total":100000},
				{"date":"2026-08-30","total":250000},
				{"date":"2026-08-31","total":130000}
			]}`))
		case "/dashboard/monthly-sales":
			w.Write([]byte(`{"data":[
				{"month":"2026-07","total":3000000},
				{"month":"2026-08","total":4500000}
			]}`))
		case "/dashboard/payment-method":
			if failPayments {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"data":[
				{"payment_method":"cash","total":18},
				{"payment_method":"transfer","total":7}
			]}`))
		case "/dashboard/top-items":
			w.Write([]byte(`{"data":[{"name":"Kopi Susu","sold":20}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestDailyReport_Aggregates(t *testing.T) {
	h := newTestHandler(t, reportsBackend(false))

	recorder := httptest.NewRecorder()
	h.DailyReport(recorder, authedRequest("GET", "/api/reports/daily", nil, testSession(models.RoleOwner)))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body)
	}

	var resp struct {
		TotalOmzet   float64 `json:"total_omzet"`
		AverageDaily float64 `json:"average_daily"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.TotalOmzet != 480000 {
		t.Errorf("expected total 480000, got %v", resp.TotalOmzet)
	}
	if resp.AverageDaily != 160000 {
		t.Errorf("expected average 160000, got %v", resp.AverageDaily)
	}
}

func TestWeeklyReport_BestDayAndTopPayment(t *testing.T) {
	h := newTestHandler(t, reportsBackend(false))

	recorder := httptest.NewRecorder()
	h.WeeklyReport(recorder, authedRequest("GET", "/api/reports/weekly", nil, testSession(models.RoleOwner)))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body)
	}

	var resp struct {
		TotalWeekly float64                   `json:"total_weekly"`
		BestDay     *models.DailySale         `json:"best_day"`
		TopPayment  *models.PaymentMethodCount `json:"top_payment"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.TotalWeekly != 480000 {
		t.Errorf("expected total 480000, got %v", resp.TotalWeekly)
	}
	if resp.BestDay == nil || resp.BestDay.Date != "2026-08-30" {
		t.Errorf("expected best day 2026-08-30, got %+v", resp.BestDay)
	}
	if resp.TopPayment == nil || resp.TopPayment.PaymentMethod != models.PaymentCash {
		t.Errorf("expected cash as top payment, got %+v", resp.TopPayment)
	}
}

func TestMonthlyReport_BestMonth(t *testing.T) {
	h := newTestHandler(t, reportsBackend(false))

	recorder := httptest.NewRecorder()
	h.MonthlyReport(recorder, authedRequest("GET", "/api/reports/monthly", nil, testSession(models.RoleOwner)))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body)
	}

	var resp struct {
		TotalMonthly float64             `json:"total_monthly"`
		BestMonth    *models.MonthlySale `json:"best_month"`
		TopItems     []models.TopItem    `json:"top_items"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.TotalMonthly != 7500000 {
		t.Errorf("expected total 7500000, got %v", resp.TotalMonthly)
	}
	if resp.BestMonth == nil || resp.BestMonth.Month != "2026-08" {
		t.Errorf("expected best month 2026-08, got %+v", resp.BestMonth)
	}
	if len(resp.TopItems) != 1 {
		t.Errorf("expected top items, got %+v", resp.TopItems)
	}
}

// Reports need every series, so one failed leg fails the page.
func TestDailyReport_FailsWhenAnySeriesFails(t *testing.T) {
	h := newTestHandler(t, reportsBackend(true))

	recorder := httptest.NewRecorder()
	h.DailyReport(recorder, authedRequest("GET", "/api/reports/daily", nil, testSession(models.RoleOwner)))

	if recorder.Code == http.StatusOK {
		t.Error("expected report to fail when one series fails")
	}
}
