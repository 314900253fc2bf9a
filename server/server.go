package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/senandung-senja/kasir/handlers"
	"github.com/senandung-senja/kasir/metrics"
	"github.com/senandung-senja/kasir/middlewares"
	"github.com/senandung-senja/kasir/models"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 1 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 1 * time.Minute
)

func SetupRoutes(h *handlers.Handler) *Server {
	router := mux.NewRouter()
	router.Use(metrics.New().Middleware)

	authRoutes := router.PathPrefix("/api").Subrouter()
	authRoutes.Use(middlewares.AuthMiddleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")
	router.HandleFunc("/login", h.Login).Methods("POST")
	authRoutes.HandleFunc("/logout", h.Logout).Methods("POST")

	// transaction screen
	authRoutes.HandleFunc("/menus", h.ListMenus).Methods("GET")
	authRoutes.HandleFunc("/cart", h.GetCart).Methods("GET")
	authRoutes.HandleFunc("/cart", h.ClearCart).Methods("DELETE")
	authRoutes.HandleFunc("/cart/items", h.AddCartItem).Methods("POST")
	authRoutes.HandleFunc("/cart/items/{id}", h.RemoveCartItem).Methods("DELETE")
	authRoutes.HandleFunc("/cart/payment-method", h.SetPaymentMethod).Methods("PUT")
	authRoutes.HandleFunc("/cart/checkout", h.Checkout).Methods("POST")

	// payment confirmation screen
	authRoutes.HandleFunc("/payments/{id}", h.GetPayment).Methods("GET")
	authRoutes.HandleFunc("/payments/{id}", h.CompletePayment).Methods("POST")

	// dashboard, history, report screens
	authRoutes.HandleFunc("/dashboard", h.Dashboard).Methods("GET")
	authRoutes.HandleFunc("/history", h.History).Methods("GET")
	authRoutes.HandleFunc("/reports/daily", h.DailyReport).Methods("GET")
	authRoutes.HandleFunc("/reports/weekly", h.WeeklyReport).Methods("GET")
	authRoutes.HandleFunc("/reports/monthly", h.MonthlyReport).Methods("GET")

	// admin only
	admin := authRoutes.PathPrefix("/admin").Subrouter()
	admin.Use(middlewares.RoleBasedMiddleware(models.RoleAdmin))

	admin.HandleFunc("/history/{id}/cancel", h.CancelTransaction).Methods("POST")
	admin.HandleFunc("/history/{id}/receipt", h.TransactionReceipt).Methods("GET")
	admin.HandleFunc("/reports/daily.pdf", h.DailyReportPDF).Methods("GET")

	admin.HandleFunc("/menus", h.AdminListMenus).Methods("GET")
	admin.HandleFunc("/menus", h.AdminCreateMenu).Methods("POST")
	admin.HandleFunc("/menus/{id}", h.AdminUpdateMenu).Methods("PUT")
	admin.HandleFunc("/menus/{id}/toggle", h.AdminToggleMenu).Methods("PATCH")
	admin.HandleFunc("/menus/{id}", h.AdminDeleteMenu).Methods("DELETE")
	admin.HandleFunc("/categories", h.AdminListCategories).Methods("GET")

	admin.HandleFunc("/users", h.AdminListUsers).Methods("GET")
	admin.HandleFunc("/users", h.AdminCreateUser).Methods("POST")
	admin.HandleFunc("/users/{id}", h.AdminUpdateUser).Methods("PUT")
	admin.HandleFunc("/users/{id}/toggle", h.AdminToggleUser).Methods("PATCH")
	admin.HandleFunc("/users/{id}", h.AdminDeleteUser).Methods("DELETE")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
