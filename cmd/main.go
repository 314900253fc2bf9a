package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/senandung-senja/kasir/backend"
	"github.com/senandung-senja/kasir/config"
	"github.com/senandung-senja/kasir/handlers"
	"github.com/senandung-senja/kasir/server"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.Init()

	client := backend.NewClient(config.BackendBaseURL, config.BackendTimeout)
	h := handlers.New(client)
	svr := server.SetupRoutes(h)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Infof("kasir gateway listening on %s, backend %s", config.Port, config.BackendBaseURL)
		if err := svr.Run(config.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Panicf("server error: %v", err)
		}
	}()

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		logrus.WithError(err).Error("failed to shut down cleanly")
	}
}
