package api

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func NewRouter(h *Handler, log zerolog.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestID(log), Logger(log))

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/summary", h.Summary).Methods(http.MethodGet)
	apiRouter.HandleFunc("/transactions", h.Transactions).Methods(http.MethodGet)
	apiRouter.HandleFunc("/transactions/{id}", h.Transaction).Methods(http.MethodGet)
	apiRouter.HandleFunc("/points", h.Points).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, "not found")
	})

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log: log}),
		handlers.PrintRecoveryStack(os.Getenv("WALLET_DEBUG") != ""),
	)(r)
}

type recoveryLogger struct {
	log zerolog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error().Interface("panic", v).Msg("recovered from panic")
}
