package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/hance08/wallet/internal/config"
	"github.com/hance08/wallet/internal/logger"
	"github.com/hance08/wallet/internal/logic/points"
	"github.com/hance08/wallet/internal/service"
	"github.com/hance08/wallet/internal/store"
)

type Handler struct {
	svc *service.Service
	loc *time.Location
}

func NewHandler(svc *service.Service) (*Handler, error) {
	loc, err := svc.Config.Location()
	if err != nil {
		return nil, err
	}
	return &Handler{svc: svc, loc: loc}, nil
}

// now prefers the ?now= query parameter, then the configured clock.
func (h *Handler) now(r *http.Request) (time.Time, error) {
	if v := r.URL.Query().Get("now"); v != "" {
		return config.ParseTime(v, h.loc)
	}
	return h.svc.Config.Now()
}

func (h *Handler) limit(r *http.Request, fallback int) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New("limit must be a non-negative integer")
	}
	return n, nil
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Summary handles GET /api/summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	now, err := h.now(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid now parameter")
		return
	}
	limit, err := h.limit(r, h.svc.Config.Limit())
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.svc.Wallet.Summary(r.Context())
	if err != nil {
		h.writeLoadError(w, r, err)
		return
	}

	daily := h.svc.Points.DailyPoints(now)
	title, text := service.PaymentStatus(summary.HasPaymentDue, now)
	latest := summary.Transactions[:min(limit, len(summary.Transactions))]

	WriteJSON(w, http.StatusOK, SummaryResponse{
		CurrentBalance: summary.CurrentBalance.StringFixed(2),
		Limit:          summary.Limit.StringFixed(2),
		Available:      summary.Available().StringFixed(2),
		Payment:        PaymentView{Due: summary.HasPaymentDue, Title: title, Text: text},
		DailyPoints:    daily,
		DailyDisplay:   service.FormatPoints(daily),
		Rows:           toRowViews(service.Group(latest, now)),
	})
}

// Transactions handles GET /api/transactions
func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	now, err := h.now(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid now parameter")
		return
	}

	txs, err := h.svc.Wallet.Transactions(r.Context())
	if err != nil {
		h.writeLoadError(w, r, err)
		return
	}

	limit, err := h.limit(r, len(txs))
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	txs = txs[:min(limit, len(txs))]
	rows := service.Group(txs, now)

	WriteJSON(w, http.StatusOK, TransactionsResponse{
		Rows:   toRowViews(rows),
		Count:  len(txs),
		Groups: len(service.Headers(rows)),
	})
}

// Transaction handles GET /api/transactions/{id}
func (h *Handler) Transaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	tx, err := h.svc.Wallet.Transaction(r.Context(), id)
	if errors.Is(err, store.ErrRecordNotFound) {
		WriteError(w, http.StatusNotFound, "transaction not found")
		return
	}
	if err != nil {
		h.writeLoadError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toDetail(tx, h.loc))
}

// Points handles GET /api/points
func (h *Handler) Points(w http.ResponseWriter, r *http.Request) {
	var (
		date time.Time
		err  error
	)
	if v := r.URL.Query().Get("date"); v != "" {
		date, err = config.ParseTime(v, h.loc)
	} else {
		date, err = h.now(r)
	}
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid date parameter")
		return
	}

	engine := h.svc.Points
	_, override := engine.Override(date)
	value := engine.DailyPoints(date)

	WriteJSON(w, http.StatusOK, PointsResponse{
		Date:        date.Format(points.DateLayout),
		DayOfSeason: engine.DayOfSeason(date),
		Points:      value,
		Display:     service.FormatPoints(value),
		Override:    override,
	})
}

func (h *Handler) writeLoadError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	log.Error().Err(err).Msg("failed to serve wallet data")
	WriteError(w, http.StatusBadGateway, "wallet data unavailable")
}
