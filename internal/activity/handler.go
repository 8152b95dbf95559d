package activity

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"stepsocial/internal/common"
	"stepsocial/internal/dbmysql"
)

// Handler serves the /api/steps routes for the authenticated caller.
type Handler struct {
	ledger   Ledger
	resolver common.CallerResolver
	logger   logrus.FieldLogger
	now      func() time.Time
}

func NewHandler(ledger Ledger, resolver common.CallerResolver, logger logrus.FieldLogger) *Handler {
	return &Handler{
		ledger:   ledger,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// RegisterRoutes mounts the step routes on r, which is expected to already
// carry authentication.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/me/today", h.Today).Methods(http.MethodGet)
	r.HandleFunc("/me", h.UpsertDay).Methods(http.MethodPut)
	r.HandleFunc("/me/history", h.History).Methods(http.MethodGet)
	r.HandleFunc("/me/streaks", h.Streaks).Methods(http.MethodGet)
}

// DayView is the wire form of one day's steps. ID is null for a day that has
// no stored record yet.
type DayView struct {
	ID           *uint64   `json:"id"`
	UserID       uint64    `json:"userId"`
	StepDate     string    `json:"stepDate"`
	StepCount    int       `json:"stepCount"`
	SourceHint   *string   `json:"sourceHint"`
	LastSyncedAt time.Time `json:"lastSyncedAt"`
}

func present(a *dbmysql.DailyActivity) DayView {
	id := a.ID
	return DayView{
		ID:           &id,
		UserID:       a.UserID,
		StepDate:     dbmysql.DateKey(a.StepDate),
		StepCount:    a.StepCount,
		SourceHint:   a.SourceHint,
		LastSyncedAt: a.LastSyncedAt,
	}
}

type upsertRequest struct {
	StepCount  *int    `json:"stepCount"`
	Date       string  `json:"date,omitempty"`
	SourceHint *string `json:"sourceHint,omitempty"`
}

func (h *Handler) today() time.Time {
	return dbmysql.DateOf(h.now().UTC())
}

func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	user, err := common.CurrentUser(r.Context(), h.resolver)
	if err != nil {
		common.WriteServiceError(w, err, "Failed to fetch today's steps")
		return
	}

	today := h.today()
	activity, found, err := h.ledger.TodaySteps(r.Context(), user.ID, today)
	if err != nil {
		h.logger.WithError(err).WithField("userId", user.ID).Error("Error fetching today's steps")
		common.WriteServiceError(w, err, "Failed to fetch today's steps")
		return
	}
	if !found {
		common.WriteJSON(w, http.StatusOK, DayView{
			UserID:       user.ID,
			StepDate:     dbmysql.DateKey(today),
			LastSyncedAt: h.now().UTC(),
		})
		return
	}
	common.WriteJSON(w, http.StatusOK, present(activity))
}

func (h *Handler) UpsertDay(w http.ResponseWriter, r *http.Request) {
	user, err := common.CurrentUser(r.Context(), h.resolver)
	if err != nil {
		common.WriteServiceError(w, err, "Failed to update steps")
		return
	}

	var req upsertRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if req.StepCount == nil {
		common.WriteError(w, http.StatusBadRequest, "stepCount is required")
		return
	}

	date := h.today()
	if req.Date != "" {
		if date, err = common.ParseDate(req.Date); err != nil {
			common.WriteServiceError(w, err, "Failed to update steps")
			return
		}
	}

	saved, err := h.ledger.UpsertDay(r.Context(), user.ID, date, *req.StepCount, req.SourceHint)
	if err != nil {
		h.logger.WithError(err).WithField("userId", user.ID).Error("Error updating steps")
		common.WriteServiceError(w, err, "Failed to update steps")
		return
	}
	common.WriteJSON(w, http.StatusOK, present(saved))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	user, err := common.CurrentUser(r.Context(), h.resolver)
	if err != nil {
		common.WriteServiceError(w, err, "Failed to fetch step history")
		return
	}

	history, err := h.ledger.GetHistory(r.Context(), user.ID)
	if err != nil {
		h.logger.WithError(err).WithField("userId", user.ID).Error("Error fetching step history")
		common.WriteServiceError(w, err, "Failed to fetch step history")
		return
	}

	days := make([]DayView, 0, len(history))
	for i := range history {
		days = append(days, present(&history[i]))
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"history": days})
}

func (h *Handler) Streaks(w http.ResponseWriter, r *http.Request) {
	user, err := common.CurrentUser(r.Context(), h.resolver)
	if err != nil {
		common.WriteServiceError(w, err, "Failed to compute streaks")
		return
	}

	result, err := h.ledger.Streaks(r.Context(), user, h.today())
	if err != nil {
		h.logger.WithError(err).WithField("userId", user.ID).Error("Error computing streaks")
		common.WriteServiceError(w, err, "Failed to compute streaks")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"currentStreak": result.Current,
		"longestStreak": result.Longest,
		"stepGoal":      user.StepGoal,
	})
}
