package user

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"stepsocial/internal/common"
)

// Handler serves /api/users. Every route expects an authenticated request.
type Handler struct {
	userService UserService
	logger      logrus.FieldLogger
}

func NewHandler(userService UserService, logger logrus.FieldLogger) *Handler {
	return &Handler{userService: userService, logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/sync", h.SyncUser).Methods(http.MethodPost)
	r.HandleFunc("/me", h.GetProfile).Methods(http.MethodGet)
	r.HandleFunc("/me", h.UpdateProfile).Methods(http.MethodPut)
}

type syncRequest struct {
	Email         string  `json:"email"`
	Username      string  `json:"username"`
	DisplayName   string  `json:"displayName"`
	PhotoURL      *string `json:"photoUrl"`
	ExpoPushToken *string `json:"expoPushToken"`
	StepGoal      *int    `json:"stepGoal"`
}

type updateRequest struct {
	Username      *string `json:"username"`
	DisplayName   *string `json:"displayName"`
	StepGoal      *int    `json:"stepGoal"`
	PhotoURL      *string `json:"photoUrl"`
	ExpoPushToken *string `json:"expoPushToken"`
	IsOnboarded   *bool   `json:"isOnboarded"`
}

func (h *Handler) SyncUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := common.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("No identity found in request")
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized - no user ID found")
		return
	}

	var req syncRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		h.logger.WithError(err).Warn("Invalid sync request data")
		common.WriteError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	user, err := h.userService.SyncUser(r.Context(), identity, SyncInput{
		Email:         req.Email,
		Username:      req.Username,
		DisplayName:   req.DisplayName,
		PhotoURL:      req.PhotoURL,
		ExpoPushToken: req.ExpoPushToken,
		StepGoal:      req.StepGoal,
	})
	if err != nil {
		h.logError(err, logrus.Fields{"firebaseUid": identity.UID}, "Error syncing user")
		common.WriteServiceError(w, err, "Failed to sync user")
		return
	}

	h.logger.WithFields(logrus.Fields{
		"userId":      user.ID,
		"firebaseUid": user.FirebaseUID,
	}).Info("User synced successfully")
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := common.CurrentUser(r.Context(), h.userService)
	if err != nil {
		common.WriteServiceError(w, err, "Failed to fetch user")
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, err := common.CurrentUser(r.Context(), h.userService)
	if err != nil {
		common.WriteServiceError(w, err, "Failed to update user")
		return
	}

	var req updateRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), user.ID, ProfileUpdate{
		Username:      req.Username,
		DisplayName:   req.DisplayName,
		StepGoal:      req.StepGoal,
		PhotoURL:      req.PhotoURL,
		ExpoPushToken: req.ExpoPushToken,
		IsOnboarded:   req.IsOnboarded,
	})
	if err != nil {
		h.logError(err, logrus.Fields{"userId": user.ID}, "Profile update failed")
		common.WriteServiceError(w, err, "Failed to update user")
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    updated,
	})
}

// logError keeps client mistakes out of the error log.
func (h *Handler) logError(err error, fields logrus.Fields, msg string) {
	entry := h.logger.WithError(err).WithFields(fields)
	if common.HTTPStatus(err) >= http.StatusInternalServerError {
		entry.Error(msg)
		return
	}
	entry.Warn(msg)
}
