package social

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"stepsocial/internal/common"
	"stepsocial/internal/dbmysql"
)

type Handler struct {
	graph    FriendGraph
	resolver common.CallerResolver
	logger   logrus.FieldLogger
}

func NewHandler(graph FriendGraph, resolver common.CallerResolver, logger logrus.FieldLogger) *Handler {
	return &Handler{graph: graph, resolver: resolver, logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/friend-requests", h.SendFriendRequest).Methods(http.MethodPost)
	r.HandleFunc("/friend-requests", h.GetFriendRequests).Methods(http.MethodGet)
	r.HandleFunc("/friend-requests/respond", h.RespondToFriendRequest).Methods(http.MethodPut)
	r.HandleFunc("/friend-requests/cancel", h.CancelFriendRequest).Methods(http.MethodPut)
	r.HandleFunc("/friends", h.GetFriends).Methods(http.MethodGet)
	r.HandleFunc("/relationship/{userId:[0-9]+}", h.GetRelationship).Methods(http.MethodGet)
}

// RequestView is a friend request as shown to either endpoint. Only public
// profile fields of the endpoints are exposed.
type RequestView struct {
	ID          uint64                      `json:"id"`
	SenderID    uint64                      `json:"senderId"`
	ReceiverID  uint64                      `json:"receiverId"`
	Status      dbmysql.FriendRequestStatus `json:"status"`
	CreatedAt   time.Time                   `json:"createdAt"`
	RespondedAt *time.Time                  `json:"respondedAt"`
	Sender      *dbmysql.PublicProfile      `json:"sender,omitempty"`
	Receiver    *dbmysql.PublicProfile      `json:"receiver,omitempty"`
}

func present(r *dbmysql.FriendRequest) RequestView {
	view := RequestView{
		ID:          r.ID,
		SenderID:    r.SenderID,
		ReceiverID:  r.ReceiverID,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		RespondedAt: r.RespondedAt,
	}
	if r.Sender != nil {
		p := r.Sender.Public()
		view.Sender = &p
	}
	if r.Receiver != nil {
		p := r.Receiver.Public()
		view.Receiver = &p
	}
	return view
}

func presentAll(requests []dbmysql.FriendRequest) []RequestView {
	views := make([]RequestView, 0, len(requests))
	for i := range requests {
		views = append(views, present(&requests[i]))
	}
	return views
}

type sendRequest struct {
	ReceiverID uint64 `json:"receiverId"`
}

type respondRequest struct {
	RequestID uint64 `json:"requestId"`
	Status    string `json:"status"`
}

type cancelRequest struct {
	RequestID uint64 `json:"requestId"`
}

func (h *Handler) SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	user, err := common.CurrentUser(r.Context(), h.resolver)
	if err != nil {
		common.WriteServiceError(w, err, "Failed to send friend request")
		return
	}

	var req sendRequest
	if err := common.DecodeJSON(r, &req); err != nil || req.ReceiverID == 0 {
		h.logger.WithField("userId", user.ID).Warn("Invalid friend request data")
		common.WriteError(w, http.StatusBadRequest, "Invalid request data: receiverId must be a positive integer")
		return
	}

	request, err := h.graph.SendFriendRequest(r.Context(), user.ID, req.ReceiverID)
	if err != nil {
		h.logError(err, user.ID, "Error sending friend request")
		common.WriteServiceError(w, err, "Failed to send friend request")
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success":       true,
		"friendRequest": present(request),
	})
}

func (h *Handler) RespondToFriendRequest(w http.ResponseWriter, r *http.Request) {
	user, err := common.CurrentUser(r.Context(), h.resolver)
	if err != nil {
		common.WriteServiceError(w, err, "Failed to respond to friend request")
		return
	}

	var req respondRequest
	if err := common.DecodeJSON(r, &req); err != nil || req.RequestID == 0 {
		common.WriteError(w, http.StatusBadRequest, "Invalid request data: requestId must be a positive integer")
		return
	}
	decision, err := ParseDecision(req.Status)
	if err != nil {
		common.WriteServiceError(w, err, "Invalid request data")
		return
	}

	resp, err := h.graph.RespondToFriendRequest(r.Context(), user.ID, req.RequestID, decision)
	if err != nil {
		h.logError(err, user.ID, "Error responding to friend request")
		common.WriteServiceError(w, err, "Failed to respond to friend request")
		return
	}

	if resp.Request == nil {
		common.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Friend request rejected successfully",
		})
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"friendRequest": present(resp.Request),
	})
}

func (h *Handler) CancelFriendRequest(w http.ResponseWriter, r *http.Request) {
	user, err := common.CurrentUser(r.Context(), h.resolver)
	if err != nil {
		common.WriteServiceError(w, err, "Failed to cancel friend request")
		return
	}

	var req cancelRequest
	if err := common.DecodeJSON(r, &req); err != nil || req.RequestID == 0 {
		common.WriteError(w, http.StatusBadRequest, "Invalid request data: requestId must be a positive integer")
		return
	}

	if err := h.graph.CancelFriendRequest(r.Context(), user.ID, req.RequestID); err != nil {
		h.logError(err, user.ID, "Error canceling friend request")
		common.WriteServiceError(w, err, "Failed to cancel friend request")
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Friend request canceled successfully",
	})
}

func (h *Handler) GetFriendRequests(w http.ResponseWriter, r *http.Request) {
	user, err := common.CurrentUser(r.Context(), h.resolver)
	if err != nil {
		common.WriteServiceError(w, err, "Failed to fetch friend requests")
		return
	}

	requests, err := h.graph.ListFriendRequests(r.Context(), user.ID)
	if err != nil {
		h.logError(err, user.ID, "Error fetching friend requests")
		common.WriteServiceError(w, err, "Failed to fetch friend requests")
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"friendRequests": map[string]interface{}{
			"incoming": presentAll(requests.Incoming),
			"outgoing": presentAll(requests.Outgoing),
		},
	})
}

func (h *Handler) GetFriends(w http.ResponseWriter, r *http.Request) {
	user, err := common.CurrentUser(r.Context(), h.resolver)
	if err != nil {
		common.WriteServiceError(w, err, "Failed to fetch friends")
		return
	}

	friends, err := h.graph.ListFriends(r.Context(), user.ID)
	if err != nil {
		h.logError(err, user.ID, "Error fetching friends")
		common.WriteServiceError(w, err, "Failed to fetch friends")
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"friends": friends,
	})
}

func (h *Handler) GetRelationship(w http.ResponseWriter, r *http.Request) {
	user, err := common.CurrentUser(r.Context(), h.resolver)
	if err != nil {
		common.WriteServiceError(w, err, "Failed to fetch relationship")
		return
	}

	otherID, err := strconv.ParseUint(mux.Vars(r)["userId"], 10, 64)
	if err != nil || otherID == 0 {
		common.WriteError(w, http.StatusBadRequest, "userId must be a positive integer")
		return
	}

	relation, err := h.graph.Relationship(r.Context(), user.ID, otherID)
	if err != nil {
		h.logError(err, user.ID, "Error fetching relationship")
		common.WriteServiceError(w, err, "Failed to fetch relationship")
		return
	}
	common.WriteJSON(w, http.StatusOK, relation)
}

// logError logs unexpected failures at error level and domain rejections at
// warn level.
func (h *Handler) logError(err error, userID uint64, msg string) {
	entry := h.logger.WithError(err).WithField("userId", userID)
	if common.HTTPStatus(err) >= http.StatusInternalServerError {
		entry.Error(msg)
		return
	}
	entry.Warn(msg)
}
