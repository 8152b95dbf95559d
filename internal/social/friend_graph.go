package social

//go:generate mockgen -source=friend_graph.go -destination=mock_friend_graph.go -package=social

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"stepsocial/internal/common"
	"stepsocial/internal/dbmysql"
	"stepsocial/internal/metrics"
)

// UserLookup resolves internal user ids. It returns common.ErrNotFound for
// unknown ids.
type UserLookup interface {
	GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error)
}

type Decision string

const (
	DecisionAccept Decision = "accepted"
	DecisionReject Decision = "rejected"
)

func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionAccept, DecisionReject:
		return Decision(s), nil
	}
	return "", fmt.Errorf(`%w: status must be either "accepted" or "rejected"`, common.ErrInvalidOperation)
}

// Response is the outcome of answering a request. Request is set only when
// the request was accepted; a rejected request no longer exists.
type Response struct {
	Decision Decision
	Request  *dbmysql.FriendRequest
}

// Requests groups a user's pending requests, newest first.
type Requests struct {
	Incoming []dbmysql.FriendRequest
	Outgoing []dbmysql.FriendRequest
}

// RelationState is the derived relationship between two users. Absent
// covers never-requested, rejected and cancelled alike.
type RelationState string

const (
	RelationAbsent   RelationState = "none"
	RelationPending  RelationState = "pending"
	RelationAccepted RelationState = "accepted"
)

const (
	DirectionIncoming = "incoming"
	DirectionOutgoing = "outgoing"
)

type Relation struct {
	State     RelationState `json:"state"`
	Direction string        `json:"direction,omitempty"`
	RequestID *uint64       `json:"requestId,omitempty"`
}

type FriendGraph interface {
	SendFriendRequest(ctx context.Context, senderID, receiverID uint64) (*dbmysql.FriendRequest, error)
	RespondToFriendRequest(ctx context.Context, userID, requestID uint64, decision Decision) (Response, error)
	CancelFriendRequest(ctx context.Context, userID, requestID uint64) error
	ListFriendRequests(ctx context.Context, userID uint64) (Requests, error)
	ListFriends(ctx context.Context, userID uint64) ([]dbmysql.PublicProfile, error)
	Relationship(ctx context.Context, userID, otherID uint64) (Relation, error)
}

type friendGraph struct {
	users   UserLookup
	friends FriendRepository
	logger  logrus.FieldLogger
	now     func() time.Time
}

func NewFriendGraph(users UserLookup, friends FriendRepository, logger logrus.FieldLogger) FriendGraph {
	return &friendGraph{
		users:   users,
		friends: friends,
		logger:  logger,
		now:     time.Now,
	}
}

func (g *friendGraph) SendFriendRequest(ctx context.Context, senderID, receiverID uint64) (*dbmysql.FriendRequest, error) {
	log := g.logger.WithFields(logrus.Fields{"senderId": senderID, "receiverId": receiverID})

	if senderID == receiverID {
		return nil, fmt.Errorf("%w: cannot send friend request to yourself", common.ErrInvalidOperation)
	}

	sender, err := g.users.GetUserByID(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("sender: %w", err)
	}
	receiver, err := g.users.GetUserByID(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("receiver: %w", err)
	}

	existing, err := g.friends.FindBetween(ctx, senderID, receiverID)
	switch {
	case err == nil:
		log.WithField("status", existing.Status).Warn("Friend request already exists")
		return nil, fmt.Errorf("%w: friend request already exists with status %s", common.ErrConflict, existing.Status)
	case !errors.Is(err, common.ErrNotFound):
		return nil, err
	}

	request := &dbmysql.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     dbmysql.FriendRequestPending,
		CreatedAt:  g.now().UTC(),
	}
	if err := g.friends.Create(ctx, request); err != nil {
		return nil, err
	}
	request.Sender = sender
	request.Receiver = receiver

	metrics.RecordFriendRequest(metrics.FriendRequestSent)
	log.WithField("requestId", request.ID).Info("Friend request sent")
	return request, nil
}

// pending loads a request and checks that actor is the party allowed to
// move it out of pending.
func (g *friendGraph) pending(ctx context.Context, requestID uint64, allowed func(*dbmysql.FriendRequest) bool, forbidden string) (*dbmysql.FriendRequest, error) {
	request, err := g.friends.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !allowed(request) {
		return nil, fmt.Errorf("%w: %s", common.ErrForbidden, forbidden)
	}
	if request.Status != dbmysql.FriendRequestPending {
		return nil, fmt.Errorf("%w: friend request has already been responded to", common.ErrInvalidOperation)
	}
	return request, nil
}

func errLostRace(requestID uint64) error {
	return fmt.Errorf("%w: friend request %d is no longer pending", common.ErrInvalidOperation, requestID)
}

func (g *friendGraph) RespondToFriendRequest(ctx context.Context, userID, requestID uint64, decision Decision) (Response, error) {
	log := g.logger.WithFields(logrus.Fields{"userId": userID, "requestId": requestID, "status": decision})

	if _, err := ParseDecision(string(decision)); err != nil {
		return Response{}, err
	}

	_, err := g.pending(ctx, requestID,
		func(r *dbmysql.FriendRequest) bool { return r.ReceiverID == userID },
		"you can only respond to friend requests sent to you")
	if err != nil {
		return Response{}, err
	}

	if decision == DecisionReject {
		deleted, err := g.friends.DeletePending(ctx, requestID)
		if err != nil {
			return Response{}, err
		}
		if !deleted {
			return Response{}, errLostRace(requestID)
		}
		metrics.RecordFriendRequest(metrics.FriendRequestRejected)
		log.Info("Friend request rejected")
		return Response{Decision: DecisionReject}, nil
	}

	accepted, err := g.friends.Accept(ctx, requestID, g.now().UTC())
	if err != nil {
		return Response{}, err
	}
	if !accepted {
		return Response{}, errLostRace(requestID)
	}

	request, err := g.friends.GetByID(ctx, requestID)
	if err != nil {
		return Response{}, err
	}
	metrics.RecordFriendRequest(metrics.FriendRequestAccepted)
	log.Info("Friend request accepted")
	return Response{Decision: DecisionAccept, Request: request}, nil
}

func (g *friendGraph) CancelFriendRequest(ctx context.Context, userID, requestID uint64) error {
	_, err := g.pending(ctx, requestID,
		func(r *dbmysql.FriendRequest) bool { return r.SenderID == userID },
		"you can only cancel friend requests you sent")
	if err != nil {
		return err
	}

	deleted, err := g.friends.DeletePending(ctx, requestID)
	if err != nil {
		return err
	}
	if !deleted {
		return errLostRace(requestID)
	}

	metrics.RecordFriendRequest(metrics.FriendRequestCancelled)
	g.logger.WithFields(logrus.Fields{"userId": userID, "requestId": requestID}).Info("Friend request cancelled")
	return nil
}

func (g *friendGraph) ListFriendRequests(ctx context.Context, userID uint64) (Requests, error) {
	incoming, err := g.friends.ListIncomingPending(ctx, userID)
	if err != nil {
		return Requests{}, err
	}
	outgoing, err := g.friends.ListOutgoingPending(ctx, userID)
	if err != nil {
		return Requests{}, err
	}

	g.logger.WithFields(logrus.Fields{
		"userId":        userID,
		"incomingCount": len(incoming),
		"outgoingCount": len(outgoing),
	}).Debug("Friend requests fetched")
	return Requests{Incoming: incoming, Outgoing: outgoing}, nil
}

func (g *friendGraph) ListFriends(ctx context.Context, userID uint64) ([]dbmysql.PublicProfile, error) {
	accepted, err := g.friends.ListAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}

	friends := make([]dbmysql.PublicProfile, 0, len(accepted))
	for i := range accepted {
		friends = append(friends, accepted[i].Counterpart(userID).Public())
	}
	return friends, nil
}

func (g *friendGraph) Relationship(ctx context.Context, userID, otherID uint64) (Relation, error) {
	if userID == otherID {
		return Relation{}, fmt.Errorf("%w: no relationship with yourself", common.ErrInvalidOperation)
	}
	if _, err := g.users.GetUserByID(ctx, otherID); err != nil {
		return Relation{}, err
	}

	request, err := g.friends.FindBetween(ctx, userID, otherID)
	if errors.Is(err, common.ErrNotFound) {
		return Relation{State: RelationAbsent}, nil
	}
	if err != nil {
		return Relation{}, err
	}

	id := request.ID
	if request.Status == dbmysql.FriendRequestAccepted {
		return Relation{State: RelationAccepted, RequestID: &id}, nil
	}
	direction := DirectionOutgoing
	if request.ReceiverID == userID {
		direction = DirectionIncoming
	}
	return Relation{State: RelationPending, Direction: direction, RequestID: &id}, nil
}
