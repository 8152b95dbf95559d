package social

//go:generate mockgen -source=friend_repository.go -destination=mock_friend_repository.go -package=social

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"stepsocial/internal/common"
	"stepsocial/internal/dbmysql"
)

// FriendRepository stores friend requests. Transitions out of pending are
// conditional on the row still being pending; the bool results report
// whether this call performed the transition.
type FriendRepository interface {
	Create(ctx context.Context, request *dbmysql.FriendRequest) error
	GetByID(ctx context.Context, requestID uint64) (*dbmysql.FriendRequest, error)
	FindBetween(ctx context.Context, userA, userB uint64) (*dbmysql.FriendRequest, error)
	Accept(ctx context.Context, requestID uint64, at time.Time) (bool, error)
	DeletePending(ctx context.Context, requestID uint64) (bool, error)
	ListIncomingPending(ctx context.Context, userID uint64) ([]dbmysql.FriendRequest, error)
	ListOutgoingPending(ctx context.Context, userID uint64) ([]dbmysql.FriendRequest, error)
	ListAccepted(ctx context.Context, userID uint64) ([]dbmysql.FriendRequest, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

// Create inserts a pending request. The unordered-pair unique index turns a
// concurrent duplicate into common.ErrConflict.
func (r *friendRepository) Create(ctx context.Context, request *dbmysql.FriendRequest) error {
	err := r.db.WithContext(ctx).Omit("Sender", "Receiver").Create(request).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: friend request already exists", common.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("create friend request: %w", err)
	}
	return nil
}

func (r *friendRepository) GetByID(ctx context.Context, requestID uint64) (*dbmysql.FriendRequest, error) {
	var request dbmysql.FriendRequest
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("id = ?", requestID).
		First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: friend request %d", common.ErrNotFound, requestID)
	}
	if err != nil {
		return nil, fmt.Errorf("load friend request %d: %w", requestID, err)
	}
	return &request, nil
}

func (r *friendRepository) FindBetween(ctx context.Context, userA, userB uint64) (*dbmysql.FriendRequest, error) {
	low, high := dbmysql.OrderedPair(userA, userB)

	var request dbmysql.FriendRequest
	err := r.db.WithContext(ctx).
		Where("pair_low = ? AND pair_high = ?", low, high).
		First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no friend request between %d and %d", common.ErrNotFound, userA, userB)
	}
	if err != nil {
		return nil, fmt.Errorf("find friend request between %d and %d: %w", userA, userB, err)
	}
	return &request, nil
}

func (r *friendRepository) Accept(ctx context.Context, requestID uint64, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&dbmysql.FriendRequest{}).
		Where("id = ? AND status = ?", requestID, dbmysql.FriendRequestPending).
		Updates(map[string]interface{}{
			"status":       dbmysql.FriendRequestAccepted,
			"responded_at": at,
		})
	if result.Error != nil {
		return false, fmt.Errorf("accept friend request %d: %w", requestID, result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *friendRepository) DeletePending(ctx context.Context, requestID uint64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", requestID, dbmysql.FriendRequestPending).
		Delete(&dbmysql.FriendRequest{})
	if result.Error != nil {
		return false, fmt.Errorf("delete friend request %d: %w", requestID, result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *friendRepository) ListIncomingPending(ctx context.Context, userID uint64) ([]dbmysql.FriendRequest, error) {
	var requests []dbmysql.FriendRequest
	err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND status = ?", userID, dbmysql.FriendRequestPending).
		Preload("Sender").
		Order("created_at DESC, id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("list incoming friend requests for %d: %w", userID, err)
	}
	return requests, nil
}

func (r *friendRepository) ListOutgoingPending(ctx context.Context, userID uint64) ([]dbmysql.FriendRequest, error) {
	var requests []dbmysql.FriendRequest
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND status = ?", userID, dbmysql.FriendRequestPending).
		Preload("Receiver").
		Order("created_at DESC, id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("list outgoing friend requests for %d: %w", userID, err)
	}
	return requests, nil
}

func (r *friendRepository) ListAccepted(ctx context.Context, userID uint64) ([]dbmysql.FriendRequest, error) {
	var requests []dbmysql.FriendRequest
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?", userID, userID, dbmysql.FriendRequestAccepted).
		Preload("Sender").
		Preload("Receiver").
		Order("responded_at DESC, id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("list friends for %d: %w", userID, err)
	}
	return requests, nil
}
