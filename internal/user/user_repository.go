package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"stepsocial/internal/common"
	"stepsocial/internal/dbmysql"
)

//go:generate mockgen -source=user_repository.go -destination=mock_user_repository.go -package=user

// UserRepository holds the basic crud for user rows.
type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error)
	GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*dbmysql.User, error)
	UpdateUser(ctx context.Context, user *dbmysql.User) error
	TouchLastLogin(ctx context.Context, userID uint64, at time.Time) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser returns common.ErrConflict when the firebase uid is taken.
func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: user %s already exists", common.ErrConflict, user.FirebaseUID)
	}
	return err
}

func (r *userRepository) GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %d", common.ErrNotFound, userID)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("firebase_uid = ?", firebaseUID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user not found", common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *dbmysql.User) error {
	err := r.db.WithContext(ctx).Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", common.ErrConflict, err)
	}
	return err
}

func (r *userRepository) TouchLastLogin(ctx context.Context, userID uint64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Where("id = ?", userID).
		Update("last_login_at", at).Error
}
