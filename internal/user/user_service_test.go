package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepsocial/internal/common"
	"stepsocial/internal/dbmysql"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

var loginAt = time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

func newServiceUnderTest(t *testing.T) (*userService, *MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := NewMockUserRepository(ctrl)
	svc := NewUserService(repo, 8000, quietLogger()).(*userService)
	svc.now = func() time.Time { return loginAt }
	return svc, repo
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }
func notFound() error         { return fmt.Errorf("%w: user not found", common.ErrNotFound) }
func identity() *common.Identity {
	return &common.Identity{UID: "uid-1", Email: "Alice@Example.com", Name: "Alice", EmailVerified: true}
}

func TestUserService_SyncUser_CreatesOnFirstLogin(t *testing.T) {
	svc, repo := newServiceUnderTest(t)
	ctx := context.Background()

	repo.EXPECT().GetUserByFirebaseUID(ctx, "uid-1").Return(nil, notFound())
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *dbmysql.User) error {
		u.ID = 1
		return nil
	})

	user, err := svc.SyncUser(ctx, identity(), SyncInput{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), user.ID)
	assert.Equal(t, "uid-1", user.FirebaseUID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice", user.DisplayName)
	assert.Equal(t, 8000, user.StepGoal)
	assert.True(t, user.IsActive)
	assert.True(t, user.EmailVerified)
	require.NotNil(t, user.LastLoginAt)
	assert.Equal(t, loginAt, *user.LastLoginAt)
	assert.Nil(t, user.PhotoURL)
}

func TestUserService_SyncUser_RefreshesLastLoginOnly(t *testing.T) {
	svc, repo := newServiceUnderTest(t)
	ctx := context.Background()

	existing := &dbmysql.User{ID: 5, FirebaseUID: "uid-1", Email: "old@example.com", Username: "walker", StepGoal: 12000, IsActive: true}
	repo.EXPECT().GetUserByFirebaseUID(ctx, "uid-1").Return(existing, nil)
	repo.EXPECT().TouchLastLogin(ctx, uint64(5), loginAt).Return(nil)

	user, err := svc.SyncUser(ctx, identity(), SyncInput{Email: "new@example.com", Username: "renamed", StepGoal: intPtr(500)})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), user.ID)
	assert.Equal(t, "old@example.com", user.Email)
	assert.Equal(t, "walker", user.Username)
	assert.Equal(t, 12000, user.StepGoal)
	require.NotNil(t, user.LastLoginAt)
	assert.Equal(t, loginAt, *user.LastLoginAt)
}

func TestUserService_SyncUser_ConcurrentFirstLogin(t *testing.T) {
	svc, repo := newServiceUnderTest(t)
	ctx := context.Background()

	winner := &dbmysql.User{ID: 9, FirebaseUID: "uid-1", Email: "alice@example.com", Username: "alice", StepGoal: 8000}
	gomock.InOrder(
		repo.EXPECT().GetUserByFirebaseUID(ctx, "uid-1").Return(nil, notFound()),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(fmt.Errorf("%w: user uid-1 already exists", common.ErrConflict)),
		repo.EXPECT().GetUserByFirebaseUID(ctx, "uid-1").Return(winner, nil),
		repo.EXPECT().TouchLastLogin(ctx, uint64(9), loginAt).Return(nil),
	)

	user, err := svc.SyncUser(ctx, identity(), SyncInput{})
	require.NoError(t, err)
	assert.Equal(t, uint64(9), user.ID)
}

func TestUserService_SyncUser_Validation(t *testing.T) {
	tests := []struct {
		name     string
		identity *common.Identity
		in       SyncInput
		wantErr  error
	}{
		{"no identity", nil, SyncInput{Email: "a@example.com"}, common.ErrUnauthenticated},
		{"bad email", &common.Identity{UID: "uid-1"}, SyncInput{Email: "bademail"}, common.ErrInvalidOperation},
		{"no email anywhere", &common.Identity{UID: "uid-1"}, SyncInput{}, common.ErrInvalidOperation},
		{"bad username", identity(), SyncInput{Username: "has space"}, common.ErrInvalidOperation},
		{"zero goal", identity(), SyncInput{StepGoal: intPtr(0)}, common.ErrInvalidOperation},
		{"bad photo", identity(), SyncInput{PhotoURL: strPtr("not a url")}, common.ErrInvalidOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newServiceUnderTest(t)
			_, err := svc.SyncUser(context.Background(), tt.identity, tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_SyncUser_StorageError(t *testing.T) {
	svc, repo := newServiceUnderTest(t)
	boom := errors.New("connection refused")
	repo.EXPECT().GetUserByFirebaseUID(gomock.Any(), "uid-1").Return(nil, boom)

	_, err := svc.SyncUser(context.Background(), identity(), SyncInput{})
	assert.ErrorIs(t, err, boom)
}

func TestUserService_ResolveIdentity(t *testing.T) {
	svc, repo := newServiceUnderTest(t)
	ctx := context.Background()

	repo.EXPECT().GetUserByFirebaseUID(ctx, "uid-1").Return(&dbmysql.User{ID: 1}, nil)
	user, err := svc.ResolveIdentity(ctx, identity())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), user.ID)

	repo.EXPECT().GetUserByFirebaseUID(ctx, "uid-2").Return(nil, notFound())
	_, err = svc.ResolveIdentity(ctx, &common.Identity{UID: "uid-2"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.ResolveIdentity(ctx, &common.Identity{})
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestUserService_UpdateProfile(t *testing.T) {
	tests := []struct {
		name    string
		update  ProfileUpdate
		setup   func(repo *MockUserRepository)
		check   func(t *testing.T, u *dbmysql.User)
		wantErr error
	}{
		{
			name: "updates provided fields only",
			update: ProfileUpdate{
				StepGoal:    intPtr(6000),
				IsOnboarded: boolPtr(true),
				PhotoURL:    strPtr("https://example.com/a.png"),
			},
			setup: func(repo *MockUserRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).
					Return(&dbmysql.User{ID: 1, Username: "alice", StepGoal: 10000}, nil)
				repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, u *dbmysql.User) {
				assert.Equal(t, "alice", u.Username)
				assert.Equal(t, 6000, u.StepGoal)
				assert.True(t, u.IsOnboarded)
				require.NotNil(t, u.PhotoURL)
				assert.Equal(t, "https://example.com/a.png", *u.PhotoURL)
			},
		},
		{
			name:    "no fields",
			update:  ProfileUpdate{},
			setup:   func(repo *MockUserRepository) {},
			wantErr: common.ErrInvalidOperation,
		},
		{
			name:    "step goal below one",
			update:  ProfileUpdate{StepGoal: intPtr(0)},
			setup:   func(repo *MockUserRepository) {},
			wantErr: common.ErrInvalidOperation,
		},
		{
			name:    "invalid username",
			update:  ProfileUpdate{Username: strPtr("no spaces allowed")},
			setup:   func(repo *MockUserRepository) {},
			wantErr: common.ErrInvalidOperation,
		},
		{
			name:   "username taken",
			update: ProfileUpdate{Username: strPtr("bob")},
			setup: func(repo *MockUserRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(&dbmysql.User{ID: 1}, nil)
				repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(common.ErrConflict)
			},
			wantErr: common.ErrConflict,
		},
		{
			name:   "unknown user",
			update: ProfileUpdate{DisplayName: strPtr("Al")},
			setup: func(repo *MockUserRepository) {
				repo.EXPECT().GetUserByID(gomock.Any(), uint64(1)).Return(nil, notFound())
			},
			wantErr: common.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newServiceUnderTest(t)
			tt.setup(repo)

			user, err := svc.UpdateProfile(context.Background(), 1, tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, user)
		})
	}
}

func TestUsernameFromEmail(t *testing.T) {
	assert.Equal(t, "jane.doe", usernameFromEmail("jane.doe@example.com"))
	assert.Equal(t, "jane_doe", usernameFromEmail("jane+doe@example.com"))
	assert.Equal(t, "walker", usernameFromEmail("@example.com"))
}
