package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"stepsocial/internal/common"
	"stepsocial/internal/dbmysql"
)

//go:generate mockgen -source=user_service.go -destination=mock_user_service.go -package=user

// SyncInput is what the client sends on login. It only seeds a new user;
// empty fields fall back to the token claims.
type SyncInput struct {
	Email         string
	Username      string
	DisplayName   string
	PhotoURL      *string
	ExpoPushToken *string
	StepGoal      *int
}

// ProfileUpdate carries the fields a user may change. Nil means unchanged.
// An empty PhotoURL clears the photo.
type ProfileUpdate struct {
	Username      *string
	DisplayName   *string
	StepGoal      *int
	PhotoURL      *string
	ExpoPushToken *string
	IsOnboarded   *bool
}

func (u ProfileUpdate) empty() bool {
	return u.Username == nil && u.DisplayName == nil && u.StepGoal == nil &&
		u.PhotoURL == nil && u.ExpoPushToken == nil && u.IsOnboarded == nil
}

type UserService interface {
	SyncUser(ctx context.Context, identity *common.Identity, in SyncInput) (*dbmysql.User, error)
	ResolveIdentity(ctx context.Context, identity *common.Identity) (*dbmysql.User, error)
	GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error)
	GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, userID uint64, update ProfileUpdate) (*dbmysql.User, error)
}

type userService struct {
	userRepo        UserRepository
	defaultStepGoal int
	logger          logrus.FieldLogger
	now             func() time.Time
}

func NewUserService(userRepo UserRepository, defaultStepGoal int, logger logrus.FieldLogger) UserService {
	if defaultStepGoal <= 0 {
		defaultStepGoal = dbmysql.DefaultStepGoal
	}
	return &userService{
		userRepo:        userRepo,
		defaultStepGoal: defaultStepGoal,
		logger:          logger,
		now:             time.Now,
	}
}

// SyncUser creates the caller's row on first login and refreshes it on every
// later one. The firebase uid always comes from the verified token.
func (s *userService) SyncUser(ctx context.Context, identity *common.Identity, in SyncInput) (*dbmysql.User, error) {
	if identity == nil || identity.UID == "" {
		return nil, common.ErrUnauthenticated
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		email = strings.ToLower(identity.Email)
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, err
	}
	if in.Username != "" {
		if err := common.ValidateUsername(in.Username); err != nil {
			return nil, err
		}
	}
	if in.StepGoal != nil {
		if err := common.ValidateStepGoal(*in.StepGoal); err != nil {
			return nil, err
		}
	}
	if in.PhotoURL != nil && *in.PhotoURL != "" && !validURL(*in.PhotoURL) {
		return nil, fmt.Errorf("%w: photoUrl must be a valid URL", common.ErrInvalidOperation)
	}

	now := s.now().UTC()
	existing, err := s.userRepo.GetUserByFirebaseUID(ctx, identity.UID)
	switch {
	case err == nil:
		return s.refresh(ctx, existing, now)
	case !errors.Is(err, common.ErrNotFound):
		return nil, err
	}

	user := &dbmysql.User{
		FirebaseUID:   identity.UID,
		Email:         email,
		EmailVerified: identity.EmailVerified,
		Username:      firstNonEmpty(in.Username, usernameFromEmail(email)),
		DisplayName:   firstNonEmpty(in.DisplayName, identity.Name),
		PhotoURL:      photoOrClaim(in.PhotoURL, identity.Picture),
		ExpoPushToken: in.ExpoPushToken,
		StepGoal:      s.defaultStepGoal,
		IsActive:      true,
		LastLoginAt:   &now,
	}
	if in.StepGoal != nil {
		user.StepGoal = *in.StepGoal
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if !errors.Is(err, common.ErrConflict) {
			return nil, err
		}
		// A concurrent first login created the row.
		existing, err := s.userRepo.GetUserByFirebaseUID(ctx, identity.UID)
		if err != nil {
			return nil, err
		}
		return s.refresh(ctx, existing, now)
	}

	s.logger.WithFields(logrus.Fields{
		"userId":      user.ID,
		"firebaseUid": user.FirebaseUID,
	}).Info("User created on first sync")
	return user, nil
}

// refresh records a repeat login. Profile fields are only changed through
// UpdateProfile.
func (s *userService) refresh(ctx context.Context, user *dbmysql.User, now time.Time) (*dbmysql.User, error) {
	if err := s.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now
	return user, nil
}

// ResolveIdentity maps a verified token to the stored user. Callers that
// never synced get common.ErrNotFound.
func (s *userService) ResolveIdentity(ctx context.Context, identity *common.Identity) (*dbmysql.User, error) {
	if identity == nil || identity.UID == "" {
		return nil, common.ErrUnauthenticated
	}
	return s.userRepo.GetUserByFirebaseUID(ctx, identity.UID)
}

func (s *userService) GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint64, update ProfileUpdate) (*dbmysql.User, error) {
	if update.empty() {
		return nil, fmt.Errorf("%w: at least one field must be provided", common.ErrInvalidOperation)
	}
	if update.Username != nil {
		if err := common.ValidateUsername(*update.Username); err != nil {
			return nil, err
		}
	}
	if update.StepGoal != nil {
		if err := common.ValidateStepGoal(*update.StepGoal); err != nil {
			return nil, err
		}
	}
	if update.PhotoURL != nil && *update.PhotoURL != "" && !validURL(*update.PhotoURL) {
		return nil, fmt.Errorf("%w: photoUrl must be a valid URL", common.ErrInvalidOperation)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		user.Username = strings.TrimSpace(*update.Username)
	}
	if update.DisplayName != nil {
		user.DisplayName = *update.DisplayName
	}
	if update.StepGoal != nil {
		user.StepGoal = *update.StepGoal
	}
	if update.PhotoURL != nil {
		user.PhotoURL = photoOrClaim(update.PhotoURL, "")
	}
	if update.ExpoPushToken != nil {
		user.ExpoPushToken = update.ExpoPushToken
	}
	if update.IsOnboarded != nil {
		user.IsOnboarded = *update.IsOnboarded
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

var (
	urlRegex          = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
	usernameCharRegex = regexp.MustCompile(`[^a-zA-Z0-9_.]`)
)

func validURL(value string) bool {
	return urlRegex.MatchString(value)
}

func usernameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}
	name := usernameCharRegex.ReplaceAllString(local, "_")
	if len(name) > 50 {
		name = name[:50]
	}
	if name == "" {
		name = "walker"
	}
	return name
}

// photoOrClaim treats an empty string as "no photo".
func photoOrClaim(photo *string, claim string) *string {
	if photo != nil {
		if *photo == "" {
			return nil
		}
		v := *photo
		return &v
	}
	if claim != "" {
		return &claim
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
