package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stepsocial/internal/activity"
	"stepsocial/internal/common"
	"stepsocial/internal/config"
	"stepsocial/internal/dbmysql"
	"stepsocial/internal/social"
	"stepsocial/internal/user"
	"stepsocial/internal/wire"
)

func newTestApp(t *testing.T) (*wire.Application, sqlmock.Sqlmock, *user.MockUserService) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent), DisableAutomaticPing: true})
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Auth:   config.AuthConfig{JWTSecret: "secret", Issuer: "stepsocial", TokenTTL: time.Hour},
	}
	log := logrus.New()
	log.SetOutput(io.Discard)

	users := user.NewMockUserService(gomock.NewController(t))
	ledger := activity.NewMockLedger(gomock.NewController(t))
	graph := social.NewMockFriendGraph(gomock.NewController(t))

	return &wire.Application{
		Config:          cfg,
		Logger:          log,
		DB:              db,
		Verifier:        common.NewTokenVerifier(cfg),
		RateLimiter:     common.NewRateLimiter(100, 100, log),
		UserHandler:     user.NewHandler(users, log),
		ActivityHandler: activity.NewHandler(ledger, users, log),
		SocialHandler:   social.NewHandler(graph, users, log),
	}, mock, users
}

func TestRouter_Health(t *testing.T) {
	app, _, _ := newTestApp(t)
	router := setupRouter(app, time.Now())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"OK"`)
	assert.NotEmpty(t, rec.Header().Get(common.RequestIDHeader))
}

func TestRouter_DBHealth(t *testing.T) {
	app, mock, _ := newTestApp(t)
	router := setupRouter(app, time.Now())

	mock.ExpectPing()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/db-health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Connected")

	mock.ExpectPing().WillReturnError(io.ErrUnexpectedEOF)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/db-health", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Disconnected")
}

func TestRouter_RequiresBearerToken(t *testing.T) {
	app, _, _ := newTestApp(t)
	router := setupRouter(app, time.Now())

	for _, path := range []string{"/api/users/me", "/api/steps/me/today", "/api/social/friends"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRouter_AuthenticatedProfile(t *testing.T) {
	app, _, users := newTestApp(t)
	router := setupRouter(app, time.Now())

	token, err := app.Verifier.GenerateToken(common.Identity{UID: "uid-1"})
	require.NoError(t, err)
	users.EXPECT().ResolveIdentity(gomock.Any(), gomock.Any()).
		Return(&dbmysql.User{ID: 1, FirebaseUID: "uid-1", Username: "alice"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestRouter_PreflightAndMetrics(t *testing.T) {
	app, _, _ := newTestApp(t)
	router := setupRouter(app, time.Now())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/social/friend-requests", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "stepsocial_http_requests_total")
	assert.Contains(t, rec.Body.String(), `stepsocial_http_requests_total{method="OPTIONS",path="unmatched",status="200"}`)
}
