//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	"stepsocial/internal/activity"
	"stepsocial/internal/common"
	"stepsocial/internal/config"
	"stepsocial/internal/social"
	"stepsocial/internal/user"
)

func InitializeApplication(cfg *config.Config) (*Application, func(), error) {
	wire.Build(
		common.NewLogger,
		wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
		ProvideDatabase,
		ProvideMongo,

		user.NewUserRepository,
		ProvideUserService,
		wire.Bind(new(common.CallerResolver), new(user.UserService)),
		wire.Bind(new(social.UserLookup), new(user.UserService)),
		user.NewHandler,

		ProvideActivityStore,
		activity.ProvideStreakCache,
		ProvideStreakCalculator,
		activity.NewLedger,
		activity.NewHandler,

		social.NewFriendRepository,
		social.NewFriendGraph,
		social.NewHandler,

		common.NewTokenVerifier,
		ProvideRateLimiter,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
