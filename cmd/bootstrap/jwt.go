package bootstrap

import (
	"time"

	"lending-ledger/internal/pkg/config"
	"lending-ledger/internal/pkg/errs"
	"lending-ledger/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (jwt.Service, error) {
	access, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_ACCESS_TOKEN_DURATION")
	}
	refresh, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_REFRESH_TOKEN_DURATION")
	}
	if refresh <= access {
		return nil, errs.New("JWT_REFRESH_TOKEN_DURATION must be longer than JWT_ACCESS_TOKEN_DURATION")
	}

	return jwt.NewService(cfg.JWT.Secret, access, refresh), nil
}
