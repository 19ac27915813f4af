package bootstrap

import (
	"qr-loyalty-service/internal/pkg/config"
	"qr-loyalty-service/internal/pkg/jwt"
	"qr-loyalty-service/internal/pkg/qrsign"
	"qr-loyalty-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		fx.Annotate(
			NewPayloadSigner,
			fx.As(new(commands.PayloadSigner)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret)
}

// The payload signer shares the JWT secret: both protect the same trust
// boundary between the service and scanning clients.
func NewPayloadSigner(cfg config.Config) *qrsign.Signer {
	return qrsign.NewSigner(cfg.JWT.Secret)
}
