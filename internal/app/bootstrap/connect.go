// internal/app/bootstrap/connect.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/internhub/internal/app/gateway"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the gateway client for the internship service. An
// unreachable service is logged but does not abort startup: the dashboard
// can come up first and the health endpoint reports the upstream state.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	gw := gateway.New(gateway.Config{
		BaseURL: appCfg.APIBaseURL,
		Timeout: appCfg.APITimeout,
		Logger:  logger,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := gw.Ping(pingCtx); err != nil {
		logger.Warn("internship service unreachable at startup",
			zap.String("base_url", appCfg.APIBaseURL),
			zap.Error(err))
	} else {
		logger.Info("internship service reachable",
			zap.String("base_url", appCfg.APIBaseURL))
	}

	return Deps{Gateway: gw}, nil
}

// EnsureSchema is a no-op: the internship service owns all durable state
// and its schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return nil
}
