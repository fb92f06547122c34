// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the stores are
// loaded, but before the HTTP handler is built. On a fresh data directory
// it seeds the default teams and the two demo accounts; on every later
// start the seed is a no-op.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return deps.Directory.Seed(directory.SeedConfig{
		AdminEmail:    appCfg.AdminEmail,
		AdminPassword: appCfg.SeedAdminPassword,
		UserEmail:     appCfg.SeedUserEmail,
		UserPassword:  appCfg.SeedUserPassword,
	})
}
