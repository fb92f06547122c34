// internal/app/bootstrap/connect.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/reviewhub/internal/app/store/localstore"
	"github.com/dalemusser/reviewhub/internal/app/store/submissions"
	"github.com/dalemusser/waffle/config"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ConnectDB opens the document store and loads the domain stores from it.
// There is no external database; persistence is the data_dir on the local
// filesystem.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	ls, err := localstore.New(afero.NewOsFs(), appCfg.DataDir, logger)
	if err != nil {
		return Deps{}, err
	}

	dir, err := directory.New(ls, logger)
	if err != nil {
		return Deps{}, err
	}
	subs, err := submissions.New(ls, logger)
	if err != nil {
		return Deps{}, err
	}

	logger.Info("document store opened", zap.String("data_dir", appCfg.DataDir))
	return Deps{
		Local:       ls,
		Directory:   dir,
		Submissions: subs,
	}, nil
}

// EnsureSchema is a no-op: the document store has no schema or indexes to
// prepare.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return nil
}
