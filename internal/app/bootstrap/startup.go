// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/chamberhub/internal/app/store/audit"
	tokenstore "github.com/dalemusser/chamberhub/internal/app/store/tokens"
	"github.com/dalemusser/chamberhub/internal/app/system/assets"
	"github.com/dalemusser/chamberhub/internal/app/system/auditlog"
	"github.com/dalemusser/chamberhub/internal/app/system/changefeed"
	"github.com/dalemusser/chamberhub/internal/app/system/ratelimit"
	"github.com/dalemusser/chamberhub/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

// services holds what Startup builds for BuildHandler and Shutdown.
type services struct {
	assets  *assets.Manager
	feed    changefeed.Publisher
	audit   *auditlog.Logger
	limiter *ratelimit.LoginLimiter
	cleanup *workers.TokenCleanup // nil when tokens never expire
}

var svc *services

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built: the
// public disk, the change feed, audit logging, login throttling and the
// expired-token sweep.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	backend, err := newBackend(ctx, appCfg)
	if err != nil {
		logger.Error("storage backend init failed", zap.Error(err))
		return err
	}

	feed, err := newFeed(appCfg, logger)
	if err != nil {
		logger.Error("change feed init failed", zap.Error(err))
		return err
	}

	s := &services{
		assets: assets.New(backend, assets.Config{
			PublicURL:     appCfg.PublicURLPrefix,
			ImageMaxBytes: appCfg.ImageMaxBytes,
			VideoMaxBytes: appCfg.VideoMaxBytes,
		}, logger),
		feed: feed,
		audit: auditlog.New(audit.New(deps.MongoDatabase), logger, auditlog.Config{
			Auth:  appCfg.AuditLogAuth,
			Admin: appCfg.AuditLogAdmin,
		}, feed),
		limiter: ratelimit.NewLoginLimiter(ratelimit.LoginConfig{
			PerIP:       appCfg.LoginRateIP,
			IPPeriod:    time.Minute,
			PerEmail:    appCfg.LoginRateEmail,
			EmailPeriod: 5 * time.Minute,
		}),
	}

	if appCfg.TokenTTL > 0 {
		s.cleanup = workers.NewTokenCleanup(tokenstore.New(deps.MongoDatabase), logger, appCfg.TokenCleanupInterval)
		s.cleanup.Start()
	}

	svc = s
	logger.Info("startup complete",
		zap.String("storage_type", appCfg.StorageType),
		zap.Bool("change_feed", appCfg.NATSURL != ""),
		zap.Duration("token_ttl", appCfg.TokenTTL))
	return nil
}

func newBackend(ctx context.Context, appCfg AppConfig) (assets.Backend, error) {
	switch appCfg.StorageType {
	case "s3":
		return assets.NewS3(ctx, assets.S3Config{
			Region:   appCfg.StorageS3Region,
			Bucket:   appCfg.StorageS3Bucket,
			Prefix:   appCfg.StorageS3Prefix,
			Endpoint: appCfg.StorageS3Endpoint,
		})
	case "local":
		return storage.NewLocal(storage.LocalConfig{
			BasePath: appCfg.StorageLocalPath,
			BaseURL:  appCfg.PublicURLPrefix,
		})
	default:
		return nil, fmt.Errorf("unknown storage type %q", appCfg.StorageType)
	}
}

func newFeed(appCfg AppConfig, logger *zap.Logger) (changefeed.Publisher, error) {
	if appCfg.NATSURL == "" {
		return changefeed.Nop{}, nil
	}
	return changefeed.Connect(appCfg.NATSURL, appCfg.NATSSubjectPrefix, logger)
}
