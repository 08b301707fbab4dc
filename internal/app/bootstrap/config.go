// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/chamberhub/internal/app/system/assets"
	"github.com/dalemusser/chamberhub/internal/app/system/auditlog"
	"github.com/dalemusser/chamberhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for ChamberHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, storage_type, etc.
//   - Environment variables: CHAMBERHUB_MONGO_URI, CHAMBERHUB_STORAGE_TYPE, etc.
//   - Command-line flags: --mongo_uri, --storage_type, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "chamberhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Public disk
	{Name: "storage_type", Default: "local", Desc: "Storage backend: 'local' or 's3'"},
	{Name: "storage_local_path", Default: "./storage/public", Desc: "Local public disk root"},
	{Name: "public_url_prefix", Default: "http://localhost:8080/storage/", Desc: "URL prefix for stored images and videos"},
	{Name: "serve_public_disk", Default: true, Desc: "Serve the local public disk under /storage"},

	// S3 configuration
	{Name: "storage_s3_region", Default: "", Desc: "AWS region for S3"},
	{Name: "storage_s3_bucket", Default: "", Desc: "S3 bucket name"},
	{Name: "storage_s3_prefix", Default: "public/", Desc: "S3 key prefix"},
	{Name: "storage_s3_endpoint", Default: "", Desc: "S3-compatible endpoint (blank for AWS)"},

	// Upload ceilings
	{Name: "image_max_bytes", Default: int(assets.DefaultImageMaxBytes), Desc: "Largest accepted image in bytes"},
	{Name: "video_max_bytes", Default: int(assets.DefaultVideoMaxBytes), Desc: "Largest accepted video in bytes"},

	// Bearer tokens
	{Name: "token_ttl", Default: "0", Desc: "Bearer token lifetime (e.g., 720h); 0 means tokens never expire"},
	{Name: "token_cleanup_interval", Default: "10m", Desc: "How often expired tokens are purged"},

	// Audit logging settings
	{Name: "audit_log_auth", Default: "all", Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_admin", Default: "all", Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Change feed
	{Name: "nats_url", Default: "", Desc: "NATS server URL for the change feed (blank disables it)"},
	{Name: "nats_subject_prefix", Default: "chamberhub.changes", Desc: "Subject prefix for change messages"},

	// Login throttling
	{Name: "login_rate_ip", Default: 10, Desc: "Login attempts per IP per minute"},
	{Name: "login_rate_email", Default: 5, Desc: "Login attempts per email per 5 minutes"},

	// Operation deadlines
	{Name: "timeout_short", Default: "5s", Desc: "Deadline for single-record reads and writes"},
	{Name: "timeout_medium", Default: "10s", Desc: "Deadline for deletes, aggregates and logins"},
	{Name: "timeout_long", Default: "30s", Desc: "Deadline for schema setup"},
	{Name: "timeout_upload", Default: "5m", Desc: "Deadline for requests that write objects"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges flags > env (CHAMBERHUB_*) >
// config files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CHAMBERHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		StorageType:      strings.ToLower(strings.TrimSpace(appValues.String("storage_type"))),
		StorageLocalPath: appValues.String("storage_local_path"),
		PublicURLPrefix:  appValues.String("public_url_prefix"),
		ServePublicDisk:  appValues.Bool("serve_public_disk"),

		StorageS3Region:   appValues.String("storage_s3_region"),
		StorageS3Bucket:   appValues.String("storage_s3_bucket"),
		StorageS3Prefix:   appValues.String("storage_s3_prefix"),
		StorageS3Endpoint: appValues.String("storage_s3_endpoint"),

		ImageMaxBytes: int64(appValues.Int("image_max_bytes")),
		VideoMaxBytes: int64(appValues.Int("video_max_bytes")),

		TokenTTL:             appValues.Duration("token_ttl", 0),
		TokenCleanupInterval: appValues.Duration("token_cleanup_interval", 10*time.Minute),

		AuditLogAuth:  appValues.String("audit_log_auth"),
		AuditLogAdmin: appValues.String("audit_log_admin"),

		NATSURL:           appValues.String("nats_url"),
		NATSSubjectPrefix: appValues.String("nats_subject_prefix"),

		LoginRateIP:    appValues.Int("login_rate_ip"),
		LoginRateEmail: appValues.Int("login_rate_email"),

		TimeoutShort:  appValues.Duration("timeout_short", timeouts.DefaultShort),
		TimeoutMedium: appValues.Duration("timeout_medium", timeouts.DefaultMedium),
		TimeoutLong:   appValues.Duration("timeout_long", timeouts.DefaultLong),
		TimeoutUpload: appValues.Duration("timeout_upload", timeouts.DefaultUpload),
	}

	return coreCfg, appCfg, nil
}

var auditDestinations = map[string]bool{
	auditlog.DestAll: true,
	auditlog.DestDB:  true,
	auditlog.DestLog: true,
	auditlog.DestOff: true,
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI is checked here to catch configuration errors before
// attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	switch appCfg.StorageType {
	case "local":
		if appCfg.StorageLocalPath == "" {
			return fmt.Errorf("storage_type local requires storage_local_path")
		}
	case "s3":
		if appCfg.StorageS3Bucket == "" {
			return fmt.Errorf("storage_type s3 requires storage_s3_bucket")
		}
	default:
		return fmt.Errorf("storage_type must be 'local' or 's3', got %q", appCfg.StorageType)
	}

	if appCfg.ImageMaxBytes <= 0 || appCfg.VideoMaxBytes <= 0 {
		return fmt.Errorf("image_max_bytes and video_max_bytes must be positive")
	}
	if appCfg.TokenTTL < 0 {
		return fmt.Errorf("token_ttl must not be negative")
	}
	if appCfg.TokenTTL > 0 && appCfg.TokenCleanupInterval <= 0 {
		return fmt.Errorf("token_cleanup_interval must be positive when token_ttl is set")
	}
	if !auditDestinations[appCfg.AuditLogAuth] || !auditDestinations[appCfg.AuditLogAdmin] {
		return fmt.Errorf("audit_log_auth and audit_log_admin must be one of all, db, log, off")
	}
	return nil
}
