// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// ports, TLS, logging, CORS and body limits; everything specific to the
// chamber site lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Public disk
	StorageType      string // "local" or "s3"
	StorageLocalPath string // root of the local public disk
	PublicURLPrefix  string // prefix joined to stored paths, e.g. http://localhost:8080/storage/
	ServePublicDisk  bool   // mount the local disk under /storage

	// S3 backend (only used if StorageType is "s3")
	StorageS3Region   string
	StorageS3Bucket   string
	StorageS3Prefix   string
	StorageS3Endpoint string // S3-compatible endpoint, blank for AWS

	// Upload ceilings
	ImageMaxBytes int64
	VideoMaxBytes int64

	// Bearer tokens
	TokenTTL             time.Duration // 0 = never expire
	TokenCleanupInterval time.Duration

	// Audit logging destinations: all, db, log, off
	AuditLogAuth  string
	AuditLogAdmin string

	// Change feed (disabled when NATSURL is blank)
	NATSURL           string
	NATSSubjectPrefix string

	// Login throttling
	LoginRateIP    int
	LoginRateEmail int

	// Operation deadlines
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
	TimeoutUpload time.Duration
}
