// internal/domain/models/record.go
package models

import (
	"path"
	"strings"
	"time"
)

// Namespaces for stored assets. Each kind writes its objects under its own
// prefix on the public disk.
const (
	NamespaceEvents         = "events"
	NamespaceServices       = "services"
	NamespaceChamberMembers = "chamber_members"
	NamespaceVideos         = "videos"
)

// Timestamps is embedded in every persisted record.
type Timestamps struct {
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Stamp sets both timestamps for a new record.
func (t *Timestamps) Stamp(now time.Time) {
	t.CreatedAt = now
	t.UpdatedAt = now
}

// hasPath reports whether an optional asset path points at something.
func hasPath(p *string) bool {
	return p != nil && *p != ""
}

// InNamespace reports whether p is a clean relative path under namespace.
func InNamespace(p, namespace string) bool {
	if p != path.Clean(p) || strings.Contains(p, "..") {
		return false
	}
	return strings.HasPrefix(p, namespace+"/") && len(p) > len(namespace)+1
}
