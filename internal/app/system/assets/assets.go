// internal/app/system/assets/assets.go
//
// Package assets owns the lifecycle of the single image or video object a
// record may point at: checking uploads, writing them under the record
// kind's namespace, swapping them on replace, removing them on clear or
// delete, and turning stored paths into public URLs.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/dalemusser/chamberhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

// Backend is the object store the manager writes to. Any waffle
// storage.Store satisfies it. Delete may report storage.ErrNotFound for a
// missing object; the manager treats that as already deleted.
type Backend interface {
	Put(ctx context.Context, path string, r io.Reader, opts *storage.PutOptions) error
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
}

// Config holds the public URL prefix and the upload ceilings.
type Config struct {
	PublicURL     string // e.g. https://camara.example/storage/
	ImageMaxBytes int64
	VideoMaxBytes int64
}

const (
	DefaultImageMaxBytes int64 = 2 << 20
	DefaultVideoMaxBytes int64 = 100 << 20
)

// Manager applies the asset policy over a Backend.
type Manager struct {
	backend Backend
	prefix  string
	image   rule
	video   rule
	log     *zap.Logger
}

// New builds a Manager. Zero ceilings fall back to 2 MiB / 100 MiB.
func New(backend Backend, cfg Config, logger *zap.Logger) *Manager {
	if cfg.ImageMaxBytes <= 0 {
		cfg.ImageMaxBytes = DefaultImageMaxBytes
	}
	if cfg.VideoMaxBytes <= 0 {
		cfg.VideoMaxBytes = DefaultVideoMaxBytes
	}
	prefix := cfg.PublicURL
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Manager{
		backend: backend,
		prefix:  prefix,
		image:   imageRule(cfg.ImageMaxBytes),
		video:   videoRule(cfg.VideoMaxBytes),
		log:     logger,
	}
}

// ImageMaxBytes is the image upload ceiling.
func (m *Manager) ImageMaxBytes() int64 { return m.image.maxBytes }

// VideoMaxBytes is the video upload ceiling.
func (m *Manager) VideoMaxBytes() int64 { return m.video.maxBytes }

// URL derives the public URL of a stored path. Nil or empty paths yield nil.
func (m *Manager) URL(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	u := m.URLOf(*path)
	return &u
}

// URLOf derives the public URL of a stored path.
func (m *Manager) URLOf(path string) string {
	return m.prefix + strings.TrimPrefix(path, "/")
}

// Upload is a checked file ready to be written.
type Upload struct {
	header      *multipart.FileHeader
	contentType string
}

// ContentType is the sniffed media type.
func (u *Upload) ContentType() string { return u.contentType }

// Store writes the upload under namespace and returns its stored path.
func (m *Manager) Store(ctx context.Context, namespace string, up *Upload) (string, error) {
	f, err := up.header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	path := objectPath(namespace, up.header.Filename, up.contentType)
	if err := m.backend.Put(ctx, path, f, &storage.PutOptions{ContentType: up.contentType}); err != nil {
		return "", fmt.Errorf("store %s: %w", path, err)
	}
	return path, nil
}

// Replace writes the new object, lets persist record its path, and only then
// deletes the previous object. If persist fails the new object is removed
// and the record keeps pointing at the old one.
func (m *Manager) Replace(ctx context.Context, namespace string, up *Upload, old *string, persist func(newPath string) error) (string, error) {
	newPath, err := m.Store(ctx, namespace, up)
	if err != nil {
		return "", err
	}
	if err := persist(newPath); err != nil {
		if derr := m.delete(ctx, newPath); derr != nil {
			m.log.Warn("failed to delete new object after save failure",
				zap.String("path", newPath), zap.Error(derr))
		}
		return "", err
	}
	if old != nil && *old != "" && *old != newPath {
		if err := m.delete(ctx, *old); err != nil {
			m.log.Warn("failed to delete old object during replace",
				zap.String("path", *old), zap.Error(err))
		}
	}
	return newPath, nil
}

// Remove deletes the object at path. Nil or empty paths are a no-op.
func (m *Manager) Remove(ctx context.Context, path *string) error {
	if path == nil || *path == "" {
		return nil
	}
	if err := m.delete(ctx, *path); err != nil {
		return fmt.Errorf("delete %s: %w", *path, err)
	}
	return nil
}

// Discard deletes an object written earlier in a request whose record could
// not be saved. Failures are logged, not returned.
func (m *Manager) Discard(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := m.delete(ctx, path); err != nil {
		m.log.Warn("failed to discard orphaned object", zap.String("path", path), zap.Error(err))
	}
}

// Exists reports whether an object is stored at path.
func (m *Manager) Exists(ctx context.Context, path string) (bool, error) {
	ok, err := m.backend.Exists(ctx, path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return ok, nil
}

func (m *Manager) delete(ctx context.Context, path string) error {
	if err := m.backend.Delete(ctx, path); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return nil
}

// InNamespace reports whether p is a clean relative path under namespace.
func InNamespace(p, namespace string) bool {
	return models.InNamespace(p, namespace)
}
