package testutil

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/dalemusser/waffle/pantry/storage"
)

// PNG is the smallest byte sequence media sniffing recognises as image/png.
var PNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00\x90wS\xde")

// MP4 is an ISO base media header recognised as video/mp4.
var MP4 = []byte("\x00\x00\x00\x18ftypisom\x00\x00\x02\x00isomiso2\x00\x00\x00\x08free")

// MemBackend is an in-memory object store for handler tests.
type MemBackend struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string

	// FailPut and FailDelete force errors from the next calls.
	FailPut    error
	FailDelete error
}

func NewMemBackend() *MemBackend {
	return &MemBackend{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *MemBackend) Put(_ context.Context, path string, r io.Reader, opts *storage.PutOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailPut != nil {
		return m.FailPut
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[path] = b
	if opts != nil {
		m.types[path] = opts.ContentType
	}
	return nil
}

func (m *MemBackend) Delete(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailDelete != nil {
		return m.FailDelete
	}
	delete(m.objects, path)
	delete(m.types, path)
	return nil
}

func (m *MemBackend) Exists(_ context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[path]
	return ok, nil
}

// ErrNoObject is returned by Get for missing paths.
var ErrNoObject = errors.New("no such object")

// Get returns the stored bytes.
func (m *MemBackend) Get(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.objects[path]
	if !ok {
		return nil, ErrNoObject
	}
	return b, nil
}

// ContentType returns the type the object was stored with.
func (m *MemBackend) ContentType(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.types[path]
}

// Paths lists stored paths in order.
func (m *MemBackend) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.objects))
	for p := range m.objects {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Seed stores an object directly.
func (m *MemBackend) Seed(path string, b []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[path] = b
}
