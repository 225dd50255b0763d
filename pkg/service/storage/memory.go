package storage

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
)

type object struct {
	data        []byte
	contentType string
}

// Memory implements interfaces.Storage in process memory, for development
// and tests
type Memory struct {
	mu      sync.RWMutex
	objects map[string]object
}

var _ interfaces.Storage = &Memory{}

// NewMemory creates an empty in-memory storage
func NewMemory() *Memory {
	return &Memory{objects: make(map[string]object)}
}

func (s *Memory) Put(ctx context.Context, ref string, r io.Reader, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return goerr.Wrap(err, "failed to read object payload", goerr.V("ref", ref))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[ref] = object{data: data, contentType: contentType}
	return nil
}

func (s *Memory) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	s.mu.RLock()
	obj, ok := s.objects[ref]
	s.mu.RUnlock()

	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "object not found", goerr.V("ref", ref))
	}
	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (s *Memory) Delete(ctx context.Context, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, ref)
	return nil
}

func (s *Memory) URL(ctx context.Context, ref string) (string, error) {
	s.mu.RLock()
	_, ok := s.objects[ref]
	s.mu.RUnlock()

	if !ok {
		return "", goerr.Wrap(interfaces.ErrNotFound, "object not found", goerr.V("ref", ref))
	}
	return "memory://" + ref, nil
}

// ContentType returns the stored content type, for tests
func (s *Memory) ContentType(ref string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.objects[ref].contentType
}

func (s *Memory) Close() error {
	return nil
}
