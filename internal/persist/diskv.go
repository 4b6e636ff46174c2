package persist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvSlot stores each key as one JSON file under a base directory.
type DiskvSlot struct {
	d      *diskv.Diskv
	closed bool
}

// OpenDiskv opens (creating if needed) a diskv-backed slot rooted at
// basePath.
func OpenDiskv(basePath string) (*DiskvSlot, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &DiskvSlot{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (s *DiskvSlot) Load(key string) ([]byte, bool, error) {
	if s.closed {
		return nil, false, ErrClosed
	}
	if !s.d.Has(key) {
		return nil, false, nil
	}
	val, err := s.d.Read(key)
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return val, true, nil
}

func (s *DiskvSlot) Save(key string, value []byte) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *DiskvSlot) Close() error {
	s.closed = true
	return nil
}

// DefaultBasePath returns ~/.teamflow/state, the standard diskv
// location when none is configured.
func DefaultBasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".teamflow", "state"), nil
}
