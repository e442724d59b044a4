package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"wordmask/internal/fileutil"
)

const fileLockRetryDelay = 25 * time.Millisecond

// File is a KV stored as one JSON object on disk. A sibling ".lock" file
// serializes access between wordmask processes.
type File struct {
	path string
	lock *flock.Flock
}

// OpenFile returns a file-backed store. The file itself is created on the
// first write.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("file store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &File{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

// Path returns the JSON file location.
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	if err := f.acquire(ctx, false); err != nil {
		return "", false, err
	}
	defer f.release()

	entries, err := f.read()
	if err != nil {
		return "", false, err
	}
	value, ok := entries[key]
	return value, ok, nil
}

func (f *File) Set(ctx context.Context, key, value string) error {
	return f.update(ctx, func(entries map[string]string) bool {
		if current, ok := entries[key]; ok && current == value {
			return false
		}
		entries[key] = value
		return true
	})
}

func (f *File) Delete(ctx context.Context, keys ...string) error {
	return f.update(ctx, func(entries map[string]string) bool {
		changed := false
		for _, key := range keys {
			if _, ok := entries[key]; ok {
				delete(entries, key)
				changed = true
			}
		}
		return changed
	})
}

func (f *File) Close() error {
	return f.lock.Close()
}

func (f *File) update(ctx context.Context, mutate func(map[string]string) bool) error {
	if err := f.acquire(ctx, true); err != nil {
		return err
	}
	defer f.release()

	entries, err := f.read()
	if err != nil {
		return err
	}
	if !mutate(entries) {
		return nil
	}
	return f.write(entries)
}

func (f *File) acquire(ctx context.Context, exclusive bool) error {
	var (
		ok  bool
		err error
	)
	if exclusive {
		ok, err = f.lock.TryLockContext(ctx, fileLockRetryDelay)
	} else {
		ok, err = f.lock.TryRLockContext(ctx, fileLockRetryDelay)
	}
	if err != nil {
		return fmt.Errorf("lock %s: %w", f.lock.Path(), err)
	}
	if !ok {
		return fmt.Errorf("lock %s: not acquired", f.lock.Path())
	}
	return nil
}

func (f *File) release() {
	_ = f.lock.Unlock()
}

func (f *File) read() (map[string]string, error) {
	data, err := fileutil.ReadFileIfExists(f.path)
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}
	entries := make(map[string]string)
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	return entries, nil
}

func (f *File) write(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store file: %w", err)
	}
	if err := fileutil.WriteFileAtomic(f.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
