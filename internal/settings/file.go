package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileStore keeps the whole mapping as a single JSON document on disk, the
// moral equivalent of one local-storage key on the client side.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) Load(_ context.Context) Settings {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return Defaults()
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Defaults()
	}
	return Normalize(s)
}

func (f *FileStore) Save(_ context.Context, s Settings) error {
	data, err := json.MarshalIndent(Normalize(s), "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
