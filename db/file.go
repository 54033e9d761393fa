package db

import (
	"encoding/json"
	"os"

	"github.com/spf13/afero"
)

// FileStore keeps the checkmark set in a json file.
type FileStore struct {
	fs   afero.Fs
	file string
}

func NewFileStore(fs afero.Fs, file string) *FileStore {
	return &FileStore{fs: fs, file: file}
}

func (s *FileStore) Load() (map[string]bool, error) {
	data, err := afero.ReadFile(s.fs, s.file)
	if os.IsNotExist(err) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeSet(data)
}

func (s *FileStore) Save(set map[string]bool) error {
	b, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.file, b, 0644)
}

func (s *FileStore) Close() error {
	return nil
}
