package db

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/afero"
	"github.com/yusan117/medtyping/config"
)

// CheckStore is a durable home for the checkmark set.
type CheckStore interface {
	Load() (map[string]bool, error)
	Save(map[string]bool) error
	Close() error
}

// Open returns the checkmark store selected by cfg.Backend.
func Open(cfg config.Config) (CheckStore, error) {
	err := os.MkdirAll(cfg.StoragePath, 0755)
	if err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	switch cfg.Backend {
	case config.BackendFile:
		return NewFileStore(afero.NewOsFs(), cfg.DbFile()), nil
	case config.BackendSQLite:
		return NewSQLStore(cfg.DbFile())
	case config.BackendBolt, "":
		return NewBoltStore(cfg.DbFile())
	}
	return nil, fmt.Errorf("unknown backend '%s'", cfg.Backend)
}

func CheckedList(w io.Writer, checked []string) error {
	sort.Strings(checked)
	for _, id := range checked {
		_, err := fmt.Fprintln(w, id)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d checked\n", len(checked))
	return err
}
