package practice

import (
	"errors"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/yusan117/medtyping/catalog"
	"github.com/yusan117/medtyping/checkmark"
	"github.com/yusan117/medtyping/config"
	"github.com/yusan117/medtyping/db"
	"github.com/yusan117/medtyping/session"
	"github.com/yusan117/medtyping/utils"
)

type Options struct {
	Category string
	All      bool
	Level    int
	Count    int
	Checked  bool
	Seed     int64
	// Direct skips the menu and starts the selected quiz.
	Direct bool
}

// LoadCatalog picks the configured catalog file, then an imported catalog
// in the storage dir, then the built-in vocabulary.
func LoadCatalog(fs afero.Fs, cfg config.Config) (catalog.Catalog, error) {
	if cfg.CatalogFile != "" {
		return catalog.Load(fs, cfg.CatalogFile)
	}
	exist, err := afero.Exists(fs, cfg.ImportedCatalog())
	if err != nil {
		return catalog.Catalog{}, err
	}
	if exist {
		return catalog.Load(fs, cfg.ImportedCatalog())
	}
	return catalog.Default(), nil
}

// Session opens the log file, the checkmark store and the catalog. The
// returned func closes everything.
func Session(cfg config.Config) (catalog.Catalog, *checkmark.Registry, func(), error) {
	if cfg.StoragePath == "" {
		return catalog.Catalog{}, nil, nil, errors.New("StoragePath empty")
	}
	logf, err := utils.LogFile(cfg.LogFile)
	if err != nil {
		return catalog.Catalog{}, nil, nil, utils.FmtErrorf("open log file", err)
	}
	c, err := LoadCatalog(afero.NewOsFs(), cfg)
	if err != nil {
		logf.Close()
		return c, nil, nil, err
	}
	store, err := db.Open(cfg)
	if err != nil {
		logf.Close()
		return c, nil, nil, utils.FmtErrorf("open checkmark store", err)
	}
	closer := func() {
		if err := store.Close(); err != nil {
			log.Printf("close checkmark store: %s", err)
		}
		logf.Close()
	}
	return c, checkmark.Open(store), closer, nil
}

func Run(cfg *config.Config, options *Options) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return errors.New("Only one category can be practiced")
		}
		flags := cmd.Flags()
		opts := mergeConfig(*cfg, *options, flags.Changed("level"), flags.Changed("count"))
		if len(args) == 1 {
			opts.Category = args[0]
			opts.Direct = true
		}

		c, registry, closer, err := Session(*cfg)
		if err != nil {
			return err
		}
		defer closer()

		m := initialModel(c, registry, session.NewRand(opts.Seed), opts, time.Duration(cfg.ShakeMillis)*time.Millisecond)
		if opts.Direct {
			// a bad selection fails before the ui takes the terminal
			if err := m.start(opts.sessionOptions()); err != nil {
				return err
			}
		}
		return Start(m)
	}
}

func Start(m *PracModel) error {
	return tea.NewProgram(m).Start()
}

// mergeConfig fills the level and count the command line did not set from
// cfg. An explicit 0 still means every level or every word.
func mergeConfig(cfg config.Config, options Options, levelSet, countSet bool) Options {
	if !levelSet {
		options.Level = cfg.DefaultLevel
	}
	if !countSet {
		options.Count = cfg.DefaultCount
	}
	if options.All || options.Category != "" {
		options.Direct = true
	}
	return options
}

func (o Options) sessionOptions() session.Options {
	return session.Options{
		Category:    o.Category,
		All:         o.All,
		Level:       o.Level,
		Count:       o.Count,
		CheckedOnly: o.Checked,
	}
}
