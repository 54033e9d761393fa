package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

const (
	BackendBolt   = "bolt"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	StoragePath  string `yaml:"StoragePath"`
	CatalogFile  string `yaml:"CatalogFile"`
	Backend      string `yaml:"Backend"`
	LogFile      string `yaml:"LogFile"`
	DefaultLevel int    `yaml:"DefaultLevel"`
	DefaultCount int    `yaml:"DefaultCount"`
	ShakeMillis  int    `yaml:"ShakeMillis"`
}

var (
	DefaultConfig     Config
	DefaultConfigDir  string
	DefaultConfigPath string
	DefaultStorageDir string
)

func init() {
	var err error
	DefaultConfigPath, err = xdg.ConfigFile("medtyping/medtyping.yaml")
	if err != nil {
		log.Fatal(err)
	}
	DefaultConfigDir = path.Dir(DefaultConfigPath)
	DefaultStorageDir = path.Join(xdg.DataHome, "medtyping")
	DefaultConfig = Config{
		StoragePath:  DefaultStorageDir,
		Backend:      BackendBolt,
		LogFile:      path.Join(xdg.StateHome, "medtyping", "medtyping.log"),
		DefaultCount: 10,
		ShakeMillis:  200,
	}
}

// DbFile is where the checkmark backend keeps its data.
func (c Config) DbFile() string {
	switch c.Backend {
	case BackendFile:
		return path.Join(c.StoragePath, "checked.json")
	case BackendSQLite:
		return path.Join(c.StoragePath, "medtyping.sqlite")
	}
	return path.Join(c.StoragePath, "medtyping.db")
}

// ImportedCatalog is where `import` writes a converted catalog.
func (c Config) ImportedCatalog() string {
	return path.Join(c.StoragePath, "catalog.yaml")
}

type initConfigErr struct {
	s string
}

func (e *initConfigErr) Error() string {
	return e.s
}

func newInitConfigErr(err error) error {
	return &initConfigErr{
		s: fmt.Sprintf("Init config error: %s", err.Error()),
	}
}

func createDefaultFile(fs afero.Fs) error {
	err := fs.MkdirAll(DefaultConfigDir, 0755)
	if err != nil {
		return err
	}

	exist, err := afero.Exists(fs, DefaultConfigPath)
	if err != nil {
		return err
	}

	if !exist {
		handle, err := fs.Create(DefaultConfigPath)
		if err != nil {
			return err
		}
		defer handle.Close()
		err = yaml.NewEncoder(handle).Encode(&DefaultConfig)
		if err != nil {
			return err
		}
	}
	return nil
}

// InitConfig reads the config file, the default one when configPathOption
// is empty, and applies MEDTYPING_* environment overrides.
func InitConfig(fs afero.Fs, configPathOption string) (Config, error) {
	config := DefaultConfig
	var configfile string

	if configPathOption == "" {
		err := createDefaultFile(fs)
		if err != nil {
			return config, newInitConfigErr(err)
		}
		configfile = DefaultConfigPath
	} else {
		exist, err := afero.Exists(fs, configPathOption)
		if err != nil {
			return config, newInitConfigErr(err)
		}
		if !exist {
			return config, &initConfigErr{
				s: fmt.Sprintf("Init config error: %s not exist", configPathOption),
			}
		}
		configfile = configPathOption
	}

	handle, err := fs.Open(configfile)
	if err != nil {
		return config, newInitConfigErr(err)
	}
	defer handle.Close()
	err = yaml.NewDecoder(handle).Decode(&config)
	if err != nil {
		return config, newInitConfigErr(err)
	}

	config, err = applyEnv(config)
	if err != nil {
		return config, newInitConfigErr(err)
	}
	return config, validate(config)
}

// LoadDotEnv reads .env style files into the environment. Missing files are
// not an error, and variables already set are left alone.
func LoadDotEnv(fs afero.Fs, files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		exist, err := afero.Exists(fs, f)
		if err != nil {
			return err
		}
		if !exist {
			continue
		}
		err = loadDotEnvFile(fs, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
	}
	return nil
}

func loadDotEnvFile(fs afero.Fs, file string) error {
	handle, err := fs.Open(file)
	if err != nil {
		return err
	}
	defer handle.Close()
	env, err := godotenv.Parse(handle)
	if err != nil {
		return err
	}
	for k, v := range env {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		err = os.Setenv(k, v)
		if err != nil {
			return err
		}
	}
	return nil
}

func applyEnv(config Config) (Config, error) {
	config.StoragePath = GetStringOption(os.Getenv("MEDTYPING_STORAGE"), config.StoragePath)
	config.CatalogFile = GetStringOption(os.Getenv("MEDTYPING_CATALOG"), config.CatalogFile)
	config.Backend = GetStringOption(os.Getenv("MEDTYPING_BACKEND"), config.Backend)
	config.LogFile = GetStringOption(os.Getenv("MEDTYPING_LOG"), config.LogFile)
	var err error
	config.DefaultCount, err = intEnv("MEDTYPING_COUNT", config.DefaultCount)
	if err != nil {
		return config, err
	}
	config.DefaultLevel, err = intEnv("MEDTYPING_LEVEL", config.DefaultLevel)
	return config, err
}

func intEnv(key string, value int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return value, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return value, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func validate(config Config) error {
	switch config.Backend {
	case BackendBolt, BackendFile, BackendSQLite:
	default:
		return &initConfigErr{s: fmt.Sprintf("Init config error: unknown backend '%s'", config.Backend)}
	}
	if config.DefaultCount < 0 || config.DefaultLevel < 0 {
		return &initConfigErr{s: "Init config error: DefaultCount and DefaultLevel must not be negative"}
	}
	return nil
}

// GetStringOption prefers a non-empty option over the configured value.
func GetStringOption(option, value string) string {
	if option != "" {
		return option
	}
	return value
}
