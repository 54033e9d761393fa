package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	mtconfig "github.com/yusan117/medtyping/config"
	"github.com/yusan117/medtyping/db"
	"github.com/yusan117/medtyping/practice"
)

var (
	configPath  string
	storagePath string
	catalogFile string
	backend     string
	UnlockDb    bool
	menuOpt     practice.Options

	config  mtconfig.Config
	rootCmd = &cobra.Command{
		Use:   "medtyping",
		Short: "medical vocabulary typing quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if UnlockDb {
				return unlockdb()
			}
			return practice.Run(&config, &menuOpt)(cmd, args)
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", fmt.Sprintf("config file (default is %s)", mtconfig.DefaultConfigPath))
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", fmt.Sprintf("storage dir (default is %s)", mtconfig.DefaultStorageDir))
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "catalog file, .yaml .xlsx or .html (default is the built-in vocabulary)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "checkmark store: bolt, file or sqlite")
	rootCmd.PersistentFlags().BoolVar(&UnlockDb, "unlockdb", false, "unlock db")
}

func initConfig() {
	err := mtconfig.LoadDotEnv(afero.NewOsFs())
	if err != nil {
		log.Fatal(err)
	}
	config, err = mtconfig.InitConfig(afero.NewOsFs(), configPath)
	if err != nil {
		log.Fatal(err)
	}
	config.StoragePath = mtconfig.GetStringOption(storagePath, config.StoragePath)
	config.CatalogFile = mtconfig.GetStringOption(catalogFile, config.CatalogFile)
	config.Backend = mtconfig.GetStringOption(backend, config.Backend)
}

func unlockdb() error {
	if config.Backend != mtconfig.BackendBolt {
		return fmt.Errorf("backend %s has no lock to release", config.Backend)
	}
	err := db.Unlock(config.DbFile())
	if err != nil {
		return err
	}
	fmt.Printf("unlock %s\n", config.DbFile())
	return nil
}
