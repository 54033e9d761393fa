package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	mtconfig "github.com/yusan117/medtyping/config"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "show where config, data and logs are kept",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printPaths(os.Stdout, config)
	},
}

func printPaths(w io.Writer, cfg mtconfig.Config) {
	cfgfile := mtconfig.GetStringOption(configPath, mtconfig.DefaultConfigPath)
	catalogfile := mtconfig.GetStringOption(cfg.CatalogFile, "(built-in)")
	fmt.Fprintf(w, "%-18s%s\n", "config", cfgfile)
	fmt.Fprintf(w, "%-18s%s\n", "storage", cfg.StoragePath)
	fmt.Fprintf(w, "%-18s%s\n", "checkmarks", cfg.DbFile())
	fmt.Fprintf(w, "%-18s%s\n", "catalog", catalogfile)
	fmt.Fprintf(w, "%-18s%s\n", "imported catalog", cfg.ImportedCatalog())
	fmt.Fprintf(w, "%-18s%s\n", "log", cfg.LogFile)
	fmt.Fprintf(w, "%-18s%s\n", "config home", xdg.ConfigHome)
	fmt.Fprintf(w, "%-18s%s\n", "data home", xdg.DataHome)
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
