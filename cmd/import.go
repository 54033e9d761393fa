package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/yusan117/medtyping/catalog"
	"github.com/yusan117/medtyping/utils"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "import a .yaml, .xlsx or .html word list as the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := afero.NewOsFs()
		c, err := catalog.Load(fs, args[0])
		if err != nil {
			return err
		}
		return importCatalog(fs, config.StoragePath, config.ImportedCatalog(), c)
	},
}

func importCatalog(fs afero.Fs, dir, dest string, c catalog.Catalog) error {
	err := fs.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}
	handle, err := fs.Create(dest)
	if err != nil {
		return utils.FmtErrorf("import", err)
	}
	defer handle.Close()
	err = catalog.WriteYAML(handle, c)
	if err != nil {
		return utils.FmtErrorf("import", err)
	}
	fmt.Printf("imported %d words in %d categories to %s\n", c.Len(), len(c.Categories), dest)
	return nil
}

func init() {
	rootCmd.AddCommand(importCmd)
}
