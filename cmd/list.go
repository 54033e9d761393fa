package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/yusan117/medtyping/catalog"
	"github.com/yusan117/medtyping/practice"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list categories with word counts and levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := practice.LoadCatalog(afero.NewOsFs(), config)
		if err != nil {
			return err
		}
		return catalog.List(os.Stdout, c)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
