package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/yusan117/medtyping/checkmark"
	"github.com/yusan117/medtyping/db"
)

var (
	cleanChecked bool
	checkedCmd   = &cobra.Command{
		Use:   "checked",
		Short: "show checked words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := db.Open(config)
			if err != nil {
				return err
			}
			defer store.Close()
			registry := checkmark.Open(store)
			if cleanChecked {
				return registry.Clear()
			}
			return db.CheckedList(os.Stdout, registry.Checked())
		},
	}
)

func init() {
	checkedCmd.Flags().BoolVar(&cleanChecked, "clean", false, "uncheck every word")
	rootCmd.AddCommand(checkedCmd)
}
