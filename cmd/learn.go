package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yusan117/medtyping/learn"
	"github.com/yusan117/medtyping/practice"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "browse every word and check the ones to review",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, registry, closer, err := practice.Session(config)
		if err != nil {
			return err
		}
		defer closer()
		return learn.Start(c, registry)
	},
}

func init() {
	rootCmd.AddCommand(learnCmd)
}
