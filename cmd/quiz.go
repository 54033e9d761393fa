package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yusan117/medtyping/practice"
)

var (
	quizOpt practice.Options
	quizCmd = &cobra.Command{
		Use:   "quiz [category]",
		Short: "start a quiz on one category, or on every word with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE:  practice.Run(&config, &quizOpt),
	}
)

func init() {
	quizCmd.Flags().BoolVarP(&quizOpt.All, "all", "a", false, "random questions from every category")
	quizCmd.Flags().IntVarP(&quizOpt.Level, "level", "l", 0, "only words of this level (default from config, 0 is every level)")
	quizCmd.Flags().IntVarP(&quizOpt.Count, "count", "n", 0, "number of questions (default from config)")
	quizCmd.Flags().BoolVarP(&quizOpt.Checked, "checked", "c", false, "only checked words")
	quizCmd.Flags().Int64Var(&quizOpt.Seed, "seed", 0, "shuffle seed, 0 is random")
	rootCmd.AddCommand(quizCmd)
}
