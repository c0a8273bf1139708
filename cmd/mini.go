package cmd

import (
	"errors"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/epilist-cli/epilist/mini"
	"github.com/epilist-cli/epilist/store"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().IntP("page", "p", 1, "Page to open with")
}

var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Browse episodes with simple prompts",
	Long:  `Browse, search and favorite episodes through a sequence of prompts instead of the full screen view.`,
	Run: func(cmd *cobra.Command, args []string) {
		options := mini.Options{
			Source: newSource(),
			Store:  store.New(),
			Page:   lo.Must(cmd.Flags().GetInt("page")),
			Out:    cmd.OutOrStdout(),
		}

		err := mini.Run(cmd.Context(), &options)
		if !errors.Is(err, terminal.InterruptErr) {
			handleErr(err)
		}
	},
}
