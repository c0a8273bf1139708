// Package cmd wires the epilist command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/epilist-cli/epilist/api"
	"github.com/epilist-cli/epilist/color"
	"github.com/epilist-cli/epilist/constant"
	"github.com/epilist-cli/epilist/icon"
	"github.com/epilist-cli/epilist/key"
	"github.com/epilist-cli/epilist/log"
	"github.com/epilist-cli/epilist/query"
	"github.com/epilist-cli/epilist/store"
	"github.com/epilist-cli/epilist/style"
	"github.com/epilist-cli/epilist/tui"
	"github.com/epilist-cli/epilist/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant (emoji, nerd, plain, kaomoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("api", "", "Episode listing endpoint")
	lo.Must0(viper.BindPFlag(key.APIURL, rootCmd.PersistentFlags().Lookup("api")))

	rootCmd.Flags().IntP("page", "p", 1, "Page to open with")
	rootCmd.Flags().StringP("search", "s", "", "Start with this search")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("search", completionQueries))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(os.Stdout)
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Browse, search and favorite episodes from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse, search and favorite episodes from the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Page:   lo.Must(cmd.Flags().GetInt("page")),
			Query:  lo.Must(cmd.Flags().GetString("search")),
			Source: newSource(),
			Store:  store.New(),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute runs the command named by os.Args.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newSource() *api.Client {
	client, err := api.FromConfig()
	handleErr(err)
	return client
}

func completionQueries(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
