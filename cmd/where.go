package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/epilist-cli/epilist/color"
	"github.com/epilist-cli/epilist/style"
	"github.com/epilist-cli/epilist/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// location is a directory or file epilist owns, selectable with --<flag>.
type location struct {
	flag    string
	short   string
	resolve func() string
}

var locations = []location{
	{"config", "c", where.Config},
	{"logs", "l", where.Logs},
	{"cache", "", where.Cache},
	{"pages", "", where.Pages},
	{"queries", "", where.Queries},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short, false, fmt.Sprintf("Print only the %s path", l.flag))
	}
	whereCmd.Flags().BoolP("json", "j", false, "Write every path as a JSON object")

	whereCmd.MarkFlagsMutuallyExclusive(append(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	}), "json")...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where epilist keeps its files",
	Run: func(cmd *cobra.Command, args []string) {
		selected, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		})
		if ok {
			cmd.Println(selected.resolve())
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			paths := lo.SliceToMap(locations, func(l location) (string, string) {
				return l.flag, l.resolve()
			})
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(paths))
			return
		}

		name := style.New().Bold(true).Foreground(color.HiPurple).Width(8).Render
		for _, l := range locations {
			cmd.Printf("%s %s\n", name(l.flag), l.resolve())
		}
	},
}
