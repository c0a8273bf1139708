package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/epilist-cli/epilist/filesystem"
	"github.com/epilist-cli/epilist/inline"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().IntP("page", "p", 1, "Page to list when no query is given")
	inlineCmd.Flags().StringP("query", "q", "", "Search the first pages for episodes whose name matches")
	inlineCmd.Flags().StringP("episodes", "e", "", "Select a subset of the listed episodes")
	inlineCmd.Flags().BoolP("json", "j", false, "Write JSON instead of tab-separated lines")
	inlineCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	inlineCmd.MarkFlagsMutuallyExclusive("page", "query")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", completionQueries))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Print a page or a search result without the interactive view",
	Long: `Print one page of episodes or the result of a search and exit.

Text output has one episode per line: code, name and url separated by tabs.

Episode selectors:
  first - first episode
  last - last episode
  all - every episode
  [number] - episode by index (starting from 0)
  [from]-[to] - episodes by index range
  S[number] - every episode of a season
  @[pattern]@ - episodes whose name matches the pattern`,
	Example: `  epilist inline --page 2
  epilist inline --query rick --json
  epilist inline --episodes S2`,
	Run: func(cmd *cobra.Command, args []string) {
		pick := mo.None[inline.Picker]()
		if selector := lo.Must(cmd.Flags().GetString("episodes")); selector != "" {
			fn, err := inline.ParsePicker(selector)
			handleErr(err)
			pick = mo.Some(fn)
		}

		options := &inline.Options{
			Source: newSource(),
			Page:   lo.Must(cmd.Flags().GetInt("page")),
			Query:  lo.Must(cmd.Flags().GetString("query")),
			Json:   lo.Must(cmd.Flags().GetBool("json")),
			Pick:   pick,
		}

		handleErr(withOutput(lo.Must(cmd.Flags().GetString("output")), func(out io.Writer) error {
			options.Out = out
			return inline.Run(cmd.Context(), options)
		}))
	},
}

// withOutput calls write with stdout, or with the file at path when path is set.
// The file is closed before returning and a close failure is reported.
func withOutput(path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(os.Stdout)
	}

	file, err := filesystem.API().Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	return write(file)
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline json output",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(inline.Schema()))
	},
}
