package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/epilist-cli/epilist/auth"
	"github.com/epilist-cli/epilist/color"
	"github.com/epilist-cli/epilist/icon"
	"github.com/epilist-cli/epilist/key"
	"github.com/epilist-cli/epilist/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd, authDeleteCmd, authStatusCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the API bearer token",
	Long: fmt.Sprintf(`Store the bearer token sent to the API in the system keyring.
The token is only sent when %s is enabled.`, style.Fg(color.Purple)(key.APIUseToken)),
}

var authSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store the API token",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		if len(args) == 1 {
			token = args[0]
		} else {
			handleErr(survey.AskOne(&survey.Password{Message: "API token:"}, &token, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetToken(token))
		cmd.Printf("%s token stored\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Remove the stored API token",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		cmd.Printf("%s token deleted\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a token is stored",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := auth.Token()
		switch {
		case errors.Is(err, auth.ErrNoToken):
			cmd.Println(style.Fg(color.Yellow)("no token stored"))
		case err != nil:
			handleErr(err)
		default:
			cmd.Println(style.Fg(color.Green)("token stored"))
		}
	},
}
