package version

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/epilist-cli/epilist/color"
	"github.com/epilist-cli/epilist/constant"
	"github.com/epilist-cli/epilist/key"
	"github.com/epilist-cli/epilist/log"
	"github.com/epilist-cli/epilist/style"
	"github.com/spf13/viper"
)

// Notify writes a notice to out when a newer release than constant.Version exists.
func Notify(out io.Writer) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	latest, err := Latest(ctx)
	if err != nil {
		log.Warnf("version check: %v", err)
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	_, _ = fmt.Fprintf(out, `
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(fmt.Sprintf("https://github.com/%s/releases/tag/v%s", constant.Repository, latest)),
	)
}
