package mini

import (
	"fmt"
	"io"
	"strings"

	"github.com/epilist-cli/epilist/color"
	"github.com/epilist-cli/epilist/icon"
	"github.com/epilist-cli/epilist/style"
)

func title(out io.Writer, text string) {
	_, _ = fmt.Fprintln(out, style.Fg(color.Purple)(style.Bold(text)))
}

func fail(out io.Writer, text string) {
	_, _ = fmt.Fprintln(out, style.Fg(color.Red)(icon.Get(icon.Fail)+" "+text))
}

func success(out io.Writer, text string) {
	_, _ = fmt.Fprintln(out, style.Fg(color.Green)(icon.Get(icon.Success)+" "+text))
}

func field(out io.Writer, name, value string) {
	_, _ = fmt.Fprintf(out, "%s %s\n", style.Faint(fmt.Sprintf("%-11s", name)), value)
}

// progress prints msg on the current line and returns a function that erases it.
func progress(out io.Writer, msg string) (erase func()) {
	msg = icon.Get(icon.Progress) + " " + msg
	_, _ = fmt.Fprintf(out, "\r%s", msg)
	return func() {
		_, _ = fmt.Fprintf(out, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}
