// Package inline is the non-interactive mode: it writes one page or one search result and exits.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/epilist-cli/epilist/episode"
	"github.com/epilist-cli/epilist/log"
	"github.com/epilist-cli/epilist/search"
)

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	var (
		episodes []*episode.Episode
		info     *episode.Info
		page     int
	)

	if search.Compile(options.Query).Empty() {
		page = max(options.Page, 1)
		p, err := options.Source.FetchPage(ctx, page)
		if err != nil {
			return err
		}
		episodes, info = p.Results, &p.Info
	} else {
		found, err := search.Searcher{Source: options.Source}.Search(ctx, options.Query)
		if err != nil {
			return err
		}
		episodes = found
	}

	if pick, ok := options.Pick.Get(); ok {
		episodes = pick(episodes)
	}

	log.Infof("inline: writing %d episodes", len(episodes))

	if options.Json {
		return writeJson(options.Out, newOutput(page, options.Query, info, episodes))
	}

	return writeText(options.Out, episodes)
}

func writeText(out io.Writer, episodes []*episode.Episode) error {
	for _, e := range episodes {
		if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", e.Code, e.Name, e.URL); err != nil {
			return err
		}
	}
	return nil
}

func writeJson(out io.Writer, output *Output) error {
	data, err := asJson(output)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
