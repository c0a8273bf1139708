package inline

import (
	"encoding/json"
	"reflect"

	"github.com/epilist-cli/epilist/episode"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

// Entry is an episode as written by the json output.
type Entry struct {
	*episode.Episode
	// Formatted is the human-readable code, e.g. "1 Episode 2".
	Formatted string `json:"formatted"`
	Route     string `json:"route"`
}

type Output struct {
	Page   int           `json:"page,omitempty"`
	Query  string        `json:"query,omitempty"`
	Info   *episode.Info `json:"info,omitempty"`
	Result []*Entry      `json:"result"`
}

func newOutput(page int, query string, info *episode.Info, episodes []*episode.Episode) *Output {
	return &Output{
		Page:  page,
		Query: query,
		Info:  info,
		Result: lo.Map(episodes, func(e *episode.Episode, _ int) *Entry {
			return &Entry{
				Episode:   e,
				Formatted: episode.FormatCode(e.Code),
				Route:     e.DetailRoute(),
			}
		}),
	}
}

func asJson(output *Output) ([]byte, error) {
	return json.Marshal(output)
}

// Schema describes Output as a JSON schema.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		switch name := t.Name(); name {
		case "Episode", "Info", "Output", "Entry":
			return "inline." + name
		default:
			return name
		}
	}

	return reflector.Reflect(&Output{})
}
