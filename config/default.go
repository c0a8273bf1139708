package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/epilist-cli/epilist/color"
	"github.com/epilist-cli/epilist/constant"
	"github.com/epilist-cli/epilist/key"
	"github.com/epilist-cli/epilist/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a registered setting: its key, default value and a human description.
type Field struct {
	Key         string
	Value       any
	Description string
}

var fields = []Field{
	{key.APIURL, constant.DefaultEpisodesURL, "Episode listing endpoint.\nPages are requested with the \"page\" query parameter"},
	{key.APITimeout, 60, "HTTP timeout in seconds for API requests"},
	{key.APIUseToken, false, "Send the bearer token stored with \"epilist auth set\""},

	{key.CachePages, false, "Cache raw page responses on disk"},
	{key.CacheLifetime, 60, "Minutes a cached page stays valid"},

	{key.SearchShowQuerySuggestions, true, "Suggest previously submitted queries while searching"},
	{key.SearchDebounceMs, 250, "Milliseconds to wait after the last keystroke before searching"},

	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)"},

	{key.LogsWrite, false, "Write logs"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},

	{key.TUIItemSpacing, 1, "Blank lines between list items"},
	{key.TUISearchPromptString, "> ", "Prompt shown in front of the search input"},
	{key.TUIShowURLs, true, "Show episode URLs under list items"},

	{key.CliColored, true, "Enable colored CLI output"},
	{key.CliVersionCheck, true, "Check for a newer release after each command"},
}

// Default maps every key to its field.
var Default = make(map[string]Field, len(fields))

// EnvExposed lists the keys bound to EPILIST_* variables.
var EnvExposed []string

func init() {
	for _, f := range fields {
		if _, ok := Default[f.Key]; ok {
			panic("duplicate config key: " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}

// Sorted returns all fields ordered by key.
func Sorted() []Field {
	sorted := lo.Values(Default)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})
	return sorted
}

// Env returns the environment variable that overrides this field.
func (f Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Type names the Go type of the default value.
func (f Field) Type() string {
	return fmt.Sprintf("%T", f.Value)
}

// Parse converts command line arguments into a value of the field's type.
func (f Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, errors.New("value is required")
	}

	switch f.Value.(type) {
	case string:
		return raw[0], nil
	case []string:
		return raw, nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", f.Key, raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects a boolean, got %q", f.Key, raw[0])
		}
		return b, nil
	}

	return nil, fmt.Errorf("%s has unsupported type %s", f.Key, f.Type())
}

// MarshalJSON reports the current value next to the default.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"key":         f.Key,
		"env":         f.Env(),
		"type":        f.Type(),
		"value":       viper.Get(f.Key),
		"default":     f.Value,
		"description": f.Description,
	})
}

// Pretty renders the field for "epilist config info".
func (f Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)("true")
		}
		return style.Fg(color.Red)("false")
	case string:
		return style.Fg(color.Yellow)(strconv.Quote(value))
	}
	return fmt.Sprint(v)
}

var prettyTemplate = lo.Must(template.New("field").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"purple":  style.Fg(color.Purple),
	"cyan":    style.Fg(color.Cyan),
	"current": func(k string) any { return viper.Get(k) },
	"hl":      highlight,
}).Parse(`{{ purple .Key }} {{ faint .Type }}
{{ faint .Description }}
  {{ cyan "value  " }} {{ hl (current .Key) }}
  {{ cyan "default" }} {{ hl .Value }}
  {{ cyan "env    " }} {{ .Env }}`))
