package episode

import (
	"fmt"
	"regexp"
	"strconv"
)

var codePattern = regexp.MustCompile(`^[Ss](\d+)[Ee](\d+)$`)

func parseCode(code string) (season, number int, ok bool) {
	match := codePattern.FindStringSubmatch(code)
	if match == nil {
		return 0, 0, false
	}

	season, _ = strconv.Atoi(match[1])
	number, _ = strconv.Atoi(match[2])
	return season, number, true
}

// FormatCode turns "S01E02" into "1 Episode 2", so it reads naturally after "Season ".
// Codes that do not look like S<n>E<n> are returned unchanged.
func FormatCode(code string) string {
	season, number, ok := parseCode(code)
	if !ok {
		return code
	}
	return fmt.Sprintf("%d Episode %d", season, number)
}
