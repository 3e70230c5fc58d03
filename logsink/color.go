package logsink

import "strings"

// ANSI escape sequences used by the colorizing console sink.
const (
	ansiRed    = "\033[31;1m"
	ansiYellow = "\033[33;1m"
	ansiReset  = "\033[0m"
)

// Keywords highlighted when immediately followed by a colon.
var (
	redKeywords    = []string{"INTERNAL ERROR", "ERROR", "Error", "error"}
	yellowKeywords = []string{"WARNING", "Warning", "warning"}
)

// colorizeLine highlights recognized severity keywords in a single wrapped
// line. When "<keyword>:" is found, the text from the start of the line
// through the colon is bracketed with the color escape and a reset. Only
// the first occurrence of each search string is acted on; a line with no
// recognized keyword is returned unchanged.
func colorizeLine(line string) string {
	for _, kw := range redKeywords {
		line = paintThrough(line, kw+":", ansiRed)
	}
	for _, kw := range yellowKeywords {
		line = paintThrough(line, kw+":", ansiYellow)
	}
	return line
}

// paintThrough wraps everything from the start of line through the end of
// the first occurrence of search in the given color. Not found means no
// change.
func paintThrough(line, search, color string) string {
	pos := strings.Index(line, search)
	if pos < 0 {
		return line
	}
	end := pos + len(search)
	return color + line[:end] + ansiReset + line[end:]
}
