package logsink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorizeLine_Error(t *testing.T) {
	got := colorizeLine("ERROR: foo")
	assert.Equal(t, "\033[31;1mERROR:\033[0m foo", got)
}

func TestColorizeLine_Warning(t *testing.T) {
	got := colorizeLine("Warning: disk low")
	assert.Equal(t, "\033[33;1mWarning:\033[0m disk low", got)
}

func TestColorizeLine_InternalError(t *testing.T) {
	got := colorizeLine("INTERNAL ERROR: oops")
	// "INTERNAL ERROR:" matches before the bare "ERROR:" search ever runs,
	// and the bare search then finds its keyword inside the already painted
	// region, so the prefix stays wrapped from the line start.
	assert.Contains(t, got, ansiRed)
	assert.Contains(t, got, "INTERNAL ERROR:")
	assert.Contains(t, got, ansiReset)
}

func TestColorizeLine_PaintsFromLineStart(t *testing.T) {
	// The whole prefix through the colon is bracketed, not just the keyword.
	got := colorizeLine("    ERROR: bar")
	assert.Equal(t, "\033[31;1m    ERROR:\033[0m bar", got)
}

func TestColorizeLine_NoKeywordUnchanged(t *testing.T) {
	lines := []string{
		"nothing to see here",
		"ERROR without colon",
		"warnings were reported", // "warning" not followed by ':'
		"",
	}
	for _, line := range lines {
		assert.Equal(t, line, colorizeLine(line))
	}
}

func TestColorizeLine_LowercaseVariants(t *testing.T) {
	assert.Equal(t, "\033[31;1merror:\033[0m x", colorizeLine("error: x"))
	assert.Equal(t, "\033[31;1mError:\033[0m x", colorizeLine("Error: x"))
	assert.Equal(t, "\033[33;1mwarning:\033[0m x", colorizeLine("warning: x"))
	assert.Equal(t, "\033[33;1mWARNING:\033[0m x", colorizeLine("WARNING: x"))
}

func TestPaintThrough_FirstOccurrenceOnly(t *testing.T) {
	got := paintThrough("a ERROR: b ERROR: c", "ERROR:", ansiRed)
	assert.Equal(t, ansiRed+"a ERROR:"+ansiReset+" b ERROR: c", got)
}
