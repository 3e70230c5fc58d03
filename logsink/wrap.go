package logsink

import "strings"

// indentString returns the prefix for one wrapped line at the given depth.
func (b *baseSink) indentString(depth int) string {
	if depth <= 0 || b.indentSize == 0 {
		return ""
	}
	return strings.Repeat(" ", b.indentSize*depth)
}

// wrap breaks msg into width-bounded, indentation-prefixed lines.
//
// Every produced line starts with the indent string, except the first when
// the previous emit did not end in a newline (that message is still being
// continued, so indenting again would double up). A line closes when its
// accumulated length reaches the sink's line width, in which case a newline
// is inserted to force the break, or when an embedded newline arrives. The
// preprocess hook runs on each closed line. A trailing partial line is
// appended as-is, with no hook and no forced newline, so the caller can
// keep appending to it on the next emit.
func (b *baseSink) wrap(msg string, depth int) string {
	indent := b.indentString(depth)

	var out strings.Builder
	cur := ""
	if b.lastNewline {
		cur = indent
	}

	for i := 0; i < len(msg); i++ {
		ch := msg[i]
		cur += string(ch)

		if len(cur) == b.lineWidth {
			out.WriteString(b.preprocessLine(cur))
			out.WriteByte('\n')
			cur = indent
		}

		if ch == '\n' {
			out.WriteString(b.preprocessLine(cur))
			cur = indent
		}
	}

	// Anything left over is an unterminated partial line.
	if cur != indent && cur != "" {
		out.WriteString(cur)
	}

	return out.String()
}

func (b *baseSink) preprocessLine(line string) string {
	if b.preprocess == nil {
		return line
	}
	return b.preprocess(line)
}
