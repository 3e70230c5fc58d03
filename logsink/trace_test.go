package logsink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitQualifiedName(t *testing.T) {
	cases := []struct {
		sig   string
		class string
		fn    string
	}{
		{"Widget::Resize", "Widget", "Resize"},
		{"void Widget::Resize(int, int)", "Widget", "Resize"},
		{"std::string Foo::Bar(int)", "Foo", "Bar"},
		{"int main(int, char**)", "", "main"},
		{"main", "", "main"},
		{"unsigned int Parser::Tokenize(const std::string&)", "Parser", "Tokenize"},
		{"Namespace::Class::Method(void)", "Class", "Method"},
		// Signatures without the expected delimiters fall back to the
		// whole string as the name.
		{"(", "", "("},
		{"weird::", "", "weird::"},
		{"", "", ""},
	}
	for _, tc := range cases {
		class, fn := splitQualifiedName(tc.sig)
		assert.Equal(t, tc.class, class, "class of %q", tc.sig)
		assert.Equal(t, tc.fn, fn, "function of %q", tc.sig)
	}
}

// End-to-end: trace output is gated on the filter set; adding the type
// name enables the call site.
func TestTraceFilterGating(t *testing.T) {
	sink := &memorySink{min: DebugLevel}
	lg := New()
	lg.AddSink(sink)

	lg.LogTracef("Widget::Resize", "now %dx%d\n", 800, 600)
	if len(sink.messages) != 0 {
		t.Fatalf("trace with empty filter set should emit nothing, got: %q", sink.messages)
	}

	lg.AddTraceFilter("Widget")
	lg.LogTracef("Widget::Resize", "now %dx%d\n", 800, 600)

	if len(sink.messages) != 1 {
		t.Fatalf("expected one trace message, got %d", len(sink.messages))
	}
	if got := sink.messages[0]; !strings.Contains(got, "[Widget::Resize]") {
		t.Fatalf("trace output should carry the bracketed name, got: %q", got)
	}
	if got := sink.messages[0]; !strings.Contains(got, "now 800x600") {
		t.Fatalf("trace output should carry the formatted message, got: %q", got)
	}
}

func TestTraceFilterMatchesBareFunction(t *testing.T) {
	sink := &memorySink{min: DebugLevel}
	lg := New()
	lg.AddSink(sink)
	lg.AddTraceFilter("Resize")

	lg.LogTracef("Widget::Resize", "hit\n")
	if len(sink.messages) != 1 {
		t.Fatalf("filter on the bare function name should match, got %d messages", len(sink.messages))
	}
}

func TestTraceWildcard(t *testing.T) {
	sink := &memorySink{min: DebugLevel}
	lg := New()
	lg.AddSink(sink)

	// An empty filter argument resets the set to the wildcard.
	lg.AddTraceFilter("Widget")
	lg.AddTraceFilter("")

	lg.LogTracef("Other::Thing", "hit\n")
	if len(sink.messages) != 1 {
		t.Fatalf("wildcard filter should match everything, got %d messages", len(sink.messages))
	}
}

func TestTraceBailsOutWithoutDebugSink(t *testing.T) {
	sink := &memorySink{min: NoticeLevel}
	lg := New()
	lg.AddSink(sink)
	lg.AddTraceFilter(TraceAll)

	lg.LogTracef("Widget::Resize", "never formatted\n")
	if len(sink.messages) != 0 {
		t.Fatalf("trace should bail with no DEBUG-capable sink, got: %q", sink.messages)
	}
}

func TestTracefUsesRuntimeCaller(t *testing.T) {
	sink := &memorySink{min: DebugLevel}
	lg := New()
	lg.AddSink(sink)
	lg.AddTraceFilter("TestTracefUsesRuntimeCaller")

	lg.Tracef("from the test body\n")

	if len(sink.messages) != 1 {
		t.Fatalf("expected one trace message, got %d", len(sink.messages))
	}
	if got := sink.messages[0]; !strings.Contains(got, "[TestTracefUsesRuntimeCaller]") {
		t.Fatalf("trace should name the calling function, got: %q", got)
	}
}

func TestCallerQualifiedName(t *testing.T) {
	name := callerQualifiedName(1)
	assert.Equal(t, "TestCallerQualifiedName", name)
}

type tracerWidget struct{ lg *Logger }

func (w *tracerWidget) Resize() {
	w.lg.Tracef("resized\n")
}

func TestTracefMethodReceiverBecomesClass(t *testing.T) {
	sink := &memorySink{min: DebugLevel}
	lg := New()
	lg.AddSink(sink)
	lg.AddTraceFilter("tracerWidget")

	w := &tracerWidget{lg: lg}
	w.Resize()

	if len(sink.messages) != 1 {
		t.Fatalf("expected one trace message, got %d", len(sink.messages))
	}
	if got := sink.messages[0]; !strings.Contains(got, "[tracerWidget::Resize]") {
		t.Fatalf("trace should carry Type::Method, got: %q", got)
	}
}
