package logging

import (
	"os"
	"strings"
)

// Sink receives the raw text produced by the language's `print` and
// `println` built-ins (internal/builtins). Distinct implementations let
// the CLI write straight to stdout while the HTTP embedding buffers the
// same output for its JSON response's `log` field.
type Sink interface {
	Print(s string)
}

// StdoutSink writes print/println output directly to os.Stdout, used by
// cmd/logoscript's `run` command.
type StdoutSink struct{}

func (StdoutSink) Print(s string) {
	os.Stdout.WriteString(s)
}

// BufferSink accumulates print/println output in memory, used by
// pkg/httpapi so one request's output never interleaves with another's.
type BufferSink struct {
	b strings.Builder
}

// NewBufferSink returns an empty BufferSink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (s *BufferSink) Print(text string) {
	s.b.WriteString(text)
}

// String returns everything written so far.
func (s *BufferSink) String() string {
	return s.b.String()
}
