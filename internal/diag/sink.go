package diag

// Sink receives diagnostics as the lexer produces them. Grounded on the
// original implementation's DiagReporter trait (report(Diag)). A Lexer
// buffers diagnostics only inside a transaction or a template body;
// everything else goes straight to the Sink its owner passed in, which
// decides whether to buffer, print immediately, or discard.
type Sink interface {
	Report(d *Diagnostic)
}

// SliceSink is the simplest Sink: it appends every diagnostic to a
// slice, in report order. Useful for tests and for a driver's top-level
// collection point.
type SliceSink struct {
	Diagnostics []*Diagnostic
}

// NewSliceSink returns an empty SliceSink.
func NewSliceSink() *SliceSink {
	return &SliceSink{}
}

// Report implements Sink.
func (s *SliceSink) Report(d *Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// HasErrors reports whether any buffered diagnostic is SeverityError.
func (s *SliceSink) HasErrors() bool {
	for _, d := range s.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// BufferingReporter retains diagnostics in insertion order without
// acting on them, for contexts that only learn whether a diagnostic
// should actually surface after the fact — most notably template-literal
// bodies, where a `${` interpolation that turns out to be unreachable
// code (the lexer backs out of the template) must not leave its escape
// diagnostics behind. Grounded on BufferingDiagReporter in the original
// implementation's lex.rs, which every Lexer::parse_template_body call
// lazily allocates one of and merges into the real reporter only once
// the template is known to be real.
type BufferingReporter struct {
	diagnostics []*Diagnostic
}

// NewBufferingReporter returns an empty BufferingReporter.
func NewBufferingReporter() *BufferingReporter {
	return &BufferingReporter{}
}

// Report implements Sink.
func (b *BufferingReporter) Report(d *Diagnostic) {
	b.diagnostics = append(b.diagnostics, d)
}

// HasDiagnostics reports whether any diagnostic has been buffered.
func (b *BufferingReporter) HasDiagnostics() bool {
	return len(b.diagnostics) > 0
}

// MergeInto replays every buffered diagnostic, in the order it was
// reported, into dest. Used when a transaction commits or a template
// body turns out to be real.
func (b *BufferingReporter) MergeInto(dest Sink) {
	for _, d := range b.diagnostics {
		dest.Report(d)
	}
}

// Discard drops every buffered diagnostic. Used when a transaction rolls
// back or a speculative template/regexp reparse is abandoned.
func (b *BufferingReporter) Discard() {
	b.diagnostics = nil
}
