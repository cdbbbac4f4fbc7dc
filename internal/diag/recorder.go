package diag

import "github.com/blanketsucks/language/internal/token"

// Recorder is a Sink that buffers diagnostics instead of exiting. It exists
// so lexer/parser tests can assert on error messages and spans without
// killing the test binary, mirroring the teacher's append-only
// parser.Errors() accumulator.
type Recorder struct {
	Diagnostics []Diagnostic
	// Fatal tracks whether Error or Errorf has been called, since a real
	// Sink would have exited at that point and callers must not keep
	// consuming tokens afterward.
	Fatal bool
}

func (r *Recorder) Error(span token.Span, message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Severity: SeverityError, Message: message, Span: span})
	r.Fatal = true
}

func (r *Recorder) Errorf(message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Severity: SeverityError, Message: message})
	r.Fatal = true
}

func (r *Recorder) Note(span token.Span, message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Severity: SeverityNote, Message: message, Span: span})
}

// Errors returns only the fatal diagnostics recorded so far.
func (r *Recorder) Errors() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}
	return out
}

// Notes returns only the non-fatal diagnostics recorded so far.
func (r *Recorder) Notes() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityNote {
			out = append(out, d)
		}
	}
	return out
}
