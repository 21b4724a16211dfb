package masterfile

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying why a parse failed. Match with errors.Is.
var (
	// ErrSyntax: no field classification matched the current token.
	ErrSyntax = errors.New("malformed record")
	// ErrStructural: a record line ended with no type token found.
	ErrStructural = errors.New("record has no type")
	// ErrRdata: a registered decoder rejected the record's rdata tokens.
	ErrRdata = errors.New("invalid rdata")
	// ErrDirective: a recognised directive carried an unusable argument.
	ErrDirective = errors.New("invalid directive")
)

// ParseError is the single error type returned by Parse. Kind is one of the
// sentinels above; Err carries the underlying decoder failure when Kind is
// ErrRdata.
type ParseError struct {
	Kind error
	Line int // 1-based line in the input where the logical record starts
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %s: %v", e.Line, e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Msg)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func syntaxErrorf(line int, format string, args ...any) error {
	return &ParseError{Kind: ErrSyntax, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func structuralErrorf(line int, format string, args ...any) error {
	return &ParseError{Kind: ErrStructural, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func rdataError(line int, rrType string, err error) error {
	return &ParseError{Kind: ErrRdata, Line: line, Msg: rrType + " record", Err: err}
}

func directiveErrorf(line int, format string, args ...any) error {
	return &ParseError{Kind: ErrDirective, Line: line, Msg: fmt.Sprintf(format, args...)}
}
