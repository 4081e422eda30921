// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tcx

import "fmt"

// ParseError indicates the input bytes are not well-formed XML. No partial
// tree is ever returned alongside one.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing TCX document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NamespaceConflictError indicates the configured extension prefix is
// already bound to a different URI at the document root. The rewrite never
// silently rebinds a prefix.
type NamespaceConflictError struct {
	Prefix string
	Bound  string // URI the prefix is currently bound to
	Wanted string // URI the rewrite needs
}

func (e *NamespaceConflictError) Error() string {
	return fmt.Sprintf("namespace prefix %q is bound to %q at the document root, cannot rebind to %q",
		e.Prefix, e.Bound, e.Wanted)
}

// InvalidNumericValueError indicates an element expected to hold a numeric
// value (heart rate, cadence, watts, distance, or a trackpoint timestamp)
// holds text that does not parse.
type InvalidNumericValueError struct {
	Element string
	Value   string
	Err     error
}

func (e *InvalidNumericValueError) Error() string {
	return fmt.Sprintf("invalid value %q in element <%s>: %v", e.Value, e.Element, e.Err)
}

func (e *InvalidNumericValueError) Unwrap() error {
	return e.Err
}
