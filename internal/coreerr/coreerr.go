// Package coreerr provides the small wrapped-error helper used by the
// thumb7run command (the thumb7 core package itself never returns a Go
// error), grounded on the teacher's curated.Errorf call sites
// (ARM: %v, format 5: %v) but reimplemented locally since that package's
// source is not part of this module's dependency surface.
package coreerr

import "fmt"

// Error is a formatted, wrappable error carrying a short tag identifying
// which component raised it (config, run, watch, ...).
type Error struct {
	tag string
	err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("thumb7: %s: %v", e.tag, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Errorf builds an *Error tagged with component, formatting args the same
// way fmt.Errorf does.
func Errorf(component, format string, args ...any) error {
	return &Error{tag: component, err: fmt.Errorf(format, args...)}
}
