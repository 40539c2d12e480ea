package pattern

import "fmt"

// UnknownDirectiveError reports a %-directive that is not registered.
type UnknownDirectiveError struct {
	Pattern   string
	Directive string
}

func (e *UnknownDirectiveError) Error() string {
	return fmt.Sprintf("unknown directive %q in pattern %q", e.Directive, e.Pattern)
}

// UnbalancedGroupError reports a group that was opened but never closed, or
// closed without being open.
type UnbalancedGroupError struct {
	Pattern string
}

func (e *UnbalancedGroupError) Error() string {
	return fmt.Sprintf("unbalanced group in pattern %q", e.Pattern)
}

// DanglingAlternativeError reports a | outside any group.
type DanglingAlternativeError struct {
	Pattern string
}

func (e *DanglingAlternativeError) Error() string {
	return fmt.Sprintf("alternative outside group in pattern %q", e.Pattern)
}
