package error

import (
	"fmt"
	"strings"
)

// KeyError decorates a shape key diagnostic with the context needed to
// present it to a user: the name of the source the key came from, the
// line it appeared on, and the offending span within the key itself.
type KeyError struct {
	Cause      error
	SourceName string
	Row        int
	Key        string
	Start      int
	End        int
}

func (e *KeyError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v: ", e.Row)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)

	if e.Key != "" {
		fmt.Fprintf(&b, "\n    %v", e.Key)
		marker := spanMarker(e.Key, e.Start, e.End)
		if marker != "" {
			fmt.Fprintf(&b, "\n    %v", marker)
		}
	}

	return b.String()
}

func (e *KeyError) Unwrap() error {
	return e.Cause
}

func spanMarker(key string, start, end int) string {
	if start < 0 || end <= start || end > len(key) {
		return ""
	}
	return strings.Repeat(" ", start) + strings.Repeat("^", end-start)
}

type KeyErrors []*KeyError

func (e KeyErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v", e[0])
	for _, keyErr := range e[1:] {
		fmt.Fprintf(&b, "\n%v", keyErr)
	}
	return b.String()
}
