package shape

import (
	"fmt"
	"strings"
)

// ErrorKind identifies the category of violation a SyntaxError reports.
type ErrorKind int

const (
	// ErrorKindEmptyInput is reported when the shape key is empty.
	ErrorKindEmptyInput ErrorKind = iota

	// ErrorKindTooManyLayers is reported when the key contains more than
	// MaxLayers colon-separated segments.
	ErrorKindTooManyLayers

	// ErrorKindInvalidLayerLength is reported when a layer segment does not
	// consist of exactly QuadsPerLayer 2-character quads.
	ErrorKindInvalidLayerLength

	// ErrorKindInvalidSubshape is reported when the first character of a
	// quad is not a sub-shape code.
	ErrorKindInvalidSubshape

	// ErrorKindInvalidColor is reported when the second character of a quad
	// is not a color code.
	ErrorKindInvalidColor

	// ErrorKindEmptyLayer is reported when all 4 quads of a layer are empty.
	ErrorKindEmptyLayer
)

// SyntaxError is one diagnostic about a shape key. Layer and Quad are
// 0-based indexes, or -1 when the diagnostic doesn't refer to a layer or
// quad. Start and End delimit the offending byte span within the key.
type SyntaxError struct {
	Kind  ErrorKind
	Layer int
	Quad  int
	Char  byte
	Start int
	End   int

	message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

func errEmptyInput() *SyntaxError {
	return &SyntaxError{
		Kind:    ErrorKindEmptyInput,
		Layer:   -1,
		Quad:    -1,
		message: "empty input",
	}
}

func errTooManyLayers(keyLen int) *SyntaxError {
	return &SyntaxError{
		Kind:    ErrorKindTooManyLayers,
		Layer:   -1,
		Quad:    -1,
		End:     keyLen,
		message: fmt.Sprintf("a shape key can contain at most %v layers", MaxLayers),
	}
}

func errInvalidLayerLength(layer, length, start int) *SyntaxError {
	var msg string
	switch {
	case length%2 != 0:
		msg = fmt.Sprintf("the %v layer has an odd number of characters", ordinal(layer))
	case length > layerKeyLen:
		msg = fmt.Sprintf("the %v layer has more than %v characters", ordinal(layer), layerKeyLen)
	default:
		msg = fmt.Sprintf("the %v layer has less than %v characters", ordinal(layer), layerKeyLen)
	}
	return &SyntaxError{
		Kind:    ErrorKindInvalidLayerLength,
		Layer:   layer,
		Quad:    -1,
		Start:   start,
		End:     start + length,
		message: msg,
	}
}

func errInvalidSubshape(layer, quad int, c byte, offset int) *SyntaxError {
	return &SyntaxError{
		Kind:    ErrorKindInvalidSubshape,
		Layer:   layer,
		Quad:    quad,
		Char:    c,
		Start:   offset,
		End:     offset + 1,
		message: fmt.Sprintf("invalid sub-shape '%c' in the %v layer, %v quad", c, ordinal(layer), ordinal(quad)),
	}
}

func errInvalidColor(layer, quad int, c byte, offset int) *SyntaxError {
	return &SyntaxError{
		Kind:    ErrorKindInvalidColor,
		Layer:   layer,
		Quad:    quad,
		Char:    c,
		Start:   offset,
		End:     offset + 1,
		message: fmt.Sprintf("invalid color '%c' in the %v layer, %v quad", c, ordinal(layer), ordinal(quad)),
	}
}

func errEmptyLayer(layer, start int) *SyntaxError {
	return &SyntaxError{
		Kind:    ErrorKindEmptyLayer,
		Layer:   layer,
		Quad:    -1,
		Start:   start,
		End:     start + layerKeyLen,
		message: fmt.Sprintf("the %v layer is empty", ordinal(layer)),
	}
}

// ParseErrors is the ordered list of diagnostics a parse produced.
// Diagnostics appear in key order: by layer, then by quad, with a quad's
// sub-shape diagnostic preceding its color diagnostic.
type ParseErrors []*SyntaxError

func (e ParseErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(e[0].Error())
	for _, synErr := range e[1:] {
		b.WriteString("\n")
		b.WriteString(synErr.Error())
	}
	return b.String()
}
