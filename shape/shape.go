package shape

import "strings"

const (
	// MaxLayers is the maximum number of layers a shape key can describe.
	MaxLayers = 4

	// QuadsPerLayer is the number of quadrant slots in every layer.
	QuadsPerLayer = 4

	// layerKeyLen is the length of one layer segment in a shape key.
	layerKeyLen = QuadsPerLayer * 2

	// emptyMarker fills both characters of an empty quad.
	emptyMarker = '-'
)

// Subshape is the geometric kind of a quad's content.
type Subshape int

const (
	SubshapeCircle Subshape = iota
	SubshapeSquare
	SubshapeRectangle
	SubshapeWindmill
)

func (s Subshape) String() string {
	switch s {
	case SubshapeCircle:
		return "circle"
	case SubshapeSquare:
		return "square"
	case SubshapeRectangle:
		return "rectangle"
	case SubshapeWindmill:
		return "windmill"
	}
	return "unknown"
}

// Code returns the single-character code for s used in shape keys.
func (s Subshape) Code() byte {
	switch s {
	case SubshapeCircle:
		return 'C'
	case SubshapeSquare:
		return 'S'
	case SubshapeRectangle:
		return 'R'
	case SubshapeWindmill:
		return 'W'
	}
	return '?'
}

func subshapeOf(c byte) (Subshape, bool) {
	switch c {
	case 'C':
		return SubshapeCircle, true
	case 'S':
		return SubshapeSquare, true
	case 'R':
		return SubshapeRectangle, true
	case 'W':
		return SubshapeWindmill, true
	}
	return 0, false
}

// Color is the color of a quad's content.
type Color int

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorCyan
	ColorWhite
	ColorUncolored
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorUncolored:
		return "uncolored"
	}
	return "unknown"
}

// Code returns the single-character code for c used in shape keys.
func (c Color) Code() byte {
	switch c {
	case ColorRed:
		return 'r'
	case ColorGreen:
		return 'g'
	case ColorBlue:
		return 'b'
	case ColorYellow:
		return 'y'
	case ColorPurple:
		return 'p'
	case ColorCyan:
		return 'c'
	case ColorWhite:
		return 'w'
	case ColorUncolored:
		return 'u'
	}
	return '?'
}

func colorOf(c byte) (Color, bool) {
	switch c {
	case 'r':
		return ColorRed, true
	case 'g':
		return ColorGreen, true
	case 'b':
		return ColorBlue, true
	case 'y':
		return ColorYellow, true
	case 'p':
		return ColorPurple, true
	case 'c':
		return ColorCyan, true
	case 'w':
		return ColorWhite, true
	case 'u':
		return ColorUncolored, true
	}
	return 0, false
}

// Quad is the content of one quadrant slot: a sub-shape with a color.
type Quad struct {
	Subshape Subshape
	Color    Color
}

func (q Quad) key() string {
	return string([]byte{q.Subshape.Code(), q.Color.Code()})
}

// Layer holds the 4 quadrant slots of one slab of a shape. A nil slot is
// an empty quadrant. Every layer produced by Parse has at least one
// non-nil slot.
type Layer [QuadsPerLayer]*Quad

func (l Layer) key() string {
	var b strings.Builder
	for _, q := range l {
		if q == nil {
			b.WriteString("--")
			continue
		}
		b.WriteString(q.key())
	}
	return b.String()
}

// Shape is a stack of 1 to 4 layers. Layers[0] is the bottom layer.
// A Shape is only ever produced by a successful Parse and is not meant
// to be modified afterward.
type Shape struct {
	Layers []Layer
}

// Key returns the canonical shape key for s. Parsing the returned key
// yields a Shape identical to s.
func (s *Shape) Key() string {
	keys := make([]string, len(s.Layers))
	for i, l := range s.Layers {
		keys[i] = l.key()
	}
	return strings.Join(keys, ":")
}
