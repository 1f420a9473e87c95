package shape

import "strings"

func raiseSyntaxError(synErr *SyntaxError) {
	panic(synErr)
}

// Parse translates a compact shape key into a Shape.
//
// The grammar is `layer (":" layer){0,3}`; a layer consists of exactly 4
// 2-character quads, and a quad is either "--" (an empty quadrant) or a
// sub-shape code (C, S, R, or W) followed by a color code (r, g, b, y,
// p, c, w, or u).
//
// Structural violations abort the parse immediately: a key with more
// than 4 layers, or a layer whose length isn't 8 characters, stops
// validation at that point and later layers are not inspected. Alphabet
// violations inside well-formed layers don't stop the parse; Parse
// collects them all and reports them together.
//
// On failure the returned error is a ParseErrors value holding every
// diagnostic collected before the parse stopped. Parse never returns a
// partial Shape alongside an error.
func Parse(key string) (*Shape, error) {
	p := &parser{
		key: key,
	}
	return p.parse()
}

type parser struct {
	key  string
	errs ParseErrors
}

func (p *parser) parse() (shape *Shape, retErr error) {
	defer func() {
		v := recover()
		if v != nil {
			synErr, ok := v.(*SyntaxError)
			if !ok {
				panic(v)
			}
			shape = nil
			retErr = append(p.errs, synErr)
			return
		}
	}()

	if p.key == "" {
		raiseSyntaxError(errEmptyInput())
	}

	rawLayers := strings.Split(p.key, ":")
	if len(rawLayers) > MaxLayers {
		raiseSyntaxError(errTooManyLayers(len(p.key)))
	}

	layers := make([]Layer, 0, len(rawLayers))
	offset := 0
	for i, rawLayer := range rawLayers {
		layers = append(layers, p.parseLayer(rawLayer, i, offset))
		offset += len(rawLayer) + 1
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return &Shape{
		Layers: layers,
	}, nil
}

func (p *parser) parseLayer(rawLayer string, layerIdx, offset int) Layer {
	if len(rawLayer) != layerKeyLen {
		raiseSyntaxError(errInvalidLayerLength(layerIdx, len(rawLayer), offset))
	}

	var layer Layer
	emptyCount := 0
	for i := 0; i < QuadsPerLayer; i++ {
		quad, empty := p.parseQuad(rawLayer[i*2:i*2+2], layerIdx, i, offset+i*2)
		if empty {
			emptyCount++
		}
		layer[i] = quad
	}
	if emptyCount == QuadsPerLayer {
		p.errs = append(p.errs, errEmptyLayer(layerIdx, offset))
	}
	return layer
}

// parseQuad classifies one 2-character quad. "--" is an empty quadrant,
// not an error. Otherwise both characters are checked independently, so
// an invalid sub-shape and an invalid color in the same quad each
// produce their own diagnostic.
func (p *parser) parseQuad(rawQuad string, layerIdx, quadIdx, offset int) (quad *Quad, empty bool) {
	subshapeChar := rawQuad[0]
	colorChar := rawQuad[1]
	if subshapeChar == emptyMarker && colorChar == emptyMarker {
		return nil, true
	}

	subshape, subshapeOK := subshapeOf(subshapeChar)
	if !subshapeOK {
		p.errs = append(p.errs, errInvalidSubshape(layerIdx, quadIdx, subshapeChar, offset))
	}
	color, colorOK := colorOf(colorChar)
	if !colorOK {
		p.errs = append(p.errs, errInvalidColor(layerIdx, quadIdx, colorChar, offset+1))
	}
	if !subshapeOK || !colorOK {
		return nil, false
	}
	return &Quad{
		Subshape: subshape,
		Color:    color,
	}, false
}
