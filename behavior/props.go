package behavior

import (
	"github.com/lixenwraith/gdl-engine/core"
)

// Props is the raw designer-set property map of one GDL behavior block.
// Accessors degrade to defaults on missing or mistyped keys; level data
// is hand-authored and should never hard-fail here.
type Props map[string]any

// Float returns a numeric property. All GDL numerics arrive as float64.
func (p Props) Float(key string, def float64) float64 {
	if v, ok := p[key].(float64); ok {
		return v
	}
	return def
}

// Str returns a string property
func (p Props) Str(key, def string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return def
}

// Bool returns a bool property
func (p Props) Bool(key string, def bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return def
}

// Strings returns a string-array property, skipping non-string elements
func (p Props) Strings(key string) []string {
	arr, ok := p[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Points returns a point-list property. Both nested pair form
// `[[x1, y1], [x2, y2]]` and flat form `[x1, y1, x2, y2]` are accepted.
func (p Props) Points(key string) []core.Vec2 {
	arr, ok := p[key].([]any)
	if !ok || len(arr) == 0 {
		return nil
	}

	if _, flat := arr[0].(float64); flat {
		out := make([]core.Vec2, 0, len(arr)/2)
		for i := 0; i+1 < len(arr); i += 2 {
			x, xok := arr[i].(float64)
			y, yok := arr[i+1].(float64)
			if xok && yok {
				out = append(out, core.Vec2{X: x, Y: y})
			}
		}
		return out
	}

	out := make([]core.Vec2, 0, len(arr))
	for _, el := range arr {
		pair, ok := el.([]any)
		if !ok || len(pair) != 2 {
			continue
		}
		x, xok := pair[0].(float64)
		y, yok := pair[1].(float64)
		if xok && yok {
			out = append(out, core.Vec2{X: x, Y: y})
		}
	}
	return out
}
