package core

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Colour is an RGB triple with channels nominally in [0, 255].
// Channels are not clamped; values derived by RandomNear may leave the range.
type Colour struct {
	R, G, B float64
}

// Predefined colours.
var (
	Black = Colour{0, 0, 0}
	White = Colour{255, 255, 255}
)

// RGB creates a colour from channel values.
func RGB(r, g, b float64) Colour {
	return Colour{R: r, G: g, B: b}
}

// Format returns the colour as "rgb(r,g,b)" with each channel rounded half-up.
func (c Colour) Format() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", roundHalfUp(c.R), roundHalfUp(c.G), roundHalfUp(c.B))
}

// FormatAlpha returns the colour as "rgba(r,g,b,1)".
func (c Colour) FormatAlpha() string {
	return fmt.Sprintf("rgba(%d,%d,%d,1)", roundHalfUp(c.R), roundHalfUp(c.G), roundHalfUp(c.B))
}

// String implements fmt.Stringer.
func (c Colour) String() string {
	return c.Format()
}

// RandomNear returns a new colour whose channels are the average of the
// original channel and a uniform random value in [0, 256).
func (c Colour) RandomNear(rng *rand.Rand) Colour {
	return Colour{
		R: (rng.Float64()*256 + c.R) / 2,
		G: (rng.Float64()*256 + c.G) / 2,
		B: (rng.Float64()*256 + c.B) / 2,
	}
}

// Colorful converts to a go-colorful colour. Channels are clamped here,
// at the point where they leave the unclamped domain.
func (c Colour) Colorful() colorful.Color {
	return colorful.Color{
		R: ClampF(c.R, 0, 255) / 255,
		G: ClampF(c.G, 0, 255) / 255,
		B: ClampF(c.B, 0, 255) / 255,
	}
}

// FromColorful converts a go-colorful colour back to channel values.
func FromColorful(c colorful.Color) Colour {
	return Colour{R: c.R * 255, G: c.G * 255, B: c.B * 255}
}

// Hex returns the colour as "#rrggbb".
func (c Colour) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// ParseColour parses "rgb(r,g,b)", "rgba(r,g,b,a)" or "#rrggbb".
// The alpha component of rgba is accepted and ignored.
func ParseColour(s string) (Colour, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if strings.HasPrefix(s, "#") {
		cf, err := colorful.Hex(s)
		if err != nil {
			return Colour{}, fmt.Errorf("core: invalid hex colour %q: %w", s, err)
		}
		return FromColorful(cf), nil
	}

	var body string
	var want int
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body, want = s[5:len(s)-1], 4
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body, want = s[4:len(s)-1], 3
	default:
		return Colour{}, fmt.Errorf("core: unrecognised colour %q", s)
	}

	parts := strings.Split(body, ",")
	if len(parts) != want {
		return Colour{}, fmt.Errorf("core: colour %q has %d components, expected %d", s, len(parts), want)
	}

	var ch [3]float64
	for i := range ch {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return Colour{}, fmt.Errorf("core: invalid channel in %q: %w", s, err)
		}
		ch[i] = v
	}
	return Colour{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// UnmarshalYAML accepts either a [r, g, b] sequence or a colour string.
func (c *Colour) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var values []float64
		if err := node.Decode(&values); err != nil {
			return err
		}
		// Malformed triples fall back to black.
		if len(values) != 3 {
			*c = Black
			return nil
		}
		*c = Colour{R: values[0], G: values[1], B: values[2]}
		return nil
	case yaml.ScalarNode:
		parsed, err := ParseColour(node.Value)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	default:
		return fmt.Errorf("core: line %d: colour must be a sequence or a string", node.Line)
	}
}

// MarshalYAML writes the colour as a flow sequence.
func (c Colour) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []float64{c.R, c.G, c.B} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(v, 'f', -1, 64),
		})
	}
	return node, nil
}

// roundHalfUp rounds to the nearest integer, with .5 rounding toward +Inf.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
