package core

import (
	"math/rand"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestColourFormat(t *testing.T) {
	tests := []struct {
		name     string
		colour   Colour
		expected string
	}{
		{"integral", RGB(255, 168, 145), "rgb(255,168,145)"},
		{"round half up", RGB(0, 0, 0.6), "rgb(0,0,1)"},
		{"exact half", RGB(0.5, 1.5, 2.49), "rgb(1,2,2)"},
		{"out of range kept", RGB(-3, 260, 0), "rgb(-3,260,0)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.colour.Format(); got != tc.expected {
				t.Errorf("Format() = %q, expected %q", got, tc.expected)
			}
		})
	}

	if got := RGB(255, 168, 145).FormatAlpha(); got != "rgba(255,168,145,1)" {
		t.Errorf("FormatAlpha() = %q", got)
	}
}

func TestColourRandomNearRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for v := 0.0; v <= 255; v += 15 {
		base := RGB(v, v, v)
		for i := 0; i < 200; i++ {
			c := base.RandomNear(rng)
			for _, ch := range []float64{c.R, c.G, c.B} {
				if ch < v/2 || ch >= (256+v)/2 {
					t.Fatalf("RandomNear(%v) channel %v outside [%v, %v)", v, ch, v/2, (256+v)/2)
				}
			}
		}
	}
}

func TestColourRandomNearIsFresh(t *testing.T) {
	base := RGB(10, 20, 30)
	rng := rand.New(rand.NewSource(1))

	a := base.RandomNear(rng)
	b := base.RandomNear(rng)

	if base != RGB(10, 20, 30) {
		t.Error("RandomNear must not modify the receiver")
	}
	if a == b {
		t.Error("two draws should produce independent colours")
	}
}

func TestColourRandomNearDeterministic(t *testing.T) {
	base := RGB(255, 168, 145)
	a := base.RandomNear(rand.New(rand.NewSource(7)))
	b := base.RandomNear(rand.New(rand.NewSource(7)))
	if a != b {
		t.Errorf("same seed produced %v and %v", a, b)
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in       string
		expected Colour
		wantErr  bool
	}{
		{"rgb(255,168,145)", RGB(255, 168, 145), false},
		{" RGB(1, 2, 3) ", RGB(1, 2, 3), false},
		{"rgba(0,0,255,1)", RGB(0, 0, 255), false},
		{"#ffffff", White, false},
		{"#000000", Black, false},
		{"rgb(1,2)", Colour{}, true},
		{"blue", Colour{}, true},
		{"#zzzzzz", Colour{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColour(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseColour(%q) expected error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColour(%q) failed: %v", tc.in, err)
			}
			if got.Format() != tc.expected.Format() {
				t.Errorf("ParseColour(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestColourYAML(t *testing.T) {
	var doc struct {
		A Colour `yaml:"a"`
		B Colour `yaml:"b"`
		C Colour `yaml:"c"`
		D Colour `yaml:"d"`
	}

	input := `
a: [255, 168, 145]
b: "rgb(1,2,3)"
c: "#ffffff"
d: [1, 2]
`
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if doc.A != RGB(255, 168, 145) {
		t.Errorf("a = %v", doc.A)
	}
	if doc.B != RGB(1, 2, 3) {
		t.Errorf("b = %v", doc.B)
	}
	if doc.C.Format() != White.Format() {
		t.Errorf("c = %v", doc.C)
	}
	if doc.D != Black {
		t.Errorf("malformed triple should fall back to black, got %v", doc.D)
	}

	out, err := yaml.Marshal(struct {
		A Colour `yaml:"a"`
	}{RGB(255, 168, 145)})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != "a: [255, 168, 145]\n" {
		t.Errorf("Marshal = %q", out)
	}
}
