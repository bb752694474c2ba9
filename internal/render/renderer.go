// Package render implements the animated grid: geometry derived from the
// canvas size, a throttled per-frame redraw and the active style mode.
//
// The renderer is driven from outside. The host calls Resize when the canvas
// changes size and Tick on every frame callback, rescheduling the next
// callback until Stopped reports true. All methods must be called from a
// single goroutine.
package render

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/colourgrid/internal/config"
	"github.com/vovakirdan/colourgrid/internal/registry"
)

// State is the renderer lifecycle state.
type State int

const (
	// StateIdle means ticks draw nothing: no surface, degenerate geometry,
	// no usable mode, or stopped.
	StateIdle State = iota
	// StateRunning means the next unthrottled tick redraws the grid.
	StateRunning
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Renderer owns the grid geometry, frame state and active mode.
type Renderer struct {
	cfg     config.Config
	refresh time.Duration
	mode    registry.Mode
	hasMode bool
	geom    Geometry
	surface Surface
	rng     *rand.Rand

	lastRender time.Time
	rendered   bool // Whether lastRender is set
	frame      int
	stopped    bool
}

// New creates a renderer. Invalid config values fall back to defaults and an
// unregistered mode falls back to config.DefaultMode.
// A zero seed uses the current time.
func New(cfg config.Config, seed int64) *Renderer {
	cfg.Normalize()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	r := &Renderer{
		cfg:     cfg,
		refresh: cfg.Refresh(),
		rng:     rand.New(rand.NewSource(seed)),
	}

	if err := r.SetMode(cfg.Animation.Mode); err != nil {
		//nolint:errcheck // Leaves the renderer idle if no default is registered
		r.SetMode(config.DefaultMode)
	}
	return r
}

// Config returns the normalized configuration.
func (r *Renderer) Config() config.Config {
	return r.cfg
}

// Attach sets the drawing surface.
func (r *Renderer) Attach(s Surface) {
	r.surface = s
}

// Resize recomputes the geometry for a canvas of w x h pixels.
func (r *Renderer) Resize(w, h int) {
	r.geom = ComputeGeometry(r.cfg.Grid, w, h)
}

// SetGutter changes the band reserved below the grid and recomputes the
// geometry for the current canvas. Negative values are treated as zero.
func (r *Renderer) SetGutter(gutter float64) {
	r.cfg.Grid.Gutter = math.Max(0, gutter)
	r.geom = ComputeGeometry(r.cfg.Grid, int(r.geom.CanvasW), int(r.geom.CanvasH))
}

// Geometry returns the current geometry.
func (r *Renderer) Geometry() Geometry {
	return r.geom
}

// State reports whether the next unthrottled tick would draw.
func (r *Renderer) State() State {
	if r.stopped || r.surface == nil || !r.hasMode || !r.geom.Valid() {
		return StateIdle
	}
	return StateRunning
}

// Mode returns the id of the active mode.
func (r *Renderer) Mode() string {
	return r.mode.ID
}

// SetMode switches the active mode. The change applies on the next redraw.
func (r *Renderer) SetMode(id string) error {
	m, err := registry.Get(id)
	if err != nil {
		return err
	}
	r.mode = m
	r.hasMode = true
	return nil
}

// NextMode switches to the following registered mode and returns its id.
func (r *Renderer) NextMode() string {
	//nolint:errcheck // Next only returns registered ids
	r.SetMode(registry.Next(r.mode.ID))
	return r.mode.ID
}

// PrevMode switches to the preceding registered mode and returns its id.
func (r *Renderer) PrevMode() string {
	//nolint:errcheck // Prev only returns registered ids
	r.SetMode(registry.Prev(r.mode.ID))
	return r.mode.ID
}

// Frame returns the number of completed redraws.
func (r *Renderer) Frame() int {
	return r.frame
}

// Stop makes Stopped report true so the host stops rescheduling ticks.
func (r *Renderer) Stop() {
	r.stopped = true
}

// Resume clears a previous Stop.
func (r *Renderer) Resume() {
	r.stopped = false
}

// Stopped reports whether the host should withhold the next frame callback.
func (r *Renderer) Stopped() bool {
	return r.stopped
}

// Tick handles one frame callback. It redraws the whole grid unless the
// refresh interval has not elapsed since the last redraw or the renderer is
// idle. Returns true if the grid was redrawn.
func (r *Renderer) Tick(now time.Time) bool {
	if r.rendered && now.Sub(r.lastRender) < r.refresh {
		return false
	}
	if r.State() != StateRunning {
		return false
	}

	r.lastRender = now
	r.rendered = true

	r.draw()
	r.frame++
	return true
}

// draw fills every cell with the active mode's style.
func (r *Renderer) draw() {
	p := registry.Params{
		Base:     r.cfg.Palette.Base,
		Contrast: r.cfg.Palette.Contrast,
		CellW:    r.geom.CellW,
		CellH:    r.geom.CellH,
		Margin:   r.geom.Margin,
		Rand:     r.rng,
	}
	style := r.mode.Style
	frame := r.frame

	r.geom.ForEachCell(func(x, y float64) {
		r.surface.FillRect(x, y, r.geom.CellW, r.geom.CellH, style(p, x, y, frame))
	})
}

// RenderFrames draws n consecutive frames, advancing a synthetic clock by
// the refresh interval, and calls fn after each redraw.
func RenderFrames(r *Renderer, n int, start time.Time, fn func(frame int) error) error {
	now := start
	for i := 0; i < n; i++ {
		if r.Tick(now) {
			if err := fn(r.Frame() - 1); err != nil {
				return err
			}
		}
		now = now.Add(r.refresh)
	}
	return nil
}
