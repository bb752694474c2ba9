// Package registry provides a global registry of rendering modes.
// Style packages register their modes in init() functions, allowing the
// renderer and the toggle bar to discover modes without hardcoded
// dependencies.
package registry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/colourgrid/internal/core"
)

// ErrUnknownMode is returned when a mode id is not registered.
var ErrUnknownMode = errors.New("registry: unknown mode")

// Params carries everything a style function may read besides the cell
// position and frame number.
type Params struct {
	Base     core.Colour // Base colour of the grid
	Contrast core.Colour // Fixed contrasting colour (white by default)
	CellW    float64     // Current cell width
	CellH    float64     // Current cell height
	Margin   float64     // Margin between cells
	Rand     *rand.Rand  // Random source for randomized modes
}

// StyleFunc computes the fill of the cell whose top-left corner is (x, y).
// It must not retain or mutate anything besides drawing from p.Rand.
type StyleFunc func(p Params, x, y float64, frame int) core.Fill

// Mode describes a registered rendering mode.
type Mode struct {
	// ID is the unique name used in configuration and on the command line.
	ID string

	// Title is a short label for the toggle bar.
	Title string

	// Order positions the mode in List and in the toggle bar.
	Order int

	// Style computes cell fills for this mode.
	Style StyleFunc
}

var (
	modes = make(map[string]Mode)
	mu    sync.RWMutex
)

// Register adds a mode to the registry.
// Typically called from a style package's init() function.
// Panics if a mode with the same ID is already registered or has no style.
func Register(m Mode) {
	mu.Lock()
	defer mu.Unlock()

	if m.Style == nil {
		panic(fmt.Sprintf("registry: mode %q has no style function", m.ID))
	}
	if _, exists := modes[m.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", m.ID))
	}
	if m.Title == "" {
		m.Title = m.ID
	}

	modes[m.ID] = m
}

// List returns all registered modes, sorted by Order then ID.
func List() []Mode {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Mode, 0, len(modes))
	for _, m := range modes {
		result = append(result, m)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the mode with the given id.
func Get(id string) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := modes[id]
	if !ok {
		return Mode{}, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}
	return m, nil
}

// Exists checks if a mode with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}

// Next returns the id of the mode after id in List order, wrapping around.
// An unknown id yields the first mode.
func Next(id string) string {
	return step(id, 1)
}

// Prev returns the id of the mode before id in List order, wrapping around.
func Prev(id string) string {
	return step(id, -1)
}

func step(id string, delta int) string {
	list := List()
	if len(list) == 0 {
		return id
	}
	for i, m := range list {
		if m.ID == id {
			return list[(i+delta+len(list))%len(list)].ID
		}
	}
	return list[0].ID
}
