package tui

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colourgrid/internal/config"
	"github.com/vovakirdan/colourgrid/internal/core"
	"github.com/vovakirdan/colourgrid/internal/registry"
	"github.com/vovakirdan/colourgrid/internal/render"
)

// toolbarRows is the number of terminal rows below the grid with short help.
const toolbarRows = 2

// snapshotMsg reports the outcome of a snapshot write.
type snapshotMsg struct {
	path string
	err  error
}

// Options configures the Bubble Tea model.
type Options struct {
	Logger      *log.Logger
	Theme       *Theme // Defaults to DefaultTheme
	SnapshotDir string // Defaults to ~/.colours/snapshots
}

// Model is the Bubble Tea model running the colour grid.
type Model struct {
	renderer    *render.Renderer
	screen      *core.Screen
	config      core.RuntimeConfig
	keys        KeyMap
	help        help.Model
	theme       Theme
	logger      *log.Logger
	baseGutter  float64 // Gutter from the config, before room for the toolbar
	snapshotDir string
	gen         int    // Frame loop generation
	status      string // Last snapshot result
	statusErr   bool
	quitting    bool
}

// NewModel creates a new Bubble Tea model. The grid gutter is widened to at
// least the toolbar height so cells never sit behind the toolbar.
func NewModel(cfg config.Config, rt core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	snapshotDir := opts.SnapshotDir
	if snapshotDir == "" {
		snapshotDir = defaultSnapshotDir()
	}

	w, h := canvasSize(rt.ScreenW, rt.ScreenH)
	screen := core.NewScreen(w, h, cfg.Palette.Background)

	r := render.New(cfg, rt.Seed)
	if r.Mode() != cfg.Animation.Mode {
		logger.Warn("unknown mode, using fallback", "mode", cfg.Animation.Mode, "fallback", r.Mode())
	}
	r.Attach(screen)
	r.Resize(w, h)

	m := Model{
		renderer:    r,
		screen:      screen,
		config:      rt,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		theme:       theme,
		logger:      logger,
		baseGutter:  r.Config().Grid.Gutter,
		snapshotDir: snapshotDir,
	}
	m.help.Width = rt.ScreenW
	m.fitGutter()
	return m
}

// Renderer returns the underlying renderer.
func (m Model) Renderer() *render.Renderer {
	return m.renderer
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("animation started",
		"mode", m.renderer.Mode(),
		"canvas", fmt.Sprintf("%dx%d", m.screen.Width(), m.screen.Height()),
		"state", m.renderer.State(),
	)
	return frameCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(msg)

	case snapshotMsg:
		if msg.err != nil {
			m.logger.Error("snapshot failed", "error", msg.err)
			m.status, m.statusErr = "snapshot failed: "+msg.err.Error(), true
		} else {
			m.logger.Info("snapshot saved", "path", msg.path)
			m.status, m.statusErr = "saved "+msg.path, false
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, mode := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.renderer.Stop()
		return m, tea.Quit

	case core.ActionSetMode:
		if err := m.renderer.SetMode(mode); err != nil {
			m.logger.Error("mode switch failed", "mode", mode, "error", err)
			return m, nil
		}
		m.logger.Debug("mode switched", "mode", mode)

	case core.ActionNextMode:
		m.logger.Debug("mode switched", "mode", m.renderer.NextMode())

	case core.ActionPrevMode:
		m.logger.Debug("mode switched", "mode", m.renderer.PrevMode())

	case core.ActionPause:
		if m.renderer.Stopped() {
			m.renderer.Resume()
			m.gen++
			m.logger.Debug("resumed", "frame", m.renderer.Frame())
			return m, frameCmd(m.config.TickRate, m.gen)
		}
		m.renderer.Stop()
		m.logger.Debug("paused", "frame", m.renderer.Frame())

	case core.ActionSnapshot:
		return m, m.snapshotCmd()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.fitGutter()
		m.logger.Debug("help toggled", "full", m.help.ShowAll, "gutter", m.renderer.Geometry().Gutter)
	}

	return m, nil
}

// handleResize recomputes geometry for the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	m.help.Width = msg.Width

	w, h := canvasSize(msg.Width, msg.Height)
	m.screen.Resize(w, h)
	m.renderer.Resize(w, h)
	m.fitGutter()

	g := m.renderer.Geometry()
	m.logger.Debug("resized",
		"canvas", fmt.Sprintf("%dx%d", w, h),
		"cell", fmt.Sprintf("%.2fx%.2f", g.CellW, g.CellH),
		"state", m.renderer.State(),
	)
	return m, nil
}

// handleFrame runs one renderer tick and schedules the next frame unless the
// renderer was stopped.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.renderer.Stopped() {
		return m, nil
	}
	m.renderer.Tick(msg.Time)
	return m, frameCmd(m.config.TickRate, m.gen)
}

// snapshotCmd copies the current frame and writes it as PNG off the update loop.
// Everything the command reads is captured before it is returned.
func (m Model) snapshotCmd() tea.Cmd {
	img := cropGutter(m.screen.Image(), m.renderer.Geometry())
	name := fmt.Sprintf("colours_%s_%s.png", m.renderer.Mode(), time.Now().Format("20060102_150405"))
	path := filepath.Join(m.snapshotDir, name)

	return func() tea.Msg {
		return snapshotMsg{path: path, err: render.SavePNG(img, path)}
	}
}

// View renders the grid and the toolbar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	gridRows := core.Max(0, m.config.ScreenH-m.toolbarHeight())
	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen, gridRows))
	if gridRows > 0 {
		sb.WriteRune('\n')
	}
	sb.WriteString(m.toolbar())
	return sb.String()
}

// toolbar renders the mode buttons and the status/help line.
func (m Model) toolbar() string {
	active := m.renderer.Mode()

	var buttons []string
	for _, mode := range registry.List() {
		label := mode.Title
		if k := m.keys.ModeKey(mode.ID); k != "" {
			label = k + " " + label
		}
		style := m.theme.Button
		if mode.ID == active {
			style = m.theme.ButtonActive
		}
		buttons = append(buttons, style.Render(label))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	if m.renderer.Stopped() {
		top += m.theme.Separator.Render(" │ ") + m.theme.Paused.Render("PAUSED")
	}

	var bottom string
	switch {
	case m.help.ShowAll:
		bottom = m.help.View(m.keys)
	case m.status != "" && m.statusErr:
		bottom = m.theme.Error.Render(m.status)
	case m.status != "":
		bottom = m.theme.Status.Render(m.status)
	default:
		bottom = m.help.View(m.keys)
	}

	info := m.theme.Separator.Render(" │ ") + m.theme.Status.Render(fmt.Sprintf("frame %d · base %s",
		m.renderer.Frame(), m.renderer.Config().Palette.Base.Hex()))

	return top + "\n" + lipgloss.JoinHorizontal(lipgloss.Bottom, bottom, info)
}

// toolbarHeight returns the number of terminal rows the toolbar occupies.
func (m Model) toolbarHeight() int {
	if !m.help.ShowAll {
		return toolbarRows
	}
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

// fitGutter reserves enough canvas rows below the grid for the toolbar.
// The screen is cleared since cells move when the gutter changes.
func (m *Model) fitGutter() {
	gutter := math.Max(m.baseGutter, float64(m.toolbarHeight()*2))
	if gutter == m.renderer.Geometry().Gutter {
		return
	}
	m.renderer.SetGutter(gutter)
	m.screen.Clear()
}

// canvasSize converts a terminal size to canvas pixels: one pixel per column,
// two per row.
func canvasSize(cols, rows int) (int, int) {
	return core.Max(0, cols), core.Max(0, rows) * 2
}

// cropGutter trims the toolbar area from a snapshot.
func cropGutter(img *image.RGBA, g render.Geometry) image.Image {
	h := int(g.DrawableHeight())
	if h <= 0 || h >= img.Bounds().Dy() {
		return img
	}
	return img.SubImage(image.Rect(0, 0, img.Bounds().Dx(), h))
}

// defaultSnapshotDir returns ~/.colours/snapshots, or a relative directory if
// home is unavailable.
func defaultSnapshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "snapshots"
	}
	return filepath.Join(home, ".colours", "snapshots")
}

// Run starts the Bubble Tea program.
func Run(cfg config.Config, rt core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rt, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
