// Package ui hosts the interactive preview: it owns the root style scope,
// the resize subscription and the theme switches that drive guard passes.
package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"contrastguard/internal/config"
	apperrors "contrastguard/internal/errors"
	"contrastguard/internal/guard"
	"contrastguard/internal/theme"
)

// Config configures the preview application.
type Config struct {
	Theme   string
	Mode    theme.Mode
	Rules   []guard.Rule
	Version string

	// Detect resolves system mode. It runs once, in NewApp. Defaults to the
	// terminal background query.
	Detect theme.BackgroundDetector
	// Logf receives guard diagnostics.
	Logf func(format string, args ...any)
	// Observer is told about every guard pass with the palette that was active.
	Observer func(report guard.Report, themeName, mode string)

	SaveTheme func(name string) error
	SaveMode  func(mode string) error
	CopyText  func(text string) error
}

// App implements the Bubble Tea model for the preview.
type App struct {
	keys  KeyMap
	guard *guard.Guard
	scope *theme.Scope
	hub   *ResizeHub

	// base holds the palette values before any guard pass.
	base      guard.Tokens
	themeName string
	mode      theme.Mode
	dark      bool
	// systemDark caches the terminal background answer taken at startup.
	// Querying the terminal while the program owns stdin would block Update.
	systemDark bool

	lastReport guard.Report
	passes     int

	observer  func(guard.Report, string, string)
	logf      func(format string, args ...any)
	saveTheme func(string) error
	saveMode  func(string) error
	copyText  func(string) error

	width     int
	height    int
	showHelp  bool
	status    string
	statusSeq int
	version   string
}

// NewApp loads the configured palette into a fresh scope, runs the first
// guard pass and binds the guard to terminal resizes.
func NewApp(cfg Config) (*App, error) {
	name := strings.TrimSpace(cfg.Theme)
	if name == "" {
		name = theme.CurrentName()
	}
	if !theme.SetTheme(name) {
		return nil, apperrors.New(apperrors.CodeConfigurationError, fmt.Sprintf("unknown theme %q", name), nil)
	}

	mode := cfg.Mode
	if mode == "" {
		mode = theme.ModeSystem
	}

	app := &App{
		keys:      DefaultKeyMap(),
		scope:     theme.NewScope(nil),
		hub:       &ResizeHub{},
		themeName: name,
		mode:      mode,
		observer:  cfg.Observer,
		logf:      cfg.Logf,
		saveTheme: cfg.SaveTheme,
		saveMode:  cfg.SaveMode,
		copyText:  cfg.CopyText,
		version:   cfg.Version,
	}
	detect := cfg.Detect
	if detect == nil {
		detect = theme.DetectTerminalBackground
	}
	app.systemDark = detect()
	if app.logf == nil {
		app.logf = func(string, ...any) {}
	}
	if app.saveTheme == nil {
		app.saveTheme = config.SaveTheme
	}
	if app.saveMode == nil {
		app.saveMode = config.SaveMode
	}
	if app.copyText == nil {
		app.copyText = clipboard.WriteAll
	}

	opts := []guard.Option{guard.WithLogger(app.logf), guard.WithObserver(app.observe)}
	if cfg.Rules != nil {
		opts = append(opts, guard.WithRules(cfg.Rules))
	}
	app.guard = guard.New(opts...)

	app.reload()
	app.guard.EnsureBound(app.hub, app.scope)
	return app, nil
}

// reload resets the scope to the active palette variant and guards it.
func (m *App) reload() {
	t, ok := theme.Lookup(m.themeName)
	if !ok {
		t = theme.Current()
	}
	m.dark = theme.Resolve(m.mode, m.cachedBackground)
	m.base = theme.Tokens(t, m.dark)
	m.scope.Replace(m.base)
	m.guard.ApplyOnce(m.scope)
}

func (m *App) cachedBackground() bool {
	return m.systemDark
}

func (m *App) observe(report guard.Report) {
	m.lastReport = report
	m.passes++
	if m.observer != nil {
		m.observer(report, m.themeName, string(m.mode))
	}
}

// Scope exposes the live root style scope.
func (m *App) Scope() *theme.Scope { return m.scope }

// ThemeName returns the active palette name.
func (m *App) ThemeName() string { return m.themeName }

// Mode returns the selected mode.
func (m *App) Mode() theme.Mode { return m.mode }

// Dark reports whether the dark variant is showing.
func (m *App) Dark() bool { return m.dark }

// Passes returns how many guard passes have run.
func (m *App) Passes() int { return m.passes }

// Bound reports whether the guard follows resize events.
func (m *App) Bound() bool { return m.guard.Bound() }

func (m *App) Init() tea.Cmd {
	return tea.SetWindowTitle("contrastguard")
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.hub.Fire()
		return m, nil
	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		return m.handleThemeKey()
	case key.Matches(msg, m.keys.Mode):
		return m.handleModeKey()
	case key.Matches(msg, m.keys.Copy):
		return m.handleCopyKey()
	}
	return m, nil
}

// handleThemeKey switches to the next palette and persists the choice.
func (m *App) handleThemeKey() (tea.Model, tea.Cmd) {
	name := theme.CycleTheme()
	if name == "" {
		return m, nil
	}
	m.themeName = name
	m.reload()
	if err := m.saveTheme(name); err != nil {
		m.logf("ui: save theme: %v", err)
		return m.setStatus(fmt.Sprintf("Palette: %s (not saved)", name))
	}
	return m.setStatus(fmt.Sprintf("Palette: %s", name))
}

func (m *App) handleModeKey() (tea.Model, tea.Cmd) {
	m.mode = m.mode.Next()
	m.reload()
	label := fmt.Sprintf("Mode: %s (%s)", m.mode, theme.VariantName(m.dark))
	if err := m.saveMode(string(m.mode)); err != nil {
		m.logf("ui: save mode: %v", err)
		return m.setStatus(label + " (not saved)")
	}
	return m.setStatus(label)
}

// handleCopyKey copies the guarded root scope as CSS.
func (m *App) handleCopyKey() (tea.Model, tea.Cmd) {
	if err := m.copyText(m.scope.CSS()); err != nil {
		m.logf("ui: copy css: %v", err)
		return m.setStatus("Copy failed.")
	}
	return m.setStatus("Copied guarded CSS to clipboard.")
}

func (m *App) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	return m, scheduleStatusClear(m.statusSeq)
}
