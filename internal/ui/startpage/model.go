// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package startpage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/sttp/internal/app"
	"github.com/jeranaias/sttp/internal/commands"
	"github.com/jeranaias/sttp/internal/config"
	"github.com/jeranaias/sttp/internal/ui/styles"
)

// InstantRedirectDelay is how long a single typed key waits before it is
// submitted with instant redirect on.
const InstantRedirectDelay = 500 * time.Millisecond

// =============================================================================
// MESSAGES
// =============================================================================

// tickMsg advances the clock.
type tickMsg time.Time

// instantRedirectMsg fires after InstantRedirectDelay for value.
type instantRedirectMsg struct {
	value string
}

// submitDoneMsg carries the outcome of app.Submit.
type submitDoneMsg struct {
	result app.Result
	err    error
}

// ConfigReloadedMsg delivers a configuration from the file watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// overlay is the full-screen panel shown instead of the page body.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlaySettings
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the bubbletea model of the startpage.
type Model struct {
	app   *app.App
	ctx   context.Context
	theme *styles.Theme
	keys  KeyMap
	help  help.Model

	input       textinput.Model
	suggestions *commands.SuggestionState
	status      string

	// last submit outcome line
	message    string
	messageErr bool

	overlay     overlay
	overlayBody string

	showKeys bool
	now      time.Time
	clock    func() time.Time

	configUpdates <-chan *config.Config

	width  int
	height int
}

// Option customises a Model.
type Option func(*Model)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.clock = now }
}

// WithConfigUpdates makes the model apply configurations received on ch.
func WithConfigUpdates(ch <-chan *config.Config) Option {
	return func(m *Model) { m.configUpdates = ch }
}

// New creates the startpage model.
func New(ctx context.Context, a *app.App, opts ...Option) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a command or URL..."
	ti.CharLimit = 2048
	ti.Focus()

	cfg := a.Config()
	m := Model{
		app:         a,
		ctx:         ctx,
		theme:       styles.NewTheme(cfg.UI.Theme, a.InvertedColors(ctx)),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		input:       ti,
		suggestions: commands.NewSuggestionState(),
		showKeys:    a.ShowKeys(ctx),
		clock:       time.Now,
		width:       80,
		height:      24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.now = m.clock()
	return m
}

// Run starts the startpage on the alternate screen and blocks until quit.
func Run(ctx context.Context, a *app.App, opts ...Option) error {
	p := tea.NewProgram(New(ctx, a, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the clock, the cursor blink and the config listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.tick()}
	if m.configUpdates != nil {
		cmds = append(cmds, waitForConfig(m.configUpdates))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.input.Width = min(60, max(10, msg.Width-10))
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, m.tick()

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case configChannelMsg:
		m.applyConfig(msg.cfg)
		return m, waitForConfig(m.configUpdates)

	case instantRedirectMsg:
		if m.input.Value() != msg.value {
			return m, nil
		}
		return m, m.submit(msg.value)

	case submitDoneMsg:
		return m.handleSubmitDone(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey routes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Any key closes an overlay.
	if m.overlay != overlayNone {
		m.overlay = overlayNone
		m.overlayBody = ""
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Clear):
		if m.input.Value() == "" {
			return m, tea.Quit
		}
		m.reset()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.suggestions.Next()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.suggestions.Prev()
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		m.complete()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		value := m.input.Value()
		if accepted, ok := m.suggestions.Accept(); ok {
			value = accepted
		}
		if strings.TrimSpace(value) == "" {
			return m, nil
		}
		return m, m.submit(value)
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	after := m.input.Value()
	if after == before {
		return m, cmd
	}

	m.refresh()
	if m.shouldInstantRedirect(before, after) {
		cmd = tea.Batch(cmd, tea.Tick(InstantRedirectDelay, func(time.Time) tea.Msg {
			return instantRedirectMsg{value: after}
		}))
	}
	return m, cmd
}

// complete copies the selected (or first) suggestion into the input.
func (m *Model) complete() {
	value, ok := m.suggestions.Accept()
	if !ok {
		if !m.suggestions.Visible() {
			return
		}
		value = commands.Canonical(m.suggestions.Items[0])
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.refresh()
}

// shouldInstantRedirect reports whether typing turned the input into a
// single character that is exactly a command key.
func (m Model) shouldInstantRedirect(before, after string) bool {
	if !m.app.Config().Navigation.InstantRedirect {
		return false
	}
	if len(after) <= len(before) || utf8.RuneCountInString(after) != 1 {
		return false
	}
	return m.app.Resolve(after).Kind() == commands.KindExact
}

// refresh recomputes suggestions and the status indicator.
func (m *Model) refresh() {
	value := m.input.Value()
	if strings.TrimSpace(value) == "" {
		m.suggestions.Clear()
		m.status = ""
		return
	}
	m.suggestions.Update(m.app.Suggest(value))
	m.status = commands.Describe(m.app.Resolve(value))
}

// reset clears the input and everything derived from it.
func (m *Model) reset() {
	m.input.Reset()
	m.suggestions.Clear()
	m.status = ""
}

// submit runs app.Submit off the update loop.
func (m Model) submit(value string) tea.Cmd {
	a, ctx := m.app, m.ctx
	return func() tea.Msg {
		res, err := a.Submit(ctx, value)
		return submitDoneMsg{result: res, err: err}
	}
}

// handleSubmitDone applies the outcome of a submit to the page.
func (m Model) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	res := msg.result
	m.reset()
	m.message, m.messageErr = "", false

	if msg.err != nil {
		m.message = msg.err.Error()
		if len(res.Hints) > 0 {
			m.message += fmt.Sprintf(" (did you mean %s?)", strings.Join(res.Hints, ", "))
		}
		m.messageErr = true
		return m, nil
	}

	cfg := m.app.Config()
	switch res.Action {
	case app.ActionOpened:
		m.message = "Opened " + res.URL
	case app.ActionBatchLaunched:
		m.message = fmt.Sprintf("Opened %d pages", res.Opened)
	case app.ActionInverted:
		m.theme = m.theme.WithInverted(res.Enabled)
		m.message = "Colors " + onOff(res.Enabled, "inverted", "restored")
	case app.ActionKeysToggled:
		m.showKeys = res.Enabled
		m.message = "Keys " + onOff(res.Enabled, "shown", "hidden")
	case app.ActionHelp:
		m.overlay = overlayHelp
		m.overlayBody = RenderMarkdown(HelpMarkdown(cfg.Commands, cfg.Delimiters()), m.overlayWidth(), m.theme.IsDark)
	case app.ActionSettings:
		data, err := cfg.ExportSettings()
		if err != nil {
			m.message, m.messageErr = err.Error(), true
			return m, nil
		}
		m.overlay = overlaySettings
		m.overlayBody = RenderMarkdown(SettingsMarkdown(data), m.overlayWidth(), m.theme.IsDark)
	}
	return m, nil
}

// applyConfig swaps in a reloaded configuration.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.app.Reconfigure(cfg)
	m.theme = styles.NewTheme(cfg.UI.Theme, m.app.InvertedColors(m.ctx))
	m.theme.SetSize(m.width, m.height)
	m.showKeys = m.app.ShowKeys(m.ctx)
	m.refresh()
	m.message, m.messageErr = "Configuration reloaded", false
}

func (m Model) overlayWidth() int {
	return min(100, max(40, m.width-8))
}

func (m Model) tick() tea.Cmd {
	clock := m.clock
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg(clock())
	})
}

// configChannelMsg wraps a value read from the config update channel.
type configChannelMsg struct {
	cfg *config.Config
}

// waitForConfig blocks on ch and delivers the next configuration.
func waitForConfig(ch <-chan *config.Config) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configChannelMsg{cfg: cfg}
	}
}

func onOff(v bool, on, off string) string {
	if v {
		return on
	}
	return off
}
