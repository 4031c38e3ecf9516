// Package app wires the game session, score store and UI components into the
// Bubbletea program.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/vimarcade/internal/config"
	"github.com/willibrandon/vimarcade/internal/engine"
	"github.com/willibrandon/vimarcade/internal/game"
	"github.com/willibrandon/vimarcade/internal/logger"
	"github.com/willibrandon/vimarcade/internal/quiz"
	"github.com/willibrandon/vimarcade/internal/storage"
	"github.com/willibrandon/vimarcade/internal/ui"
	"github.com/willibrandon/vimarcade/internal/ui/components"
	"github.com/willibrandon/vimarcade/internal/ui/styles"
)

// Screen is the top-level view being shown.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenPlaying
	ScreenGameOver
)

// Model represents the main Bubbletea application model
type Model struct {
	// Configuration
	config *config.Config
	bank   *quiz.Bank

	// Score store, nil until opened or when saving is disabled
	store    storage.Store
	storeErr error

	// UI state
	width  int
	height int
	screen Screen

	// Keyboard bindings
	keys   ui.KeyMap
	footer help.Model

	// Game state
	session  *game.Session
	debounce *game.Debouncer
	gameNo   uint64
	lastTick time.Time
	player   string
	best     int

	// UI components
	input       textinput.Model
	welcome     *components.Welcome
	banner      *components.QuestionBanner
	bufferView  *components.BufferView
	countdown   *components.Countdown
	statusBar   *components.StatusBar
	gameOver    *components.GameOverDialog
	leaderboard *components.Leaderboard
	helpText    *components.HelpText
	inspector   *components.Inspector

	// Application state
	helpVisible bool
	quitting    bool
	ready       bool
}

// New creates a new application model. When cfg names a player the first
// game starts right away; otherwise the welcome screen asks for a name.
func New(cfg *config.Config, bank *quiz.Bank) *Model {
	reg := engine.NewRegister()
	if cfg.UI.Clipboard {
		ui.NewClipboardWriter().Mirror(reg)
	}

	input := textinput.New()
	input.Prompt = ": "
	input.PromptStyle = styles.InputPromptStyle
	input.Placeholder = "type a command"
	input.CharLimit = 32

	statusBar := components.NewStatusBar()
	statusBar.SetStorage(cfg.Storage.Driver, false)

	m := &Model{
		config: cfg,
		bank:   bank,
		keys:   ui.DefaultKeyMap(),
		footer: help.New(),
		session: game.NewSession(game.Options{
			Duration:       cfg.Game.Duration,
			HintTrigger:    cfg.Game.HintTrigger,
			SampleText:     cfg.Game.SampleText,
			TimeoutPenalty: cfg.Game.TimeoutPenalty,
			Register:       reg,
		}),
		debounce:    &game.Debouncer{},
		player:      cfg.Player.Username,
		input:       input,
		welcome:     components.NewWelcome(cfg.Player.Username),
		banner:      components.NewQuestionBanner(),
		bufferView:  components.NewBufferView(),
		countdown:   components.NewCountdown(),
		statusBar:   statusBar,
		gameOver:    components.NewGameOverDialog(),
		leaderboard: components.NewLeaderboard(),
		helpText:    components.NewHelp(cfg.Game.HintTrigger),
		inspector:   components.NewInspector(),
	}
	m.gameOver.SetHelp(m.footer.ShortHelpView(m.keys.GameOverHelp()))
	m.inspector.SetSession(m.session)

	if m.player != "" {
		m.statusBar.SetPlayer(m.player, 0)
		m.startGame()
	}
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{openStore(m.config), textinput.Blink}
	if m.screen == ScreenPlaying {
		cmds = append(cmds, tick(m.gameNo))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		return m, nil

	case StoreOpenedMsg:
		m.store = msg.Store
		m.storeErr = nil
		if m.store == nil {
			m.statusBar.SetStorage("scores off", false)
			return m, nil
		}
		m.statusBar.SetStorage(m.config.Storage.Driver, false)
		if m.player != "" {
			return m, loadPlayer(m.store, m.config.Storage.Timeout, m.player)
		}
		return m, nil

	case StoreFailedMsg:
		m.storeErr = msg.Err
		m.statusBar.SetStorage(m.config.Storage.Driver, true)
		return m, nil

	case ui.PlayerMsg:
		if msg.Err != nil {
			if !errors.Is(msg.Err, storage.ErrPlayerNotFound) {
				logger.Warn("failed to load player", "player", m.player, "error", msg.Err)
			}
			return m, nil
		}
		m.best = max(m.best, msg.Record.HighestScore)
		m.statusBar.SetPlayer(m.player, m.best)
		return m, nil

	case ui.TickMsg:
		if msg.Game != m.gameNo || m.screen != ScreenPlaying {
			return m, nil
		}
		elapsed := msg.At.Sub(m.lastTick)
		m.lastTick = msg.At
		if m.session.Tick(elapsed) {
			m.refresh()
			return m, m.finishGame()
		}
		m.refresh()
		return m, tick(m.gameNo)

	case ui.DebounceMsg:
		if msg.Game != m.gameNo || !m.debounce.Current(msg.Gen) {
			return m, nil
		}
		return m, m.submit(m.input.Value())

	case ui.AdvanceMsg:
		if msg.Game == m.gameNo && m.session.Advance() {
			m.input.Reset()
			m.refresh()
		}
		return m, nil

	case ui.FeedbackExpiredMsg:
		if msg.Game == m.gameNo {
			m.session.ClearFeedback(msg.Feedback)
			m.refresh()
		}
		return m, nil

	case ui.GameSavedMsg:
		if msg.Err != nil {
			m.gameOver.SetSaveError(Headline(FormatStorageError(msg.Err)))
			return m, nil
		}
		m.gameOver.SetSaved(msg.Record)
		m.best = max(m.best, msg.Record.HighestScore)
		m.statusBar.SetPlayer(m.player, m.best)
		return m, nil

	case ui.LeaderboardMsg:
		if msg.Err != nil {
			m.leaderboard.SetError(Headline(FormatStorageError(msg.Err)))
			return m, nil
		}
		m.leaderboard.SetPlayers(msg.Players)
		m.leaderboard.SetSize(m.width, m.height)
		return m, nil

	case spinner.TickMsg:
		return m, m.gameOver.Update(msg)
	}

	// Cursor blink and other input housekeeping
	var cmd tea.Cmd
	switch m.screen {
	case ScreenWelcome:
		_, _, cmd = m.welcome.Update(msg)
	case ScreenPlaying:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Check for quit
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inspector.IsVisible() {
		return m, m.inspector.Update(msg)
	}

	// Help swallows every key until it is closed
	if m.helpVisible {
		if key.Matches(msg, m.keys.Help, m.keys.Close) {
			m.helpVisible = false
		}
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) {
		m.helpVisible = true
		return m, nil
	}
	if msg.String() == "f2" && m.config.Debug {
		m.inspector.Show()
		return m, nil
	}

	switch m.screen {
	case ScreenWelcome:
		name, ok, cmd := m.welcome.Update(msg)
		if !ok {
			return m, cmd
		}
		m.player = name
		m.statusBar.SetPlayer(name, 0)
		cmds := []tea.Cmd{m.startGame()}
		if m.store != nil {
			cmds = append(cmds, loadPlayer(m.store, m.config.Storage.Timeout, name))
		}
		return m, tea.Batch(cmds...)

	case ScreenPlaying:
		return m.handlePlayingKey(msg)

	case ScreenGameOver:
		return m.handleGameOverKey(msg)
	}
	return m, nil
}

func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit(m.input.Value())
	case key.Matches(msg, m.keys.Clear):
		m.debounce.Cancel()
		m.input.Reset()
		return m, nil
	case key.Matches(msg, m.keys.Hint):
		return m, m.submit(m.config.Game.HintTrigger)
	}

	// Typing is ignored while a correct answer is on display
	if m.session.Phase() != game.PhasePlaying {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before || m.config.Game.Debounce <= 0 {
		return m, cmd
	}
	gen := m.debounce.Bump()
	return m, tea.Batch(cmd, debounce(m.gameNo, gen, m.config.Game.Debounce))
}

func (m Model) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.leaderboard.IsVisible() {
		if key.Matches(msg, m.keys.Close, m.keys.Leave) {
			m.leaderboard.Hide()
			return m, nil
		}
		return m, m.leaderboard.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Restart):
		return m, m.startGame()

	case key.Matches(msg, m.keys.Scores):
		m.leaderboard.Show(m.player)
		m.leaderboard.SetSize(m.width, m.height)
		if m.store == nil {
			m.leaderboard.SetError("Scores are not being saved in this session.")
			return m, nil
		}
		return m, loadLeaderboard(m.store, m.config.Storage.Timeout, m.config.UI.LeaderboardSize)

	case key.Matches(msg, m.keys.Leave):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// startGame draws a fresh question set and starts the clock.
func (m *Model) startGame() tea.Cmd {
	questions := m.bank.PickRandom(m.config.Game.QuestionCount)
	if err := m.session.Start(questions); err != nil {
		logger.Error("failed to start game", "error", err)
		return nil
	}

	m.gameNo++
	m.debounce.Cancel()
	m.lastTick = time.Now()
	m.screen = ScreenPlaying
	m.gameOver.Hide()
	m.leaderboard.Hide()
	m.input.Reset()
	m.input.Focus()
	m.refresh()

	logger.Info("game started",
		"player", m.player,
		"game", m.gameNo,
		"questions", len(questions),
		"duration", m.config.Game.Duration,
	)
	return tick(m.gameNo)
}

// submit checks value against the current question and schedules whatever
// follows: a hint flash or the pause before the next question.
func (m *Model) submit(value string) tea.Cmd {
	q, _ := m.session.Question()
	out := m.session.Submit(value)
	if out.Ignored {
		return nil
	}

	m.debounce.Cancel()
	m.input.Reset()
	m.refresh()

	switch {
	case out.Hint:
		logger.Debug("hint shown", "question", q.ID)
		return expireFeedback(m.gameNo, game.FeedbackHint, m.config.Game.HintFlash)
	case out.Correct:
		logger.Debug("correct answer", "question", q.ID, "input", value, "points", out.Points)
		return advanceAfter(m.gameNo, m.config.Game.AdvanceDelay)
	default:
		logger.Debug("wrong answer", "question", q.ID, "input", value, "command", out.Result.Command)
		return nil
	}
}

// finishGame shows the game over dialog and saves the result.
func (m *Model) finishGame() tea.Cmd {
	m.debounce.Cancel()
	m.input.Blur()
	m.screen = ScreenGameOver

	summary := m.session.Summary()
	logger.Info("game over",
		"player", m.player,
		"game", m.gameNo,
		"score", summary.Score,
		"answered", summary.Answered,
		"correct", summary.Correct,
		"hints", summary.Hints,
		"avg_response", summary.AvgResponse,
	)

	save := m.store != nil && m.player != ""
	cmd := m.gameOver.Show(m.player, summary, save)
	if !save {
		if m.storeErr != nil {
			m.gameOver.SetSaveError("Not saved: " + Headline(FormatStorageError(m.storeErr)))
		}
		return cmd
	}

	result := storage.GameResult{
		Username:    m.player,
		Score:       summary.Score,
		Answered:    summary.Answered,
		Correct:     summary.Correct,
		Hints:       summary.Hints,
		AvgResponse: summary.AvgResponse,
	}
	return tea.Batch(cmd, recordGame(m.store, m.config.Storage.Timeout, result))
}

// refresh copies session state into the components.
func (m *Model) refresh() {
	if q, ok := m.session.Question(); ok {
		m.banner.SetQuestion(q.Prompt, string(q.Category), m.session.QuestionNumber(), m.session.QuestionCount())
	}
	m.banner.SetHint(m.session.Hint())
	m.bufferView.SetBuffer(m.session.Buffer())
	m.bufferView.SetLastCommand(m.session.LastCommand())
	m.countdown.SetTime(m.session.TimeLeft(), m.session.Duration())
	m.countdown.SetPaused(m.session.Phase() == game.PhaseAdvancing)
	m.statusBar.SetScore(m.session.Score(), m.session.Summary().Correct)
}

// layout sizes the components for the current window.
func (m *Model) layout() {
	w, h := m.width, m.height
	m.statusBar.SetSize(w)
	m.countdown.SetSize(w)
	m.banner.SetSize(w)
	// status, countdown, banner, input box, feedback, footer
	m.bufferView.SetSize(w, max(4, h-15))
	m.input.Width = max(10, w-8)
	m.footer.Width = w
	m.welcome.SetSize(w, h)
	m.gameOver.SetSize(w, h)
	m.leaderboard.SetSize(w, h)
	m.helpText.SetSize(w, h)
	m.inspector.SetSize(w, h)
}

// View renders the application UI
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if !m.ready {
		return "Initializing..."
	}

	if m.inspector.IsVisible() {
		return m.inspector.View()
	}
	if m.helpVisible {
		return m.helpText.View()
	}

	switch m.screen {
	case ScreenWelcome:
		return m.welcome.View()
	case ScreenGameOver:
		if m.leaderboard.IsVisible() {
			return m.leaderboard.View()
		}
		return m.gameOver.View()
	default:
		return m.renderGame()
	}
}

// renderGame renders the playing screen
func (m Model) renderGame() string {
	parts := []string{
		m.statusBar.View(),
		m.countdown.View(),
		m.banner.View(),
		m.bufferView.View(),
		styles.InputStyle.Width(max(12, m.width-2)).Render(m.input.View()),
		components.RenderFeedback(m.session.Feedback(), m.session.HintUsed()),
	}
	if m.storeErr != nil {
		parts = append(parts, styles.WarningStyle.Render(
			fmt.Sprintf("Scores won't be saved: %s", Headline(FormatStorageError(m.storeErr)))))
	}
	parts = append(parts, styles.FooterStyle.Render(m.footer.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Screen returns the current top-level screen.
func (m Model) Screen() Screen {
	return m.screen
}

// Session returns the game session being played.
func (m Model) Session() *game.Session {
	return m.session
}

// Cleanup performs cleanup operations before the application exits
func (m Model) Cleanup() {
	if m.store != nil {
		if err := m.store.Close(); err != nil {
			logger.Warn("failed to close score store", "error", err)
		}
	}
}
