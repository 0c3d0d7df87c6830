package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/bnema/chanterm/internal/adapters/render/term"
	"github.com/bnema/chanterm/internal/application"
	"github.com/bnema/chanterm/internal/domain"
	"github.com/bnema/chanterm/internal/ports"
)

// replayLimit caps how much cached transcript is shown when entering
// a channel.
const replayLimit = 20

const chatChromeHeight = 3

type effectMsg struct {
	ev application.Event
}

type feedEventMsg struct {
	ev application.FeedMessage
}

type feedClosedMsg struct {
	channelID string
}

type replayMsg struct {
	channelID string
	messages  []domain.Message
	err       error
}

// feedSub is one live websocket subscription. Its channel closes when
// cancel runs.
type feedSub struct {
	channelID  string
	generation uint64
	cancel     context.CancelFunc
	ch         <-chan domain.Message
}

type chatSession struct {
	profile     domain.Profile
	interpreter *application.Interpreter
	feed        ports.Feed
	transcript  ports.TranscriptStore
	log         *zap.Logger
}

type chatStyles struct {
	header lipgloss.Style
	status lipgloss.Style
}

func newChatStyles() chatStyles {
	return chatStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// chatModel drives the interactive session. Dispatches and applies
// run on the bubbletea update loop; the interpreter's Effects run as
// tea.Cmds and come back as effectMsg.
type chatModel struct {
	ctx         context.Context
	profile     domain.Profile
	interpreter *application.Interpreter
	feed        ports.Feed
	transcript  ports.TranscriptStore
	formatter   term.Formatter
	styles      chatStyles
	log         *zap.Logger

	viewport  viewport.Model
	textinput textinput.Model
	spinner   spinner.Model

	lines []string
	busy  int

	// activeChannelID is the channel the feed and replay follow; it
	// trails the interpreter state by one applyOutcome.
	activeChannelID string
	sub             *feedSub

	width    int
	height   int
	ready    bool
	quitting bool
}

func newChatModel(ctx context.Context, session chatSession) chatModel {
	formatter := term.NewFormatter()

	ti := textinput.New()
	ti.Prompt = session.interpreter.Prompt()
	ti.CharLimit = 512
	ti.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	lines := []string{
		formatter.Line(domain.SystemLine(fmt.Sprintf("chanterm session on profile %s (chain %s)", session.profile.Name, session.profile.ChainID))),
		formatter.Line(domain.InfoLine("type 'connect' to begin, 'help' lists commands")),
	}

	return chatModel{
		ctx:         ctx,
		profile:     session.profile,
		interpreter: session.interpreter,
		feed:        session.feed,
		transcript:  session.transcript,
		formatter:   formatter,
		styles:      newChatStyles(),
		log:         session.log,
		viewport:    viewport.New(80, 20),
		textinput:   ti,
		spinner:     sp,
		lines:       lines,
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chatChromeHeight)
		m.ready = true
		m.layoutInput()
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if m.busy == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case effectMsg:
		m.busy--
		return m.applyOutcome(m.interpreter.Apply(msg.ev))

	case feedEventMsg:
		model, cmd := m.applyOutcome(m.interpreter.Apply(msg.ev))
		if model.sub != nil {
			return model, tea.Batch(cmd, waitFeed(model.sub))
		}
		return model, cmd

	case feedClosedMsg:
		if m.sub != nil && m.sub.channelID == msg.channelID {
			m.sub = nil
		}
		return m, nil

	case replayMsg:
		return m.applyReplay(msg), nil
	}

	return m, nil
}

func (m chatModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "enter":
		input := m.textinput.Value()
		m.textinput.Reset()
		if strings.TrimSpace(input) == "" {
			return m, nil
		}
		return m.applyOutcome(m.interpreter.Dispatch(input))
	case "up", "down", "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.textinput, cmd = m.textinput.Update(msg)
		return m, cmd
	}
}

// applyOutcome folds one Dispatch or Apply result into the view:
// lines onto the scrollback, the effect onto the runtime, controls
// onto the program.
func (m chatModel) applyOutcome(outcome application.Outcome) (chatModel, tea.Cmd) {
	var cmds []tea.Cmd

	for _, line := range outcome.Lines {
		m.lines = append(m.lines, m.formatter.Line(line))
	}

	if outcome.Effect != nil {
		if m.busy == 0 {
			cmds = append(cmds, m.spinner.Tick)
		}
		m.busy++
		cmds = append(cmds, m.runEffect(outcome.Effect))
	}

	if outcome.Control == application.ControlClear {
		m.lines = nil
	}

	m = m.syncChannel(&cmds)
	m.textinput.Prompt = m.interpreter.Prompt()
	m.layoutInput()
	m.refreshViewport()

	if outcome.Control == application.ControlQuit {
		model, quitCmd := m.quit()
		cmds = append(cmds, quitCmd)
		return model, tea.Batch(cmds...)
	}

	return m, tea.Batch(cmds...)
}

// syncChannel keeps the feed subscription and transcript replay in
// step with the interpreter's active channel.
func (m chatModel) syncChannel(cmds *[]tea.Cmd) chatModel {
	state := m.interpreter.State()

	want := ""
	if state.IsConnected() && state.Channel != nil {
		want = state.Channel.ID
	}
	if want == m.activeChannelID {
		return m
	}

	if m.sub != nil {
		m.sub.cancel()
		m.sub = nil
	}
	m.activeChannelID = want
	if want == "" {
		return m
	}

	*cmds = append(*cmds, m.replayTranscript(want))

	if m.feed == nil {
		m.log.Debug("no feed url configured, messages arrive via 'history' only")
		return m
	}

	ctx, cancel := context.WithCancel(m.ctx)
	ch, err := m.feed.Subscribe(ctx, want)
	if err != nil {
		cancel()
		m.log.Warn("subscribe feed", zap.String("channel", want), zap.Error(err))
		m.lines = append(m.lines, m.formatter.Line(domain.WarningLine("live feed unavailable: "+err.Error())))
		return m
	}

	m.sub = &feedSub{channelID: want, generation: state.Generation, cancel: cancel, ch: ch}
	*cmds = append(*cmds, waitFeed(m.sub))
	return m
}

func (m chatModel) applyReplay(msg replayMsg) chatModel {
	if msg.channelID != m.activeChannelID {
		return m
	}
	if msg.err != nil {
		m.log.Warn("replay transcript", zap.Error(msg.err))
		return m
	}
	if len(msg.messages) == 0 {
		return m
	}

	self := m.interpreter.State().Account
	m.lines = append(m.lines, m.formatter.Line(domain.InfoLine(fmt.Sprintf("%d cached messages:", len(msg.messages)))))
	for _, cached := range msg.messages {
		m.lines = append(m.lines, m.formatter.Message(cached, self))
	}
	m.refreshViewport()
	return m
}

func (m chatModel) quit() (chatModel, tea.Cmd) {
	m.quitting = true
	if m.sub != nil {
		m.sub.cancel()
		m.sub = nil
	}
	m.interpreter.Shutdown(m.ctx)
	return m, tea.Quit
}

func (m chatModel) runEffect(effect application.Effect) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return effectMsg{ev: effect(ctx)}
	}
}

func (m chatModel) replayTranscript(channelID string) tea.Cmd {
	ctx := m.ctx
	store := m.transcript
	return func() tea.Msg {
		messages, err := store.Recent(ctx, channelID, replayLimit)
		return replayMsg{channelID: channelID, messages: messages, err: err}
	}
}

func waitFeed(sub *feedSub) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-sub.ch
		if !ok {
			return feedClosedMsg{channelID: sub.channelID}
		}
		return feedEventMsg{ev: application.FeedMessage{Generation: sub.generation, Message: msg}}
	}
}

func (m *chatModel) refreshViewport() {
	if !m.ready {
		return
	}
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	if atBottom {
		m.viewport.GotoBottom()
	}
}

func (m *chatModel) layoutInput() {
	if m.width == 0 {
		return
	}
	w := m.width - lipgloss.Width(m.textinput.Prompt) - 1
	if w < 20 {
		w = 20
	}
	m.textinput.Width = w
}

func (m chatModel) headerText() string {
	parts := []string{"chanterm", string(m.profile.Name)}
	state := m.interpreter.State()
	if state.Channel != nil {
		parts = append(parts, domain.DisplayChannelName(state.Channel.Name))
	}
	return " " + strings.Join(parts, " · ")
}

func (m chatModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "starting..."
	}

	status := ""
	if m.busy > 0 {
		status = m.spinner.View() + " waiting on the network"
		if n := m.interpreter.PendingCount(); n > 0 {
			status = fmt.Sprintf("%s (%d operations in flight)", status, n)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.header.Render(m.headerText()),
		m.viewport.View(),
		m.styles.status.Render(status),
		m.textinput.View(),
	)
}
