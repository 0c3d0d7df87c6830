package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/bnema/chanterm/internal/domain"
	"github.com/bnema/chanterm/internal/ports"
)

// Control asks the terminal loop for something the interpreter cannot
// do itself.
type Control int

const (
	ControlNone Control = iota
	ControlClear
	ControlQuit
)

// Effect is deferred work produced by a dispatch. The terminal loop
// runs it off the update path and feeds the resulting Event back into
// Apply. Effects only touch captured snapshots, never live state.
type Effect func(ctx context.Context) Event

// Outcome is what one Dispatch or Apply call produced.
type Outcome struct {
	Lines   []domain.Line
	Effect  Effect
	Control Control
}

type InterpreterDeps struct {
	Bundler    ports.Bundler
	Directory  ports.Directory
	Wallet     ports.Wallet
	Submitter  *Submitter
	Runtime    ports.RuntimeRepository
	Transcript ports.TranscriptStore
	Clock      ports.Clock
	Log        *zap.Logger
}

// Interpreter is the command state machine behind the terminal. All
// methods must be called from a single goroutine; concurrency lives
// in the Effects it hands out.
type Interpreter struct {
	profile    domain.Profile
	bundler    ports.Bundler
	directory  ports.Directory
	wallet     ports.Wallet
	submitter  *Submitter
	runtime    ports.RuntimeRepository
	transcript ports.TranscriptStore
	clock      ports.Clock
	log        *zap.Logger

	state   domain.SessionState
	pending map[uuid.UUID]domain.PendingOperation
	limiter *rate.Limiter
}

func NewInterpreter(profile domain.Profile, deps InterpreterDeps) *Interpreter {
	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	return &Interpreter{
		profile:    profile,
		bundler:    deps.Bundler,
		directory:  deps.Directory,
		wallet:     deps.Wallet,
		submitter:  deps.Submitter,
		runtime:    deps.Runtime,
		transcript: deps.Transcript,
		clock:      clock,
		log:        log,
		state:      domain.NewSessionState(),
		pending:    map[uuid.UUID]domain.PendingOperation{},
		limiter:    rate.NewLimiter(rate.Every(2*time.Second), 3),
	}
}

// State returns a snapshot of the session for rendering.
func (it *Interpreter) State() domain.SessionState {
	return it.state
}

// PendingCount reports how many operations are still in flight.
func (it *Interpreter) PendingCount() int {
	return len(it.pending)
}

// Prompt renders the input prompt for the current session state.
func (it *Interpreter) Prompt() string {
	if !it.state.IsConnected() {
		return "ct> "
	}

	who := it.state.Username
	if who == "" {
		who = it.state.Account.Short()
	}
	if it.state.Channel != nil {
		return fmt.Sprintf("%s@%s> ", who, domain.DisplayChannelName(it.state.Channel.Name))
	}
	return who + "> "
}

// Dispatch parses one input line, checks its gate, and either answers
// immediately or hands back an Effect for the asynchronous part.
// Input that matches no command is treated as a message to the
// current channel.
func (it *Interpreter) Dispatch(input string) Outcome {
	cmd, ok := domain.ParseCommand(input)
	if !ok {
		return Outcome{}
	}

	spec, found := domain.LookupCommand(cmd.Name)
	if !found {
		return it.dispatchFreeText(cmd)
	}

	if err := it.state.CheckGate(spec.Gate, it.clock.Now()); err != nil {
		return Outcome{Lines: gateLines(err)}
	}

	switch spec.Name {
	case "help":
		return it.dispatchHelp()
	case "man":
		return it.dispatchMan(cmd)
	case "connect":
		return it.dispatchConnect()
	case "disconnect":
		return it.dispatchDisconnect()
	case "whoami":
		return it.dispatchWhoami()
	case "username set":
		return it.dispatchUsername(cmd)
	case "create":
		return it.dispatchCreate(cmd)
	case "join":
		return it.dispatchJoin(cmd)
	case "leave":
		return it.dispatchLeave()
	case "list channels":
		return it.dispatchListChannels()
	case "history":
		return it.dispatchHistory(cmd)
	case "session status":
		return it.dispatchSessionStatus()
	case "session authorize":
		return it.dispatchSessionAuthorize(cmd)
	case "session revoke":
		return it.dispatchSessionRevoke()
	case "clear":
		return Outcome{Control: ControlClear}
	case "quit":
		return Outcome{Lines: []domain.Line{domain.SystemLine("bye")}, Control: ControlQuit}
	}

	return Outcome{Lines: []domain.Line{domain.ErrorLine(fmt.Sprintf("unknown command %q", cmd.Name))}}
}

// Apply feeds a completed Effect back into the state machine. Events
// from a previous session generation are dropped: the state they
// belong to no longer exists.
func (it *Interpreter) Apply(ev Event) Outcome {
	if ev.appliedGeneration() != it.state.Generation {
		it.log.Debug("dropping stale completion",
			zap.Uint64("event_generation", ev.appliedGeneration()),
			zap.Uint64("session_generation", it.state.Generation))
		return Outcome{}
	}

	switch e := ev.(type) {
	case ConnectResult:
		return it.applyConnect(e)
	case SendResult:
		return it.applySend(e)
	case ChannelOpResult:
		return it.applyChannelOp(e)
	case UsernameResult:
		return it.applyUsername(e)
	case SessionOpResult:
		return it.applySessionOp(e)
	case ChannelList:
		return it.applyChannelList(e)
	case HistoryResult:
		return it.applyHistory(e)
	case FeedMessage:
		return it.applyFeedMessage(e)
	case PersistResult:
		if e.Err != nil {
			it.log.Warn("background persistence failed", zap.String("what", e.What), zap.Error(e.Err))
		}
		return Outcome{}
	}

	it.log.Warn("unhandled event", zap.Any("event", ev))
	return Outcome{}
}

// Shutdown persists the session for resumption. The terminal loop
// calls it once before exiting.
func (it *Interpreter) Shutdown(ctx context.Context) {
	if !it.state.IsConnected() {
		return
	}
	if err := it.runtime.Save(ctx, it.runtimeSnapshot()); err != nil {
		it.log.Warn("save runtime on shutdown", zap.Error(err))
	}
}

func (it *Interpreter) runtimeSnapshot() domain.Runtime {
	rt := domain.Runtime{
		Profile:      it.profile.Name,
		Account:      it.state.Account,
		Username:     it.state.Username,
		Delegation:   it.state.Delegation,
		LastSyncedAt: it.clock.Now(),
	}
	if it.state.Channel != nil {
		rt.LastChannel = it.state.Channel.Name
	}
	return rt
}

func (it *Interpreter) dispatchHelp() Outcome {
	lines := []domain.Line{domain.SystemLine("commands:")}
	for _, spec := range domain.Registry() {
		text := fmt.Sprintf("  %-24s %s", spec.Usage, spec.Summary)
		if len(spec.Aliases) > 0 {
			text += fmt.Sprintf(" (alias: %s)", strings.Join(spec.Aliases, ", "))
		}
		lines = append(lines, domain.OutputLine(text))
	}
	lines = append(lines, domain.SystemLine("anything else is sent as a message to the current channel"))
	return Outcome{Lines: lines}
}

func (it *Interpreter) dispatchMan(cmd domain.Command) Outcome {
	if len(cmd.Args) == 0 {
		return usageOutcome("man <command>")
	}

	name := strings.ToLower(strings.Join(cmd.Args, " "))
	spec, ok := domain.LookupCommand(name)
	if !ok {
		return Outcome{Lines: []domain.Line{domain.ErrorLine(fmt.Sprintf("no manual entry for %q", name))}}
	}

	lines := []domain.Line{
		domain.SystemLine(spec.Name),
		domain.OutputLine("  usage: " + spec.Usage),
		domain.OutputLine("  " + spec.Summary),
	}
	if len(spec.Aliases) > 0 {
		lines = append(lines, domain.OutputLine("  aliases: "+strings.Join(spec.Aliases, ", ")))
	}
	if note := gateNote(spec.Gate); note != "" {
		lines = append(lines, domain.InfoLine("  "+note))
	}
	if spec.Network {
		lines = append(lines, domain.InfoLine("  talks to the network; may take a moment"))
	}
	return Outcome{Lines: lines}
}

func (it *Interpreter) dispatchWhoami() Outcome {
	lines := []domain.Line{
		domain.OutputLine("account:  " + it.state.Account.String()),
	}
	if it.state.Username != "" {
		lines = append(lines, domain.OutputLine("username: "+it.state.Username))
	}
	lines = append(lines, domain.OutputLine("profile:  "+string(it.profile.Name)))
	if it.state.Channel != nil {
		lines = append(lines, domain.OutputLine("channel:  "+domain.DisplayChannelName(it.state.Channel.Name)))
	}
	if it.state.Delegation.ActiveAt(it.clock.Now()) {
		lines = append(lines, domain.OutputLine("session:  delegated until "+it.state.Delegation.ExpiresAt.Format(time.RFC3339)))
	}
	return Outcome{Lines: lines}
}

func (it *Interpreter) dispatchSessionStatus() Outcome {
	now := it.clock.Now()
	if !it.state.Delegation.ActiveAt(now) {
		return Outcome{Lines: []domain.Line{
			domain.OutputLine("no delegated session"),
			domain.InfoLine("run 'session authorize [hours]' to send without per-message confirmation"),
		}}
	}

	d := it.state.Delegation
	remaining := d.ExpiresAt.Sub(now).Round(time.Minute)
	lines := []domain.Line{
		domain.OutputLine("delegated session active"),
		domain.OutputLine("  signer:  " + d.Signer.Short()),
		domain.OutputLine(fmt.Sprintf("  expires: %s (%s left)", d.ExpiresAt.Format(time.RFC3339), remaining)),
	}
	if it.state.SessionOpInFlight {
		lines = append(lines, domain.WarningLine("  a session operation is still pending"))
	}
	return Outcome{Lines: lines}
}

func (it *Interpreter) dispatchFreeText(cmd domain.Command) Outcome {
	if !it.state.IsConnected() {
		return Outcome{Lines: []domain.Line{
			domain.ErrorLine("not connected"),
			domain.InfoLine("run 'connect' first, then 'join #channel' to start chatting"),
		}}
	}
	if it.state.Channel == nil {
		return Outcome{Lines: []domain.Line{
			domain.ErrorLine("no channel joined"),
			domain.InfoLine("run 'join #channel' or 'list channels' to find one"),
		}}
	}
	return it.dispatchSend(cmd.Raw)
}

func gateLines(err error) []domain.Line {
	switch {
	case errors.Is(err, domain.ErrNotConnected):
		return []domain.Line{
			domain.ErrorLine("not connected"),
			domain.InfoLine("run 'connect' first"),
		}
	case errors.Is(err, domain.ErrNoChannelJoined):
		return []domain.Line{
			domain.ErrorLine("no channel joined"),
			domain.InfoLine("run 'join #channel' or 'list channels'"),
		}
	case errors.Is(err, domain.ErrNoActiveDelegation):
		return []domain.Line{
			domain.ErrorLine("no active delegated session"),
			domain.InfoLine("run 'session authorize [hours]' first"),
		}
	}
	return []domain.Line{domain.ErrorLine(err.Error())}
}

func gateNote(gate domain.Gate) string {
	switch gate {
	case domain.GateConnected:
		return "requires a connected wallet"
	case domain.GateJoined:
		return "requires a joined channel"
	case domain.GateDelegated:
		return "requires an active delegated session"
	}
	return ""
}

func usageOutcome(usage string) Outcome {
	return Outcome{Lines: []domain.Line{domain.ErrorLine("usage: " + usage)}}
}

func classifiedLines(prefix string, err error) []domain.Line {
	c := domain.Classify(err)
	lines := []domain.Line{domain.ErrorLine(fmt.Sprintf("%s (%s): %v", prefix, c.Kind, err))}
	if advice := c.Kind.Advice(); advice != "" {
		lines = append(lines, domain.InfoLine(advice))
	}
	return lines
}
