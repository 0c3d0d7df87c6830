package cmd

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bnema/chanterm/internal/application"
	"github.com/bnema/chanterm/internal/domain"
	"github.com/bnema/chanterm/internal/ports/mocks"
)

const testChatAccount = domain.Address("0x2222222222222222222222222222222222222222")

type chatModelFixture struct {
	model      chatModel
	bundler    *mocks.MockBundler
	directory  *mocks.MockDirectory
	wallet     *mocks.MockWallet
	runtime    *mocks.MockRuntimeRepository
	transcript *mocks.MockTranscriptStore
}

func newChatModelFixture(t *testing.T) *chatModelFixture {
	t.Helper()

	bundler := mocks.NewMockBundler(t)
	directory := mocks.NewMockDirectory(t)
	wallet := mocks.NewMockWallet(t)
	runtime := mocks.NewMockRuntimeRepository(t)
	transcript := mocks.NewMockTranscriptStore(t)

	profile := domain.Profile{
		Name:         "local",
		ChainID:      "31337",
		BundlerURL:   "http://127.0.0.1:4337",
		DirectoryURL: "http://127.0.0.1:8080",
		EntryPoint:   "0x5ff137d4b0fdcd49dca30c7cf57e578a026d2789",
		Registry:     "0x0576a174d229e3cfa37253523e645a78a0c91b57",
	}

	interpreter := application.NewInterpreter(profile, application.InterpreterDeps{
		Bundler:    bundler,
		Directory:  directory,
		Wallet:     wallet,
		Submitter:  application.NewSubmitter(bundler, wallet, nil, nil, application.SubmitterConfig{}),
		Runtime:    runtime,
		Transcript: transcript,
	})

	model := newChatModel(context.Background(), chatSession{
		profile:     profile,
		interpreter: interpreter,
		transcript:  transcript,
		log:         zap.NewNop(),
	})

	sized, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	return &chatModelFixture{
		model:      sized.(chatModel),
		bundler:    bundler,
		directory:  directory,
		wallet:     wallet,
		runtime:    runtime,
		transcript: transcript,
	}
}

// submitLine types one input line and presses enter, the way the
// terminal loop would deliver it.
func (f *chatModelFixture) submitLine(t *testing.T, input string) tea.Cmd {
	t.Helper()

	next, _ := f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(input)})
	f.model = next.(chatModel)

	next, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	f.model = next.(chatModel)
	return cmd
}

// drainCmds runs the interpreter-facing messages a command produces
// back through Update, standing in for the bubbletea runtime. UI
// chatter like blink and spinner ticks is dropped so the drain
// terminates.
func (f *chatModelFixture) drainCmds(cmd tea.Cmd) {
	if cmd == nil {
		return
	}

	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			f.drainCmds(c)
		}
	case effectMsg, feedEventMsg, feedClosedMsg, replayMsg:
		next, nextCmd := f.model.Update(msg)
		f.model = next.(chatModel)
		f.drainCmds(nextCmd)
	}
}

func TestChatModelShowsBannerAndPrompt(t *testing.T) {
	f := newChatModelFixture(t)

	view := f.model.View()
	assert.Contains(t, view, "chanterm session on profile local")
	assert.Contains(t, view, "type 'connect' to begin")
	assert.Contains(t, view, "ct>")
}

func TestChatModelDispatchesHelp(t *testing.T) {
	f := newChatModelFixture(t)

	f.submitLine(t, "help")

	view := f.model.View()
	assert.Contains(t, view, "commands:")
	assert.Contains(t, view, "join #channel")
}

func TestChatModelIgnoresBlankInput(t *testing.T) {
	f := newChatModelFixture(t)
	before := len(f.model.lines)

	cmd := f.submitLine(t, "   ")

	assert.Nil(t, cmd)
	assert.Len(t, f.model.lines, before)
}

func TestChatModelShowsSpinnerWhileConnecting(t *testing.T) {
	f := newChatModelFixture(t)

	cmd := f.submitLine(t, "connect")

	require.NotNil(t, cmd)
	assert.Equal(t, 1, f.model.busy)
	assert.Contains(t, f.model.View(), "waiting on the network")
}

func TestChatModelConnectFlowThroughEffects(t *testing.T) {
	f := newChatModelFixture(t)
	f.wallet.EXPECT().Address(mock.Anything).Return(testChatAccount, nil)
	f.bundler.EXPECT().ChainID(mock.Anything).Return("31337", nil)
	f.directory.EXPECT().ResolveName(mock.Anything, testChatAccount).Return("alice", nil)
	f.runtime.EXPECT().GetByProfile(mock.Anything, domain.ProfileName("local")).
		Return(domain.Runtime{}, domain.ErrRuntimeNotFound)

	f.drainCmds(f.submitLine(t, "connect"))

	assert.Equal(t, 0, f.model.busy)
	view := f.model.View()
	assert.Contains(t, view, "connected as")
	assert.Contains(t, view, "signed in as alice")
	assert.Contains(t, view, "alice>")
}

func TestChatModelConnectFailureStaysDisconnected(t *testing.T) {
	f := newChatModelFixture(t)
	f.wallet.EXPECT().Address(mock.Anything).Return(testChatAccount, nil)
	f.bundler.EXPECT().ChainID(mock.Anything).Return("1", nil)

	f.drainCmds(f.submitLine(t, "connect"))

	view := f.model.View()
	assert.Contains(t, view, "connect failed")
	assert.Contains(t, view, "ct>")
}

func TestChatModelClearResetsScrollback(t *testing.T) {
	f := newChatModelFixture(t)

	f.submitLine(t, "help")
	require.NotEmpty(t, f.model.lines)

	f.submitLine(t, "clear")

	assert.Empty(t, f.model.lines)
	assert.NotContains(t, f.model.View(), "commands:")
}

func TestChatModelQuitCommandEndsProgram(t *testing.T) {
	f := newChatModelFixture(t)

	cmd := f.submitLine(t, "quit")

	require.NotNil(t, cmd)
	assert.True(t, f.model.quitting)
	assert.Equal(t, "", f.model.View())
	assert.True(t, strings.Contains(strings.Join(f.model.lines, "\n"), "bye"))
}

func TestChatModelCtrlCQuits(t *testing.T) {
	f := newChatModelFixture(t)

	next, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	f.model = next.(chatModel)

	require.NotNil(t, cmd)
	assert.True(t, f.model.quitting)
	assert.Equal(t, "", f.model.View())
}
