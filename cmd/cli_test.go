package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqlitehistory "github.com/bnema/chanterm/internal/adapters/history/sqlite"
	"github.com/bnema/chanterm/internal/domain"
)

func TestVersionCommandPrintsVersion(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestUnknownCommandFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"frobnicate\"")
}

func TestProfileSetRequiresEndpointFlags(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "profile", "set", "local")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s)")
	assert.Contains(t, err.Error(), "bundler-url")
}

func TestProfileSetThenShow(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home,
		"profile", "set", "local",
		"--chain-id", "31337",
		"--bundler-url", "http://localhost:4337/rpc",
		"--directory-url", "http://localhost:8080",
		"--feed-url", "ws://localhost:8080/feed",
		"--entrypoint", "0x5ff137d4b0fdcd49dca30c7cf57e578a026d2789",
		"--registry", "0x1111111111111111111111111111111111111111",
	)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "profile", "show", "local")
	require.NoError(t, err)
	assert.Contains(t, stdout, "name:       local")
	assert.Contains(t, stdout, "chain:      31337")
	assert.Contains(t, stdout, "bundler:    http://localhost:4337/rpc")
	assert.Contains(t, stdout, "feed:       ws://localhost:8080/feed")
}

func TestProfileSetRejectsMalformedAddress(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home,
		"profile", "set", "local",
		"--chain-id", "31337",
		"--bundler-url", "http://localhost:4337/rpc",
		"--directory-url", "http://localhost:8080",
		"--entrypoint", "not-an-address",
		"--registry", "0x1111111111111111111111111111111111111111",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse entrypoint")
}

func TestProfileShowJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home, profileFixture{name: "local"}))

	stdout, _, err := executeCLI(t, home, "profile", "show", "local", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Name\": \"local\"")
	assert.Contains(t, stdout, "\"ChainID\": \"31337\"")
}

func TestProfileShowUnknownProfileFails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home, profileFixture{name: "local"}))

	_, _, err := executeCLI(t, home, "profile", "show", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile not found")
}

func TestProfileListMarksActiveProfile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home,
		profileFixture{name: "local"},
		profileFixture{name: "testnet", chainID: "11155111"},
	))

	stdout, _, err := executeCLI(t, home, "profile", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "* local")
	assert.Contains(t, stdout, "  testnet")
	assert.Contains(t, stdout, "chain 11155111")
}

func TestProfileUseSwitchesDefault(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home,
		profileFixture{name: "local"},
		profileFixture{name: "testnet", chainID: "11155111"},
	))

	stdout, _, err := executeCLI(t, home, "profile", "use", "testnet")
	require.NoError(t, err)
	assert.Contains(t, stdout, "active profile is now testnet")

	stdout, _, err = executeCLI(t, home, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "name:       testnet")
}

func TestProfileUseRejectsUnknownProfile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home, profileFixture{name: "local"}))

	_, _, err := executeCLI(t, home, "profile", "use", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile not found")
}

func TestProfileRmRemovesProfileAndRuntime(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home,
		profileFixture{name: "local"},
		profileFixture{name: "testnet", chainID: "11155111"},
	))
	require.NoError(t, writeRuntimeFixture(home, "testnet"))

	_, _, err := executeCLI(t, home, "profile", "rm", "testnet")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "profile", "list")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "testnet")

	runtimeData, err := os.ReadFile(filepath.Join(home, ".config", "chanterm", "runtime.toml"))
	require.NoError(t, err)
	assert.NotContains(t, string(runtimeData), "testnet")

	_, _, err = executeCLI(t, home, "profile", "rm", "testnet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile not found")
}

func TestChannelsRendersDirectoryListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/channels", r.URL.Path)
		_, _ = fmt.Fprint(w, `{"channels":[
			{"id":"chan-1","name":"general","creator":"0x1111111111111111111111111111111111111111"},
			{"id":"chan-2","name":"dev-talk","creator":"0x2222222222222222222222222222222222222222"}
		]}`)
	}))
	defer server.Close()

	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home, profileFixture{name: "local", directoryURL: server.URL}))

	stdout, _, err := executeCLI(t, home, "channels")
	require.NoError(t, err)
	assert.Contains(t, stdout, "channels: 2")
	assert.Contains(t, stdout, "#general")
	assert.Contains(t, stdout, "#dev-talk")
}

func TestChannelsJSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"channels":[{"id":"chan-1","name":"general","creator":"0x1111111111111111111111111111111111111111"}]}`)
	}))
	defer server.Close()

	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home, profileFixture{name: "local", directoryURL: server.URL}))

	stdout, _, err := executeCLI(t, home, "channels", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Name\": \"general\"")
	assert.Contains(t, stdout, "\"ID\": \"chan-1\"")
}

func TestChannelsShowsSpinnerLabelOnStderr(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = fmt.Fprint(w, `{"channels":[]}`)
	}))
	defer server.Close()

	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home, profileFixture{name: "local", directoryURL: server.URL}))

	_, stderr, err := executeCLI(t, home, "channels")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Fetching channels")
}

func TestChannelsReturnsDirectoryError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home, profileFixture{name: "local", directoryURL: server.URL}))

	_, _, err := executeCLI(t, home, "channels")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list channels")
}

func TestDoctorReportsHealthyServices(t *testing.T) {
	bundler := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     uint64 `json:"id"`
			Method string `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "eth_chainId", req.Method)
		_, _ = fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":"0x7a69"}`, req.ID)
	}))
	defer bundler.Close()

	directory := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"channels":[{"id":"chan-1","name":"general","creator":"0x1111111111111111111111111111111111111111"}]}`)
	}))
	defer directory.Close()

	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home, profileFixture{
		name:         "local",
		bundlerURL:   bundler.URL,
		directoryURL: directory.URL,
	}))

	stdout, _, err := executeCLI(t, home, "doctor")
	require.NoError(t, err)
	assert.Contains(t, stdout, "profile")
	assert.Contains(t, stdout, "bundler")
	assert.Contains(t, stdout, "1 channels")
	assert.Contains(t, stdout, "no owner key yet")
	assert.NotContains(t, stdout, "FAIL")
}

func TestDoctorFailsOnChainMismatch(t *testing.T) {
	bundler := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID uint64 `json:"id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_, _ = fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":"0x1"}`, req.ID)
	}))
	defer bundler.Close()

	directory := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"channels":[]}`)
	}))
	defer directory.Close()

	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home, profileFixture{
		name:         "local",
		bundlerURL:   bundler.URL,
		directoryURL: directory.URL,
	}))

	stdout, _, err := executeCLI(t, home, "doctor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doctor found problems")
	assert.Contains(t, stdout, "FAIL")
	assert.Contains(t, stdout, "reports chain 1, profile expects 31337")
}

func TestManRendersCommandPage(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "man", "join")
	require.NoError(t, err)
	assert.Contains(t, stdout, "join #channel")
	assert.Contains(t, stdout, "connected wallet")
}

func TestManRendersIndexWithoutArguments(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "man")
	require.NoError(t, err)
	assert.Contains(t, stdout, "session commands")
	assert.Contains(t, stdout, "session authorize")
}

func TestManUnknownCommandFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "man", "frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no manual entry for \"frobnicate\"")
}

func TestTailFetchesDirectoryMessages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/channels/general":
			_, _ = fmt.Fprint(w, `{"id":"chan-1","name":"general","creator":"0x1111111111111111111111111111111111111111"}`)
		case "/v1/channels/chan-1/messages":
			_, _ = fmt.Fprint(w, `{"messages":[
				{"channel":"chan-1","author":"0x2222222222222222222222222222222222222222","author_name":"alice","body":"newest","sent_at":"2026-02-10T12:01:00Z"},
				{"channel":"chan-1","author":"0x2222222222222222222222222222222222222222","author_name":"alice","body":"oldest","sent_at":"2026-02-10T12:00:00Z"}
			]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home, profileFixture{name: "local", directoryURL: server.URL}))

	stdout, _, err := executeCLI(t, home, "tail", "#general")
	require.NoError(t, err)
	assert.Contains(t, stdout, "alice")
	assert.Contains(t, stdout, "oldest")
	assert.Contains(t, stdout, "newest")
	assert.Less(t, strings.Index(stdout, "oldest"), strings.Index(stdout, "newest"))
}

func TestTailFallsBackToCachedTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/channels/general":
			_, _ = fmt.Fprint(w, `{"id":"chan-1","name":"general","creator":"0x1111111111111111111111111111111111111111"}`)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home, profileFixture{name: "local", directoryURL: server.URL}))
	require.NoError(t, seedTranscriptFixture(home, "chan-1", "hello from the cache"))

	stdout, stderr, err := executeCLI(t, home, "tail", "#general")
	require.NoError(t, err)
	assert.Contains(t, stderr, "cached transcript")
	assert.Contains(t, stdout, "hello from the cache")
}

func TestTailRejectsInvalidCount(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeProfilesFixture(home, profileFixture{name: "local"}))

	_, _, err := executeCLI(t, home, "tail", "#general", "--count", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count must be between 1 and 200")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

type profileFixture struct {
	name         string
	chainID      string
	bundlerURL   string
	directoryURL string
}

func writeProfilesFixture(home string, profiles ...profileFixture) error {
	configDir := filepath.Join(home, ".config", "chanterm")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("version = 1\n")
	for _, p := range profiles {
		if p.chainID == "" {
			p.chainID = "31337"
		}
		if p.bundlerURL == "" {
			p.bundlerURL = "http://localhost:4337/rpc"
		}
		if p.directoryURL == "" {
			p.directoryURL = "http://localhost:8080"
		}
		fmt.Fprintf(&b, `
[[profiles]]
name = %q
chain_id = %q
bundler_url = %q
directory_url = %q
entrypoint = "0x5ff137d4b0fdcd49dca30c7cf57e578a026d2789"
registry = "0x1111111111111111111111111111111111111111"
`, p.name, p.chainID, p.bundlerURL, p.directoryURL)
	}

	return os.WriteFile(filepath.Join(configDir, "profiles.toml"), []byte(b.String()), 0o644)
}

func writeRuntimeFixture(home string, profile string) error {
	configDir := filepath.Join(home, ".config", "chanterm")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	runtime := fmt.Sprintf(`version = 1

[[runtimes]]
profile = %q
account = "0x2222222222222222222222222222222222222222"
username = "alice"
`, profile)

	return os.WriteFile(filepath.Join(configDir, "runtime.toml"), []byte(runtime), 0o644)
}

func seedTranscriptFixture(home string, channelID string, body string) error {
	path := filepath.Join(home, ".local", "state", "chanterm", "history.db")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	store, err := sqlitehistory.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return store.Append(context.Background(), domain.Message{
		Channel:    channelID,
		Author:     domain.Address("0x2222222222222222222222222222222222222222"),
		AuthorName: "alice",
		Body:       body,
		SentAt:     time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
		Delivery:   domain.DeliveryConfirmed,
	})
}
