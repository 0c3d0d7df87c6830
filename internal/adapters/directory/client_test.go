package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chanterm/internal/domain"
)

func testDirectory(server *httptest.Server) Adapter {
	return Adapter{BaseURL: server.URL, HTTPClient: server.Client()}
}

func TestGetChannelParsesEntry(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/channels/general", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chan-1","name":"general","creator":"0x2222222222222222222222222222222222222222"}`))
	}))
	t.Cleanup(server.Close)

	ref, err := testDirectory(server).GetChannel(context.Background(), "general")

	require.NoError(t, err)
	assert.Equal(t, "chan-1", ref.ID)
	assert.Equal(t, "general", ref.Name)
	assert.Equal(t, domain.Address("0x2222222222222222222222222222222222222222"), ref.Creator)
}

func TestGetChannelMapsNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	_, err := testDirectory(server).GetChannel(context.Background(), "ghost")

	require.ErrorIs(t, err, domain.ErrChannelNotFound)
}

func TestGetChannelMapsIndexerLag(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)

	_, err := testDirectory(server).GetChannel(context.Background(), "fresh")

	require.ErrorIs(t, err, domain.ErrChannelProcessing)
}

func TestGetChannelRejectsUnexpectedStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	_, err := testDirectory(server).GetChannel(context.Background(), "general")

	require.ErrorContains(t, err, "status 502")
}

func TestListChannelsDecodesAll(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/channels", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"channels":[
			{"id":"chan-1","name":"general","creator":"0x2222222222222222222222222222222222222222"},
			{"id":"chan-2","name":"random"}
		]}`))
	}))
	t.Cleanup(server.Close)

	refs, err := testDirectory(server).ListChannels(context.Background())

	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "general", refs[0].Name)
	assert.Equal(t, "random", refs[1].Name)
	assert.True(t, refs[1].Creator.IsZero())
}

func TestListMessagesReversesToOldestFirst(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/channels/chan-1/messages", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[
			{"channel":"chan-1","author":"0x2222222222222222222222222222222222222222","author_name":"bob","body":"third","sent_at":"2026-03-07T12:02:00Z"},
			{"channel":"chan-1","author":"0x2222222222222222222222222222222222222222","author_name":"bob","body":"second","sent_at":"2026-03-07T12:01:00Z"},
			{"channel":"chan-1","author":"0x3333333333333333333333333333333333333333","body":"first","sent_at":"2026-03-07T12:00:00Z"}
		]}`))
	}))
	t.Cleanup(server.Close)

	messages, err := testDirectory(server).ListMessages(context.Background(), "chan-1", 25)

	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Body)
	assert.Equal(t, "second", messages[1].Body)
	assert.Equal(t, "third", messages[2].Body)
	assert.Equal(t, domain.DeliveryConfirmed, messages[0].Delivery)
	// No registered username: display falls back to the short address.
	assert.Equal(t, "0x3333…3333", messages[0].DisplayAuthor())
	assert.Equal(t, "bob", messages[1].DisplayAuthor())
}

func TestListMessagesDefaultsLimit(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "50", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[]}`))
	}))
	t.Cleanup(server.Close)

	messages, err := testDirectory(server).ListMessages(context.Background(), "chan-1", 0)

	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestResolveNameReturnsRegisteredName(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/names/0x2222222222222222222222222222222222222222", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"bob"}`))
	}))
	t.Cleanup(server.Close)

	name, err := testDirectory(server).ResolveName(context.Background(), "0x2222222222222222222222222222222222222222")

	require.NoError(t, err)
	assert.Equal(t, "bob", name)
}

func TestResolveNameFallsBackToEmpty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	name, err := testDirectory(server).ResolveName(context.Background(), "0x2222222222222222222222222222222222222222")

	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestDirectoryValidatesBaseURL(t *testing.T) {
	t.Parallel()

	_, err := Adapter{}.ListChannels(context.Background())
	require.ErrorContains(t, err, "directory base url is required")

	_, err = Adapter{BaseURL: "gopher://indexer.local"}.ListChannels(context.Background())
	require.ErrorContains(t, err, "http or https")
}

func TestDirectoryAppliesDefaultTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	adapter := Adapter{BaseURL: server.URL, HTTPClient: server.Client(), RequestTimeout: 25 * time.Millisecond}
	_, err := adapter.ListChannels(context.Background())

	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
