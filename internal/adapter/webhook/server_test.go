package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"ether-community-telegram-bot/internal/domain"
	"ether-community-telegram-bot/internal/usecase"
)

const testBotToken = "123456:AAF-testsuffix"

type fakeDispatcher struct {
	mu    sync.Mutex
	calls int
	last  domain.InboundEvent
}

func (f *fakeDispatcher) Dispatch(_ context.Context, ev domain.InboundEvent) usecase.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = ev
	return usecase.Outcome{Category: usecase.CategoryIgnored}
}

func (f *fakeDispatcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

const validUpdate = `{
	"update_id": 1,
	"message": {
		"message_id": 5,
		"from": {"id": 42, "first_name": "Ли"},
		"chat": {"id": 42, "type": "private"},
		"text": "привет"
	}
}`

func post(t *testing.T, srv *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestWrongTokenSuffixRejectedWithoutDispatch(t *testing.T) {
	fd := &fakeDispatcher{}
	srv := NewServer(testBotToken, fd, nil)

	rec := post(t, srv, "/webhook/wrong-suffix", validUpdate)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Zero(t, fd.callCount(), "диспетчер не должен вызываться")
}

func TestValidUpdateDispatched(t *testing.T) {
	fd := &fakeDispatcher{}
	srv := NewServer(testBotToken, fd, nil)

	rec := post(t, srv, "/webhook/AAF-testsuffix", validUpdate)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, fd.callCount())
	require.Equal(t, int64(42), fd.last.SenderID)
	require.Equal(t, domain.ChatPrivate, fd.last.ChatKind)
}

func TestLegacyTokenPath(t *testing.T) {
	fd := &fakeDispatcher{}
	srv := NewServer(testBotToken, fd, nil)

	rec := post(t, srv, "/AAF-testsuffix", validUpdate)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, fd.callCount())
}

func TestMalformedJSONRejected(t *testing.T) {
	fd := &fakeDispatcher{}
	srv := NewServer(testBotToken, fd, nil)

	rec := post(t, srv, "/webhook/AAF-testsuffix", "{не json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, fd.callCount())
}

func TestNonMessageUpdateAcknowledged(t *testing.T) {
	fd := &fakeDispatcher{}
	srv := NewServer(testBotToken, fd, nil)

	rec := post(t, srv, "/webhook/AAF-testsuffix", `{"update_id": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Zero(t, fd.callCount())
}

func TestNilDispatcherUnavailable(t *testing.T) {
	srv := NewServer(testBotToken, nil, nil)

	rec := post(t, srv, "/webhook/AAF-testsuffix", validUpdate)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	srv := NewServer(testBotToken, &fakeDispatcher{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
	require.NotEmpty(t, body["message"])
}

func TestTokenWithoutColonUsedWhole(t *testing.T) {
	fd := &fakeDispatcher{}
	srv := NewServer("plain-token", fd, nil)

	rec := post(t, srv, "/webhook/plain-token", validUpdate)
	require.Equal(t, http.StatusOK, rec.Code)
}
