package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nourhanadel/pharma-admin-BE/internal/event"
	"github.com/nourhanadel/pharma-admin-BE/internal/gateway"
	"github.com/nourhanadel/pharma-admin-BE/internal/notice"
	"github.com/nourhanadel/pharma-admin-BE/internal/util"
	"resty.dev/v3"
)

// dropSender discards events; the handlers under test only need the
// broadcast call to return.
type dropSender struct{}

func (dropSender) Register(string, chan event.Event)   {}
func (dropSender) Unregister(string, chan event.Event) {}
func (dropSender) Broadcast(event.Event)               {}
func (dropSender) Run()                                {}

// fakeRemote stands in for the remote medicine API. Reads can be
// switched to fail mid-test while writes keep landing.
type fakeRemote struct {
	mu        sync.Mutex
	failReads bool
	putCalls  int
}

func (f *fakeRemote) setFailReads(fail bool) {
	f.mu.Lock()
	f.failReads = fail
	f.mu.Unlock()
}

func (f *fakeRemote) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		if f.failReads {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/users":
			w.Write([]byte(`[{"id": 1, "name": "Sara", "email": "sara@example.com", "phone": "01000000000"}]`))
		default:
			w.Write([]byte(`[]`))
		}
	case http.MethodPut:
		f.putCalls++
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusOK)
	}
}

func newTestServer(t *testing.T, remote http.Handler) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	remoteServer := httptest.NewServer(remote)
	t.Cleanup(remoteServer.Close)

	client := resty.New()
	t.Cleanup(func() { client.Close() })

	config := &util.Config{
		AllowedOrigins: []string{"http://localhost:3000"},
		PanelPageSize:  10,
	}
	server, err := NewServer(gateway.New(client, remoteServer.URL), config, dropSender{})
	if err != nil {
		t.Fatalf("NewServer() returned error: %v", err)
	}
	return server
}

func perform(server *Server, method, path string, body io.Reader) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, path, body)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	server.router.ServeHTTP(recorder, request)
	return recorder
}

func hasNotice(notices []notice.Notice, level notice.Level, message string) bool {
	for _, n := range notices {
		if n.Level == level && n.Message == message {
			return true
		}
	}
	return false
}

func TestFailedRefreshRecordsFailureNotice(t *testing.T) {
	server := newTestServer(t, &fakeRemote{failReads: true})

	recorder := perform(server, http.MethodPost, "/v1/notifications/refresh", nil)

	if recorder.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", recorder.Code)
	}
	if !hasNotice(server.notices.List(), notice.LevelError, "Failed to load notifications") {
		t.Fatalf("notices = %+v, want a failure notice for the failed load", server.notices.List())
	}
}

func TestFailedPanelLoadRecordsFailureNotice(t *testing.T) {
	server := newTestServer(t, &fakeRemote{failReads: true})

	recorder := perform(server, http.MethodPost, "/v1/users/refresh", nil)

	if recorder.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", recorder.Code)
	}
	if !hasNotice(server.notices.List(), notice.LevelError, "Failed to load users") {
		t.Fatalf("notices = %+v, want a failure notice for the failed load", server.notices.List())
	}
}

func TestSaveReportsPersistAndReloadSeparately(t *testing.T) {
	remote := &fakeRemote{}
	server := newTestServer(t, remote)

	if recorder := perform(server, http.MethodPost, "/v1/users/refresh", nil); recorder.Code != http.StatusOK {
		t.Fatalf("refresh status = %d", recorder.Code)
	}
	if recorder := perform(server, http.MethodPost, "/v1/users/1/edit", nil); recorder.Code != http.StatusOK {
		t.Fatalf("edit status = %d", recorder.Code)
	}
	draft := `{"id": 1, "name": "Sarah", "email": "sara@example.com", "phone": "01000000000"}`
	if recorder := perform(server, http.MethodPut, "/v1/users/1/draft", strings.NewReader(draft)); recorder.Code != http.StatusOK {
		t.Fatalf("draft status = %d", recorder.Code)
	}

	// The write lands, the follow-up reload does not.
	remote.setFailReads(true)
	recorder := perform(server, http.MethodPost, "/v1/users/save", nil)

	if remote.putCalls != 1 {
		t.Fatalf("put calls = %d, want the edit persisted exactly once", remote.putCalls)
	}
	if recorder.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502 for the failed reload", recorder.Code)
	}

	notices := server.notices.List()
	if !hasNotice(notices, notice.LevelSuccess, "Updated users successfully") {
		t.Fatalf("notices = %+v, want a success notice for the persisted write", notices)
	}
	if !hasNotice(notices, notice.LevelError, "Failed to reload users") {
		t.Fatalf("notices = %+v, want a failure notice for the reload", notices)
	}
	if hasNotice(notices, notice.LevelError, "Failed to update users") {
		t.Fatal("a persisted write must not be reported as a failed update")
	}
}
