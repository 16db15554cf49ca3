// Package telegramtest provides a fake Telegram Bot API server for tests.
// It records every call, can fail chosen methods, and serves queued updates
// to long polling.
package telegramtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"sync"
	"testing"
	"time"
)

// BotUsername is the username the fake server reports from getMe.
const BotUsername = "AppleShopBot"

// Call is one recorded Bot API request.
type Call struct {
	Method string
	Form   url.Values
}

// Server is a fake Bot API endpoint. Point the client at URL with bot.WithServerURL.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	calls     []Call
	failures  map[string]string
	updates   []json.RawMessage
	messageID int
	notify    chan struct{}
}

// NewServer starts a fake server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		failures: make(map[string]string),
		notify:   make(chan struct{}, 1),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Fail makes every later call to method return a 400 with description.
func (s *Server) Fail(method, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = description
}

// Recover removes a failure set with Fail.
func (s *Server) Recover(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, method)
}

// QueueCommand queues a private-chat message update whose whole text is a
// bot command, e.g. "/start". It is delivered by the next getUpdates.
func (s *Server) QueueCommand(updateID, chatID, userID int64, command string) {
	raw := fmt.Sprintf(`{"update_id":%d,"message":{"message_id":%d,"date":1700000000,`+
		`"chat":{"id":%d,"type":"private"},"from":{"id":%d,"is_bot":false,"first_name":"Test"},`+
		`"text":%q,"entities":[{"type":"bot_command","offset":0,"length":%d}]}}`,
		updateID, updateID, chatID, userID, command, len(command))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, json.RawMessage(raw))
}

// Calls returns the recorded calls to method, in order.
func (s *Server) Calls(method string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Call
	for _, c := range s.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// WaitFor blocks until at least n calls to method were recorded and returns them.
func (s *Server) WaitFor(t testing.TB, method string, n int, timeout time.Duration) []Call {
	t.Helper()

	deadline := time.After(timeout)
	for {
		if calls := s.Calls(method); len(calls) >= n {
			return calls
		}
		select {
		case <-s.notify:
		case <-time.After(20 * time.Millisecond):
		case <-deadline:
			t.Fatalf("timed out waiting for %d %s call(s), got %d", n, method, len(s.Calls(method)))
			return nil
		}
	}
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	method := path.Base(r.URL.Path)
	_ = r.ParseMultipartForm(1 << 20)

	s.mu.Lock()
	s.calls = append(s.calls, Call{Method: method, Form: r.Form})
	failure, failed := s.failures[method]
	var updates []json.RawMessage
	if method == "getUpdates" {
		updates, s.updates = s.updates, nil
	}
	s.messageID++
	messageID := s.messageID
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}

	w.Header().Set("Content-Type", "application/json")

	if failed {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, map[string]any{"ok": false, "error_code": http.StatusBadRequest, "description": failure})
		return
	}

	switch method {
	case "getMe":
		writeResult(w, map[string]any{"id": 1, "is_bot": true, "first_name": "Apple Shop", "username": BotUsername})
	case "getUpdates":
		if len(updates) == 0 {
			// Hold the poll briefly so idle clients do not spin.
			select {
			case <-r.Context().Done():
			case <-time.After(50 * time.Millisecond):
			}
			updates = []json.RawMessage{}
		}
		writeResult(w, updates)
	case "sendMessage", "sendAnimation":
		writeResult(w, map[string]any{
			"message_id": messageID,
			"date":       1700000000,
			"chat":       map[string]any{"id": json.Number(r.FormValue("chat_id")), "type": "private"},
		})
	default:
		writeResult(w, true)
	}
}

func writeResult(w http.ResponseWriter, result any) {
	writeJSON(w, map[string]any{"ok": true, "result": result})
}

func writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}
