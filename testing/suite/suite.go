package suite

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxWaitDuration = 10 * time.Second
	readWait        = 3 * time.Second
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Server *httptest.Server
}

// New starts an HTTP test server around the handler built by newHandler. The
// server and every connection dialled through the suite are closed on
// cleanup.
func New(t *testing.T, newHandler func(logger *slog.Logger) http.Handler) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	server := httptest.NewUnstartedServer(newHandler(logger))
	server.Config.BaseContext = func(_ net.Listener) context.Context { return ctx }
	server.Start()

	t.Cleanup(func() {
		cancel()
		server.Close()
	})

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Server: server,
	}
}

// Message is the envelope exchanged over the socket.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Client struct {
	t    *testing.T
	Conn *websocket.Conn
}

// Dial opens a socket to path on the test server.
func (that *Suite) Dial(ctx context.Context, path string) *Client {
	that.Helper()

	url := "ws" + strings.TrimPrefix(that.Server.URL, "http") + path

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		that.Fatalf("could not dial %s: %v", url, err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	that.Cleanup(func() {
		_ = conn.Close()
	})

	return &Client{t: that.T, Conn: conn}
}

func (that *Client) Send(action string, payload any) {
	that.t.Helper()

	message := Message{Action: action}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			that.t.Fatalf("could not marshal payload: %v", err)
		}
		message.Payload = body
	}

	if err := that.Conn.WriteJSON(message); err != nil {
		that.t.Fatalf("could not send %s: %v", action, err)
	}
}

// Next reads one message or fails the test after a few seconds.
func (that *Client) Next() Message {
	that.t.Helper()

	if err := that.Conn.SetReadDeadline(time.Now().Add(readWait)); err != nil {
		that.t.Fatalf("could not set read deadline: %v", err)
	}

	var message Message
	if err := that.Conn.ReadJSON(&message); err != nil {
		that.t.Fatalf("could not read message: %v", err)
	}

	return message
}

// Expect skips messages until one with action arrives and decodes its
// payload into target, when target is not nil.
func (that *Client) Expect(action string, target any) {
	that.t.Helper()

	for {
		message := that.Next()
		if message.Action != action {
			continue
		}

		if target != nil {
			if err := json.Unmarshal(message.Payload, target); err != nil {
				that.t.Fatalf("could not decode %s payload: %v", action, err)
			}
		}

		return
	}
}

// Collect reads exactly n messages.
func (that *Client) Collect(n int) []Message {
	that.t.Helper()

	messages := make([]Message, 0, n)
	for range n {
		messages = append(messages, that.Next())
	}

	return messages
}
