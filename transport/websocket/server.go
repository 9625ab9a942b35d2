package websocket

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/rocketscienceinc/arcade-backend/internal/config"
	"github.com/rocketscienceinc/arcade-backend/internal/service"
)

const (
	maxMessageSize = 4096
	writeWait      = 10 * time.Second
	loopBuffer     = 32
)

type Options struct {
	OpponentDelay time.Duration
	Typewriter    service.Typewriter
	Sounds        config.Sounds

	// NewBot builds the opponent of each session. Defaults to the random bot.
	NewBot func() service.BotService
}

// OptionsFromConfig maps the loaded config onto server options.
func OptionsFromConfig(conf *config.Config) Options {
	return Options{
		OpponentDelay: conf.Game.OpponentDelay,
		Typewriter: service.Typewriter{
			LineDelay: conf.Rules.LineDelay,
			WordDelay: conf.Rules.WordDelay,
		},
		Sounds: conf.Sounds,
	}
}

// Server upgrades HTTP requests and runs one session per connection.
type Server struct {
	logger   *slog.Logger
	options  Options
	upgrader websocket.Upgrader
	sessions *xsync.MapOf[string, *session]
}

func New(logger *slog.Logger, options Options) *Server {
	if options.NewBot == nil {
		options.NewBot = service.NewBotService
	}

	return &Server{
		logger:  logger.With("component", "websocket"),
		options: options,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		sessions: xsync.NewMapOf[string, *session](),
	}
}

// ServeHTTP blocks for the lifetime of the connection. The session ends when
// the client disconnects or the request context is cancelled.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		// the upgrader has already replied with an HTTP error
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	sess := newSession(uuid.NewString(), that.logger, conn, that.options)

	that.sessions.Store(sess.id, sess)
	defer that.sessions.Delete(sess.id)

	log.Info("WebSocket connection established", "session", sess.id, "sessions", that.sessions.Size())

	if err = sess.run(req.Context()); err != nil {
		log.Error("session ended with error", "session", sess.id, "error", err)
		return
	}

	log.Info("WebSocket connection closed", "session", sess.id)
}

// Sessions returns the number of open connections.
func (that *Server) Sessions() int {
	return that.sessions.Size()
}

// CloseAll drops every open connection, for shutdown.
func (that *Server) CloseAll() {
	that.sessions.Range(func(id string, sess *session) bool {
		if err := sess.conn.Close(); err != nil {
			that.logger.Debug("failed to close connection", "session", id, "error", err)
		}
		return true
	})
}
