package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 5 * time.Second
	maxMessageSize = 1 << 20
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 1024,
	// Game engines connect from arbitrary hosts.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Frame types exchanged on the tick stream.
const (
	FrameStart = "start"
	FrameMove  = "move"
	FrameEnd   = "end"
	FrameError = "error"
)

// InboundFrame is one tick pushed by the engine over the websocket.
type InboundFrame struct {
	Type  string     `json:"type"`
	Board Board      `json:"board"`
	You   GameObject `json:"you"`
}

// OutboundFrame answers a move frame, or reports why a frame was refused.
type OutboundFrame struct {
	Type      string `json:"type"`
	DX        int    `json:"dx"`
	DY        int    `json:"dy"`
	Direction string `json:"direction,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Stream upgrades the request to a websocket tick stream. The connection owns
// a single Bot for its whole lifetime; an end frame closes it.
func (h *handler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		_ = level.Error(h.logger).Log("msg", "websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	s := &stream{
		conn:   conn,
		logger: log.With(h.logger, "session", uuid.NewString()),
		newBot: h.newBot,
	}
	s.run()
}

type stream struct {
	conn   *websocket.Conn
	logger log.Logger
	newBot func() Bot
	bot    Bot
}

func (s *stream) run() {
	_ = level.Debug(s.logger).Log("msg", "stream opened")
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				_ = level.Error(s.logger).Log("msg", "websocket read failed", "err", err)
			}
			return
		}
		done, err := s.handle(data)
		if err != nil {
			_ = level.Warn(s.logger).Log("msg", "frame refused", "err", err)
			if werr := s.write(&OutboundFrame{Type: FrameError, Error: err.Error()}); werr != nil {
				return
			}
		}
		if done {
			_ = s.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (s *stream) handle(data []byte) (bool, error) {
	var frame InboundFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return false, fmt.Errorf("invalid frame: %w", err)
	}
	st := &State{Board: frame.Board, Me: frame.You}
	switch frame.Type {
	case FrameStart:
		if s.bot != nil {
			return false, fmt.Errorf("game already started")
		}
		s.bot = s.newBot()
		return false, s.bot.Start(st)
	case FrameMove:
		if s.bot == nil {
			return false, fmt.Errorf("game not started")
		}
		move, err := s.bot.Move(st)
		if err != nil {
			return false, fmt.Errorf("bot cannot move: %w", err)
		}
		return false, s.write(&OutboundFrame{
			Type:      FrameMove,
			DX:        move.DX,
			DY:        move.DY,
			Direction: move.Direction(),
		})
	case FrameEnd:
		if s.bot == nil {
			return true, nil
		}
		return true, s.bot.End(st)
	}
	return false, fmt.Errorf("unknown frame type %q", frame.Type)
}

func (s *stream) write(frame *OutboundFrame) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(frame)
}
