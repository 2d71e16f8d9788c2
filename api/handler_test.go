package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/go-kit/log"
	"github.com/gorilla/websocket"
)

// recorder tracks the lifecycle calls made on the bots a router created.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

// eastBot walks east until it is told the game is over.
type eastBot struct {
	rec *recorder
}

func (b *eastBot) Start(*State) error {
	b.rec.record("start")
	return nil
}

func (b *eastBot) Move(st *State) (Move, error) {
	if st.Me.Position.X < 0 {
		return Hold, errors.New("lost")
	}
	return Move{DX: 1}, nil
}

func (b *eastBot) End(*State) error {
	b.rec.record("end")
	return nil
}

func newTestServer(c *qt.C) (*httptest.Server, *recorder) {
	rec := &recorder{}
	srv := httptest.NewServer(Router(func() Bot {
		rec.record("new")
		return &eastBot{rec: rec}
	}, log.NewNopLogger()))
	c.Cleanup(srv.Close)
	return srv, rec
}

const tickBody = `{"board":{"id":1,"width":5,"height":5,"gameObjects":[]},` +
	`"you":{"id":9,"position":{"x":%d,"y":0},"type":"BotGameObject","properties":{"name":"albedo"}}}`

func tick(x int) string {
	return strings.Replace(tickBody, "%d", jsonInt(x), 1)
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func post(c *qt.C, srv *httptest.Server, path, body string) *http.Response {
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	c.Assert(err, qt.IsNil)
	c.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestInfo(t *testing.T) {
	c := qt.New(t)
	srv, _ := newTestServer(c)
	resp, err := http.Get(srv.URL + "/")
	c.Assert(err, qt.IsNil)
	defer resp.Body.Close()
	var info InfoResponse
	c.Assert(json.NewDecoder(resp.Body).Decode(&info), qt.IsNil)
	c.Assert(info.APIVersion, qt.Equals, "1")
}

func TestGameLifecycle(t *testing.T) {
	c := qt.New(t)
	srv, rec := newTestServer(c)

	c.Assert(post(c, srv, "/start", tick(0)).StatusCode, qt.Equals, http.StatusOK)
	c.Assert(rec.snapshot(), qt.DeepEquals, []string{"new", "start"})

	resp := post(c, srv, "/move", tick(1))
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	var move MoveResponse
	c.Assert(json.NewDecoder(resp.Body).Decode(&move), qt.IsNil)
	c.Assert(move, qt.Equals, MoveResponse{DX: 1, DY: 0, Direction: "EAST"})

	c.Assert(post(c, srv, "/end", tick(2)).StatusCode, qt.Equals, http.StatusOK)
	c.Assert(rec.snapshot(), qt.DeepEquals, []string{"new", "start", "end"})

	// The session is gone once the game ends.
	c.Assert(post(c, srv, "/move", tick(2)).StatusCode, qt.Equals, http.StatusBadRequest)
	c.Assert(post(c, srv, "/end", tick(2)).StatusCode, qt.Equals, http.StatusBadRequest)
}

func TestMoveErrors(t *testing.T) {
	c := qt.New(t)
	srv, _ := newTestServer(c)
	c.Assert(post(c, srv, "/move", tick(0)).StatusCode, qt.Equals, http.StatusBadRequest)
	c.Assert(post(c, srv, "/start", "{not json").StatusCode, qt.Equals, http.StatusBadRequest)

	c.Assert(post(c, srv, "/start", tick(0)).StatusCode, qt.Equals, http.StatusOK)
	c.Assert(post(c, srv, "/move", tick(-1)).StatusCode, qt.Equals, http.StatusBadRequest)
}

func dial(c *qt.C, srv *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	c.Assert(err, qt.IsNil)
	c.Cleanup(func() { conn.Close() })
	return conn
}

func frame(typ string, x int) string {
	return `{"type":"` + typ + `",` + strings.TrimPrefix(tick(x), "{")
}

func TestStream(t *testing.T) {
	c := qt.New(t)
	srv, rec := newTestServer(c)
	conn := dial(c, srv)

	c.Assert(conn.WriteMessage(websocket.TextMessage, []byte(frame(FrameMove, 0))), qt.IsNil)
	var out OutboundFrame
	c.Assert(conn.ReadJSON(&out), qt.IsNil)
	c.Assert(out.Type, qt.Equals, FrameError)
	c.Assert(out.Error, qt.Equals, "game not started")

	c.Assert(conn.WriteMessage(websocket.TextMessage, []byte(frame(FrameStart, 0))), qt.IsNil)
	c.Assert(conn.WriteMessage(websocket.TextMessage, []byte(frame(FrameMove, 1))), qt.IsNil)
	out = OutboundFrame{}
	c.Assert(conn.ReadJSON(&out), qt.IsNil)
	c.Assert(out, qt.Equals, OutboundFrame{Type: FrameMove, DX: 1, Direction: "EAST"})

	c.Assert(conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"dance"}`)), qt.IsNil)
	out = OutboundFrame{}
	c.Assert(conn.ReadJSON(&out), qt.IsNil)
	c.Assert(out.Error, qt.Equals, `unknown frame type "dance"`)

	c.Assert(conn.WriteMessage(websocket.TextMessage, []byte(frame(FrameEnd, 2))), qt.IsNil)
	_, _, err := conn.ReadMessage()
	c.Assert(websocket.IsCloseError(err, websocket.CloseNormalClosure), qt.IsTrue)
	c.Assert(rec.snapshot(), qt.DeepEquals, []string{"new", "start", "end"})
}
