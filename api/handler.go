package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Router serves one bot strategy. Every game a bot joins gets its own Bot
// from newBot, so per-game continuation state never leaks across games.
func Router(newBot func() Bot, logger log.Logger) http.Handler {
	r := chi.NewRouter()
	h := &handler{newBot: newBot, logger: logger, gameBots: map[string]Bot{}}
	r.Get("/", h.Info)
	r.Post("/start", h.Start)
	r.Post("/move", h.Move)
	r.Post("/end", h.End)
	r.Get("/ws", h.Stream)
	return r
}

type handler struct {
	newBot func() Bot
	logger log.Logger

	mu       sync.RWMutex
	gameBots map[string]Bot
}

func sessionKey(req *TickRequest) string {
	name := ""
	if p := req.You.Properties; p != nil && p.Name != nil {
		name = *p.Name
	}
	return fmt.Sprintf("%d/%s", req.Board.ID, name)
}

func (h *handler) Info(w http.ResponseWriter, r *http.Request) {
	err := json.NewEncoder(w).Encode(&InfoResponse{
		APIVersion: "1",
	})
	if err != nil {
		_ = level.Error(h.logger).Log("msg", "failed to write response", "err", err)
	}
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request) (*TickRequest, bool) {
	var req TickRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		_ = level.Error(h.logger).Log("msg", "failed to decode request", "err", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func (h *handler) Start(w http.ResponseWriter, r *http.Request) {
	startReq, ok := h.decode(w, r)
	if !ok {
		return
	}

	gameBot := h.newBot()
	h.mu.Lock()
	h.gameBots[sessionKey(startReq)] = gameBot
	h.mu.Unlock()

	err := gameBot.Start(&State{Board: startReq.Board, Me: startReq.You})
	if err != nil {
		http.Error(w, "bot cannot start game", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *handler) Move(w http.ResponseWriter, r *http.Request) {
	moveReq, ok := h.decode(w, r)
	if !ok {
		return
	}

	h.mu.RLock()
	gameBot, ok := h.gameBots[sessionKey(moveReq)]
	h.mu.RUnlock()
	if !ok {
		http.Error(w, "game not started", http.StatusBadRequest)
		return
	}

	move, err := gameBot.Move(&State{Board: moveReq.Board, Me: moveReq.You})
	if err != nil {
		_ = level.Error(h.logger).Log("msg", "bot cannot move", "err", err)
		http.Error(w, "bot cannot move", http.StatusBadRequest)
		return
	}

	err = json.NewEncoder(w).Encode(move.response())
	if err != nil {
		_ = level.Error(h.logger).Log("msg", "failed to encode response", "err", err)
	}
}

func (h *handler) End(w http.ResponseWriter, r *http.Request) {
	endReq, ok := h.decode(w, r)
	if !ok {
		return
	}

	key := sessionKey(endReq)
	h.mu.Lock()
	gameBot, ok := h.gameBots[key]
	delete(h.gameBots, key)
	h.mu.Unlock()
	if !ok {
		http.Error(w, "game not started", http.StatusBadRequest)
		return
	}

	err := gameBot.End(&State{Board: endReq.Board, Me: endReq.You})
	if err != nil {
		http.Error(w, "bot cannot end game", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
}
