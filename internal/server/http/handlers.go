package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"janggi/internal/janggi"
	"janggi/internal/notation"
	"janggi/internal/server/game"
)

// Handler 本地同屏对弈用的 /api/* 路由
type Handler struct {
	games *game.Manager
	log   logrus.FieldLogger
}

func NewHandler(games *game.Manager, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{games: games, log: log}
}

// Routes 挂好所有接口
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/new_game", h.handleNewGame)
		r.Post("/state", h.handleState)
		r.Post("/moves", h.handleMoves)
		r.Post("/play", h.handlePlay)
		r.Get("/games/{id}", h.handleGetGame)
	})
	return r
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad json", nil)
		return
	}

	var s *game.Session
	if req.Position == "" {
		s = h.games.NewGame()
	} else {
		var err error
		s, err = h.games.NewGameFrom(req.Position)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}
	h.log.WithField("game_id", s.ID).Info("new game")
	writeJSON(w, http.StatusOK, stateFromSnapshot(s.Snapshot()))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json", nil)
		return
	}
	s, ok := h.session(w, req.GameID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stateFromSnapshot(s.Snapshot()))
}

func (h *Handler) handleGetGame(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stateFromSnapshot(s.Snapshot()))
}

func (h *Handler) handleMoves(w http.ResponseWriter, r *http.Request) {
	var req MovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json", nil)
		return
	}
	s, ok := h.session(w, req.GameID)
	if !ok {
		return
	}
	from, err := notation.ParseSquare(req.From)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	writeJSON(w, http.StatusOK, MovesResponse{
		From: notation.Format(from),
		To:   notation.FormatAll(s.Moves(from)),
	})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json", nil)
		return
	}
	s, ok := h.session(w, req.GameID)
	if !ok {
		return
	}
	from, to, err := notation.ParseMove(req.From, req.To)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	log := h.log.WithFields(logrus.Fields{"game_id": s.ID, "from": req.From, "to": req.To})
	snap, err := s.Play(from, to)
	if err != nil {
		log.WithError(err).Debug("move rejected")
		st := stateFromSnapshot(snap)
		writeError(w, statusForRejection(err), err.Error(), &st)
		return
	}
	if snap.Result != janggi.Ongoing {
		log.WithField("result", snap.Result.String()).Info("checkmate")
	} else {
		log.Debug("move applied")
	}
	writeJSON(w, http.StatusOK, stateFromSnapshot(snap))
}

func (h *Handler) session(w http.ResponseWriter, id string) (*game.Session, bool) {
	s, err := h.games.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error(), nil)
		return nil, false
	}
	return s, true
}

func statusForRejection(err error) int {
	switch {
	case errors.Is(err, janggi.ErrOutOfBounds):
		return http.StatusBadRequest
	case errors.Is(err, janggi.ErrGameOver),
		errors.Is(err, janggi.ErrNoPiece),
		errors.Is(err, janggi.ErrWrongTurn),
		errors.Is(err, janggi.ErrPassInCheck),
		errors.Is(err, janggi.ErrOwnPiece),
		errors.Is(err, janggi.ErrUnreachable),
		errors.Is(err, janggi.ErrCaptureGeneral):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, msg string, st *StateResponse) {
	writeJSON(w, status, ErrorResponse{Error: msg, State: st})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("writeJSON")
	}
}
