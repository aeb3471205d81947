package httpserver

import "janggi/internal/server/game"

// NewGame 请求：position 为空时用标准开局
type NewGameRequest struct {
	Position string `json:"position,omitempty"`
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

// Play 请求，from == to 表示停着
type PlayRequest struct {
	GameID string `json:"game_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// Moves 请求：某个子能走到哪些格子
type MovesRequest struct {
	GameID string `json:"game_id"`
	From   string `json:"from"`
}

type MovesResponse struct {
	From string   `json:"from"`
	To   []string `json:"to"`
}

// 所有接口返回的对局状态
type StateResponse struct {
	GameID   string `json:"game_id"`
	Position string `json:"position"` // FEN 字符串
	ToMove   string `json:"to_move"`  // "blue" / "red"
	Turn     int    `json:"turn"`
	InCheck  bool   `json:"in_check"`
	Status   string `json:"status"` // "ongoing" / "blue_won" / "red_won"
}

type ErrorResponse struct {
	Error string         `json:"error"`
	State *StateResponse `json:"state,omitempty"`
}

func stateFromSnapshot(s game.Snapshot) StateResponse {
	return StateResponse{
		GameID:   s.ID,
		Position: s.Position,
		ToMove:   s.ToMove.String(),
		Turn:     s.Turn,
		InCheck:  s.InCheck,
		Status:   s.Result.String(),
	}
}
