package janggi

import "errors"

// Reasons a move is rejected by Game.Play.
var (
	ErrGameOver    = errors.New("game already over")
	ErrOutOfBounds = errors.New("square out of bounds")
	ErrNoPiece     = errors.New("no piece at origin")
	ErrWrongTurn   = errors.New("not this player's turn")
	ErrPassInCheck = errors.New("cannot pass while in check")
	ErrOwnPiece    = errors.New("destination blocked by own piece")
	ErrUnreachable = errors.New("destination not reachable")

	// 将永远不会被吃掉：对方露将时也不能直接去吃
	ErrCaptureGeneral = errors.New("general cannot be captured")
)
