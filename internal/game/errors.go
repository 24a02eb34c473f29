package game

import "errors"

var (
	// ErrInvalidArgument is returned when a game is constructed with an
	// unusable player list.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when an operation is called in a state
	// that cannot satisfy it, such as dealing into a non-empty hand or
	// asking for results before the game has ended.
	ErrInvalidState = errors.New("invalid state")

	// ErrGameEnded is returned by turn operations once the game is over.
	// Callers should check Finished before acting.
	ErrGameEnded = errors.New("game has ended")
)
