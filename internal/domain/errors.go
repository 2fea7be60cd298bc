package domain

import "errors"

var (
	// ErrAborted is returned when the player asks to quit. No score is produced.
	ErrAborted = errors.New("game aborted by player")
	// ErrBankNotFound indicates the question bank could not be located.
	ErrBankNotFound = errors.New("question bank not found")
	// ErrEmptyBank indicates a bank without any questions.
	ErrEmptyBank = errors.New("question bank has no questions")
)
