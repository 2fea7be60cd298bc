package app

import (
	"context"

	"trivia/internal/domain"
)

// MessageKind tells a Presenter how a message should be styled.
type MessageKind int

const (
	KindPlain MessageKind = iota
	KindTitle
	KindQuestion
	KindInput
	KindNotice
	KindSuccess
	KindFailure
	KindFatal
	KindEmphasis
	KindScoreLow
	KindScoreMid
	KindScoreHigh
)

// Message is one piece of output. Label and Detail are rendered unstyled
// around the styled Text.
type Message struct {
	Kind   MessageKind
	Label  string
	Text   string
	Detail string
}

// Audio cue names, resolved by the player to sound files.
const (
	CueOpening      = "opening"
	CueHint         = "beep"
	CueSuccess      = "short-success"
	CueFail         = "fail"
	CueExhausted    = "power-down"
	CueNotification = "notification"
	CueHappyEnd     = "happy-end"
)

// Presenter renders game output and plays audio cues. Errors from either are
// ignored by the game.
type Presenter interface {
	Display(msg Message) error
	PlayCue(name string, blocking bool) error
}

// ScreenClearer is implemented by presenters that can clear the terminal.
type ScreenClearer interface {
	Clear() error
}

// LineReader supplies player input one line at a time. It returns io.EOF
// once input is exhausted.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// QuestionRepository loads question banks (from cache/backing store).
type QuestionRepository interface {
	GetBank(ctx context.Context, bankID string) (domain.Bank, error)
}

// ScoreKind maps a score band to the message kind used to render it.
func ScoreKind(band domain.Band) MessageKind {
	switch band {
	case domain.BandHigh:
		return KindScoreHigh
	case domain.BandLow:
		return KindScoreLow
	default:
		return KindScoreMid
	}
}
