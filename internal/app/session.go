package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"trivia/internal/domain"
)

type sessionState int

const (
	stateAwaitingInput sessionState = iota
	stateHintGiven
	stateCorrect
	stateExhausted
)

// session holds the mutable state of a single question. It lives for one
// RunSession call only.
type session struct {
	question    domain.Question
	number      int
	maxAttempts int
	in          LineReader
	ui          Presenter

	state     sessionState
	attempts  int
	hintShown bool
}

// RunSession asks one question until it is answered correctly or maxAttempts
// are used. It returns the attempt of the correct answer, or domain.Unanswered.
// A hint request counts as an attempt. If the player quits, or input ends,
// the returned error wraps domain.ErrAborted and the outcome is meaningless.
func RunSession(ctx context.Context, question domain.Question, number, maxAttempts int, in LineReader, ui Presenter) (domain.Outcome, error) {
	if maxAttempts < 1 {
		return domain.Unanswered, fmt.Errorf("max attempts must be positive, got %d", maxAttempts)
	}
	s := &session{
		question:    question,
		number:      number,
		maxAttempts: maxAttempts,
		in:          in,
		ui:          ui,
		state:       stateAwaitingInput,
	}
	return s.run(ctx)
}

func (s *session) run(ctx context.Context) (domain.Outcome, error) {
	for s.attempts < s.maxAttempts {
		s.showQuestion()

		answer, err := s.readAnswer(ctx)
		if err != nil {
			return domain.Unanswered, err
		}

		s.attempts++
		if isHintKeyword(answer) {
			s.giveHint()
			continue
		}
		if MatchesAnswer(answer, s.question.Answers) {
			s.state = stateCorrect
			s.say(Message{Kind: KindSuccess, Text: "You are right!", Detail: attemptsLabel(s.attempts)})
			s.cue(CueSuccess, true)
			return domain.Outcome(s.attempts), nil
		}
		s.wrongAnswer()
	}

	s.state = stateExhausted
	s.say(Message{Kind: KindFatal, Text: fmt.Sprintf("You failed to give the right answer in %d attempts", s.maxAttempts)})
	s.cue(CueExhausted, true)
	return domain.Unanswered, nil
}

func (s *session) showQuestion() {
	s.say(Message{Kind: KindQuestion, Label: fmt.Sprintf("\nQuestion #%d: ", s.number), Text: s.question.Prompt})
	if !s.hintShown {
		s.say(Message{Kind: KindPlain, Text: `Type "help" for a clue (will be considered as an attempt)`})
	}
}

// readAnswer blocks until a non-empty line arrives. Empty lines do not
// consume an attempt.
func (s *session) readAnswer(ctx context.Context) (string, error) {
	for {
		s.say(Message{Kind: KindInput, Text: fmt.Sprintf("Your answer (%d/%d): ", s.attempts+1, s.maxAttempts)})
		line, err := s.in.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return "", fmt.Errorf("%w: %w", domain.ErrAborted, err)
			}
			return "", fmt.Errorf("read answer: %w", err)
		}

		answer := NormalizeAnswer(line)
		switch {
		case answer == "":
			s.say(Message{Kind: KindPlain, Text: "You didn't input anything. Please enter your answer. To quit enter 'exit'"})
		case isExitKeyword(answer):
			s.say(Message{Kind: KindEmphasis, Label: "\n", Text: "Quitting game", Detail: "\n"})
			return "", domain.ErrAborted
		default:
			return answer, nil
		}
	}
}

func (s *session) giveHint() {
	if s.hintShown {
		s.say(Message{Kind: KindNotice, Text: "You've already asked for the clue before..."})
	}
	s.say(Message{Kind: KindPlain, Label: "Hint: ", Text: s.question.Hint})
	s.cue(CueHint, false)
	s.hintShown = true
	s.state = stateHintGiven
}

func (s *session) wrongAnswer() {
	if s.attempts < s.maxAttempts {
		s.say(Message{Kind: KindFailure, Text: "Wrong answer", Detail: fmt.Sprintf("(attempt %d out of %d)", s.attempts, s.maxAttempts)})
		s.cue(CueFail, false)
		return
	}
	s.say(Message{Kind: KindFailure, Text: "Wrong answer"})
}

func (s *session) say(msg Message) {
	_ = s.ui.Display(msg)
}

func (s *session) cue(name string, blocking bool) {
	_ = s.ui.PlayCue(name, blocking)
}

func attemptsLabel(attempts int) string {
	if attempts == 1 {
		return "(1 attempt)"
	}
	return fmt.Sprintf("(%d attempts)", attempts)
}
