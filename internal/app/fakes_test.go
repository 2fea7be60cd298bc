package app_test

import (
	"context"
	"errors"
	"io"

	"trivia/internal/app"
)

// scriptedReader replays fixed lines, then reports io.EOF.
type scriptedReader struct {
	lines []string
	reads int
}

func newScriptedReader(lines ...string) *scriptedReader {
	return &scriptedReader{lines: lines}
}

func (r *scriptedReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.reads >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.reads]
	r.reads++
	return line, nil
}

type cueCall struct {
	name     string
	blocking bool
}

// recordingPresenter captures output. With fail set, every call also errors.
type recordingPresenter struct {
	messages []app.Message
	cues     []cueCall
	clears   int
	fail     bool
}

var errPresenter = errors.New("presenter broken")

func (p *recordingPresenter) Display(msg app.Message) error {
	p.messages = append(p.messages, msg)
	if p.fail {
		return errPresenter
	}
	return nil
}

func (p *recordingPresenter) PlayCue(name string, blocking bool) error {
	p.cues = append(p.cues, cueCall{name: name, blocking: blocking})
	if p.fail {
		return errPresenter
	}
	return nil
}

func (p *recordingPresenter) Clear() error {
	p.clears++
	return nil
}

func (p *recordingPresenter) count(kind app.MessageKind) int {
	n := 0
	for _, msg := range p.messages {
		if msg.Kind == kind {
			n++
		}
	}
	return n
}

func (p *recordingPresenter) hasText(text string) bool {
	for _, msg := range p.messages {
		if msg.Text == text {
			return true
		}
	}
	return false
}

func (p *recordingPresenter) cueNames() []string {
	names := make([]string, 0, len(p.cues))
	for _, c := range p.cues {
		names = append(names, c.name)
	}
	return names
}
