package terminal

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"trivia/internal/app"
)

// clearSequence moves the cursor home and erases the screen.
const clearSequence = "\033[H\033[2J"

var (
	colorYellow = lipgloss.Color("11")
	colorCyan   = lipgloss.Color("14")
	colorGreen  = lipgloss.Color("10")
	colorRed    = lipgloss.Color("9")
	colorWhite  = lipgloss.Color("7")
)

// CuePlayer plays a named audio cue.
type CuePlayer interface {
	Play(name string, blocking bool) error
}

// Console renders game messages to a terminal writer.
type Console struct {
	out     io.Writer
	player  CuePlayer
	noColor bool
	styles  map[app.MessageKind]lipgloss.Style
}

// NewConsole builds a console writing to out. player may be nil.
func NewConsole(out io.Writer, player CuePlayer, noColor bool) *Console {
	return &Console{
		out:     out,
		player:  player,
		noColor: noColor,
		styles:  defaultStyles(),
	}
}

func defaultStyles() map[app.MessageKind]lipgloss.Style {
	base := lipgloss.NewStyle()
	return map[app.MessageKind]lipgloss.Style{
		app.KindTitle:     base.Foreground(colorYellow).Bold(true),
		app.KindQuestion:  base.Foreground(colorCyan),
		app.KindNotice:    base.Foreground(colorYellow),
		app.KindSuccess:   base.Foreground(colorGreen).Bold(true),
		app.KindFailure:   base.Foreground(colorRed),
		app.KindFatal:     base.Foreground(colorRed).Bold(true),
		app.KindEmphasis:  base.Bold(true),
		app.KindScoreLow:  base.Foreground(colorRed).Bold(true),
		app.KindScoreMid:  base.Foreground(colorWhite).Bold(true),
		app.KindScoreHigh: base.Foreground(colorGreen).Bold(true),
	}
}

// Display writes msg. Input prompts are written without a trailing newline.
func (c *Console) Display(msg app.Message) error {
	line := msg.Label + c.stylize(msg.Kind, msg.Text)
	if msg.Detail != "" {
		line += " " + msg.Detail
	}
	if msg.Kind != app.KindInput {
		line += "\n"
	}
	_, err := io.WriteString(c.out, line)
	return err
}

// PlayCue forwards to the configured player.
func (c *Console) PlayCue(name string, blocking bool) error {
	if c.player == nil {
		return nil
	}
	return c.player.Play(name, blocking)
}

// Clear erases the terminal.
func (c *Console) Clear() error {
	_, err := io.WriteString(c.out, clearSequence)
	return err
}

// Error prints a startup failure in bold red.
func (c *Console) Error(err error) {
	_ = c.Display(app.Message{Kind: app.KindFatal, Text: fmt.Sprint(err)})
}

func (c *Console) stylize(kind app.MessageKind, text string) string {
	if c.noColor || text == "" {
		return text
	}
	style, ok := c.styles[kind]
	if !ok {
		return text
	}
	return style.Render(text)
}
