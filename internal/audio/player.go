package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"
)

// ErrNoCommand is returned when a player has no command configured.
var ErrNoCommand = errors.New("audio: no player command configured")

// Player plays cue sounds stored as <dir>/<name>.mp3 by running an external
// command with the file path appended to its arguments.
type Player struct {
	dir     string
	command []string
	enabled bool
	logger  *zap.Logger
	// run starts cmd; when wait is true it also waits for it to exit.
	run func(cmd *exec.Cmd, wait bool) error
}

func NewPlayer(dir string, command []string, enabled bool, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{
		dir:     dir,
		command: command,
		enabled: enabled,
		logger:  logger,
		run:     runCommand,
	}
}

// Play plays the named cue. A disabled player does nothing.
func (p *Player) Play(name string, blocking bool) error {
	if !p.enabled {
		return nil
	}
	err := p.play(name, blocking)
	if err != nil {
		p.logger.Debug("play cue", zap.String("cue", name), zap.Error(err))
	}
	return err
}

func (p *Player) play(name string, blocking bool) error {
	if len(p.command) == 0 {
		return ErrNoCommand
	}
	path := p.Path(name)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	args := append(append([]string{}, p.command[1:]...), path)
	cmd := exec.CommandContext(context.Background(), p.command[0], args...)
	return p.run(cmd, blocking)
}

// Path returns the sound file used for a cue.
func (p *Player) Path(name string) string {
	return filepath.Join(p.dir, name+".mp3")
}

func runCommand(cmd *exec.Cmd, wait bool) error {
	if wait {
		return cmd.Run()
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
