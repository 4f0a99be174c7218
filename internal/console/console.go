// Package console implements the interactive local admin console: a
// line-edited prompt that hands each entered line to the CommandFunc its
// caller supplies. It does not go through the PlayerRconCommand RPC path.
package console

import (
	"strings"

	"github.com/peterh/liner"

	"github.com/ventosilenzioso/samp-server-go/pkg/logger"
)

// CommandFunc executes one admin command line and returns output to
// print back to the console.
type CommandFunc func(line string) string

// Console wraps a liner.State with history and a command dispatcher.
type Console struct {
	line    *liner.State
	execute CommandFunc
	prompt  string
}

// New returns a Console that dispatches every entered line to execute.
func New(execute CommandFunc) *Console {
	l := liner.NewLiner()
	l.SetCtrlCAborts(true)
	return &Console{line: l, execute: execute, prompt: "rcon> "}
}

// SetCompletions registers tab-completion candidates for known command
// names.
func (c *Console) SetCompletions(commands []string) {
	c.line.SetCompleter(func(line string) (completions []string) {
		for _, cmd := range commands {
			if strings.HasPrefix(cmd, line) {
				completions = append(completions, cmd)
			}
		}
		return
	})
}

// Run blocks reading lines until EOF (Ctrl-D) or Ctrl-C, dispatching
// each non-empty line to the configured CommandFunc.
func (c *Console) Run() {
	defer c.line.Close()
	for {
		input, err := c.line.Prompt(c.prompt)
		if err != nil {
			if err == liner.ErrPromptAborted || err.Error() == "EOF" {
				return
			}
			logger.Warn("console: read error: %v", err)
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)
		if out := c.execute(input); out != "" {
			logger.Info("%s", out)
		}
	}
}

// Close releases the underlying terminal state without waiting for
// Run's loop to exit, for use during shutdown.
func (c *Console) Close() error {
	return c.line.Close()
}
