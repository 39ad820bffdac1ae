package cli

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/chzyer/readline"

	"github.com/tiwariParth/clean-todo-cli/internal/logger"
	"github.com/tiwariParth/clean-todo-cli/internal/ui"
)

const goodbye = "👋 Goodbye! Thanks for using Clean Todo CLI!"

// LineReader supplies lines typed at the prompt. *readline.Instance
// implements it.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// Shell is the interactive read-eval-print loop.
type Shell struct {
	reader     LineReader
	dispatcher *Dispatcher
	tasks      TaskService
	out        *ui.Printer

	closeOnce sync.Once
}

// NewShell creates a Shell reading from reader
func NewShell(reader LineReader, dispatcher *Dispatcher, tasks TaskService, out *ui.Printer) *Shell {
	return &Shell{
		reader:     reader,
		dispatcher: dispatcher,
		tasks:      tasks,
		out:        out,
	}
}

// NewReadline opens a terminal line reader with the given prompt.
func NewReadline(prompt string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// Run prints the banner and current tasks, then reads and dispatches lines
// until the user exits, input ends, or ctx is cancelled. Cancelling ctx
// closes the reader, which unblocks a pending Readline. The reader is closed
// when Run returns.
func (s *Shell) Run(ctx context.Context) error {
	defer s.close()

	s.out.Println(ui.Cyan("🚀 Welcome to Clean Todo CLI - Interactive Mode!"))
	s.out.Println(`Type "help" for available commands or "exit" to quit.`)
	s.out.Println()
	if err := s.tasks.ListTasks(ctx); err != nil {
		s.dispatcher.report(err)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.close()
		case <-done:
		}
	}()

	for {
		line, err := s.reader.Readline()
		if err != nil {
			switch {
			case errors.Is(err, readline.ErrInterrupt):
				logger.Debug(ctx, "interrupted")
			case errors.Is(err, io.EOF):
				logger.Debug(ctx, "input closed")
			default:
				if ctx.Err() == nil {
					logger.Error(ctx, err, "reading input")
				}
			}
			s.out.Println()
			s.out.Println(goodbye)
			return nil
		}

		in := ParseInput(line)
		if in.Command == "" {
			continue
		}

		if s.dispatcher.Dispatch(ctx, in.Command, in.Args) == ExitRequested {
			s.out.Println(goodbye)
			return nil
		}
		s.out.Println()
	}
}

func (s *Shell) close() {
	s.closeOnce.Do(func() {
		if err := s.reader.Close(); err != nil {
			logger.Debug(context.Background(), "closing reader", "err", err)
		}
	})
}
