package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tiwariParth/clean-todo-cli/internal/app"
	"github.com/tiwariParth/clean-todo-cli/internal/logger"
	"github.com/tiwariParth/clean-todo-cli/internal/ui"
)

// ErrUnknownCommand is reported for command names the dispatcher does not know.
var ErrUnknownCommand = errors.New("unknown command")

// Result is the outcome of dispatching one command.
type Result int

const (
	// Continue means the command ran successfully.
	Continue Result = iota
	// Failed means the command was rejected or could not complete. The
	// reason has already been printed.
	Failed
	// ExitRequested means the user asked to leave the interactive shell.
	ExitRequested
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Failed:
		return "failed"
	case ExitRequested:
		return "exit"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// TaskService is the set of task operations the dispatcher drives.
type TaskService interface {
	AddTask(ctx context.Context, description string) error
	ListTasks(ctx context.Context) error
	CompleteTask(ctx context.Context, taskNumber string) error
	RemoveTask(ctx context.Context, taskNumber string) error
}

// Dispatcher maps command names to task operations. The interactive shell
// and one-shot invocations both go through Dispatch.
type Dispatcher struct {
	tasks TaskService
	out   *ui.Printer
}

// NewDispatcher creates a Dispatcher
func NewDispatcher(tasks TaskService, out *ui.Printer) *Dispatcher {
	return &Dispatcher{tasks: tasks, out: out}
}

// Dispatch runs a single command. Errors from the task operations are
// printed here and turned into Failed; they never reach the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, command string, args []string) Result {
	command = strings.ToLower(command)
	logger.Debug(ctx, "dispatch", "command", command, "args", len(args))

	switch command {
	case "add":
		if len(args) == 0 {
			d.out.Error("Please provide a task description")
			return Failed
		}
		return d.report(d.tasks.AddTask(ctx, strings.Join(args, " ")))

	case "list":
		return d.report(d.tasks.ListTasks(ctx))

	case "complete":
		if len(args) == 0 {
			d.out.Error("Please provide a task number")
			return Failed
		}
		return d.report(d.tasks.CompleteTask(ctx, args[0]))

	case "remove":
		if len(args) == 0 {
			d.out.Error("Please provide a task number")
			return Failed
		}
		return d.report(d.tasks.RemoveTask(ctx, args[0]))

	case "help":
		PrintUsage(d.out.Out)
		return Continue

	case "exit", "quit", "q":
		return ExitRequested

	default:
		d.out.Error("%v %q", ErrUnknownCommand, command)
		PrintUsage(d.out.Out)
		return Failed
	}
}

func (d *Dispatcher) report(err error) Result {
	if err == nil {
		return Continue
	}
	if app.IsWarning(err) {
		d.out.Warn("%s", capitalize(err.Error()))
	} else {
		d.out.Error("%s", capitalize(err.Error()))
	}
	return Failed
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// PrintUsage writes the list of interactive commands
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.Bold("📚 Available Commands:"))
	fmt.Fprintln(w, `  add "Task description"       - Add a new task`)
	fmt.Fprintln(w, "  list                         - List all tasks")
	fmt.Fprintln(w, "  complete <task-number>       - Mark task as completed")
	fmt.Fprintln(w, "  remove <task-number>         - Remove a task")
	fmt.Fprintln(w, "  help                         - Show this help message")
	fmt.Fprintln(w, "  exit, quit, q                - Exit the application")
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.Bold("💡 Examples:"))
	fmt.Fprintln(w, `  add "Buy groceries"`)
	fmt.Fprintln(w, "  complete 1")
	fmt.Fprintln(w, "  remove 2")
}
