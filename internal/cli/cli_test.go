package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tiwariParth/clean-todo-cli/internal/app"
	"github.com/tiwariParth/clean-todo-cli/internal/models"
	"github.com/tiwariParth/clean-todo-cli/internal/storage/memory"
	"github.com/tiwariParth/clean-todo-cli/internal/ui"
)

func TestMain(m *testing.M) {
	ui.DisableColor()
	os.Exit(m.Run())
}

// --- fakes ---

type call struct {
	op  string
	arg string
}

type fakeTasks struct {
	calls []call
	err   error
}

func (f *fakeTasks) AddTask(_ context.Context, description string) error {
	f.calls = append(f.calls, call{"add", description})
	return f.err
}

func (f *fakeTasks) ListTasks(context.Context) error {
	f.calls = append(f.calls, call{"list", ""})
	return f.err
}

func (f *fakeTasks) CompleteTask(_ context.Context, n string) error {
	f.calls = append(f.calls, call{"complete", n})
	return f.err
}

func (f *fakeTasks) RemoveTask(_ context.Context, n string) error {
	f.calls = append(f.calls, call{"remove", n})
	return f.err
}

func newTestPrinter() (*ui.Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return ui.NewPrinter(&out, &errOut), &out, &errOut
}

// --- tests ---

func TestDispatch_Routing(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		want    Result
		calls   []call
	}{
		{name: "add joins args", command: "add", args: []string{"Buy", "oat", "milk"}, want: Continue, calls: []call{{"add", "Buy oat milk"}}},
		{name: "add single arg", command: "add", args: []string{"Buy milk"}, want: Continue, calls: []call{{"add", "Buy milk"}}},
		{name: "add without args", command: "add", want: Failed},
		{name: "list ignores args", command: "list", args: []string{"extra"}, want: Continue, calls: []call{{"list", ""}}},
		{name: "complete uses first arg", command: "complete", args: []string{"2", "3"}, want: Continue, calls: []call{{"complete", "2"}}},
		{name: "complete without args", command: "complete", want: Failed},
		{name: "remove uses first arg", command: "remove", args: []string{"1"}, want: Continue, calls: []call{{"remove", "1"}}},
		{name: "remove without args", command: "remove", want: Failed},
		{name: "help", command: "help", args: []string{"me"}, want: Continue},
		{name: "exit", command: "exit", want: ExitRequested},
		{name: "quit", command: "quit", want: ExitRequested},
		{name: "q", command: "q", want: ExitRequested},
		{name: "case insensitive", command: "LiSt", want: Continue, calls: []call{{"list", ""}}},
		{name: "unknown", command: "bogus", want: Failed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeTasks{}
			out, _, _ := newTestPrinter()
			d := NewDispatcher(fake, out)

			if got := d.Dispatch(context.Background(), tt.command, tt.args); got != tt.want {
				t.Errorf("Dispatch(%q, %q) = %v, want %v", tt.command, tt.args, got, tt.want)
			}
			if diff := cmp.Diff(tt.calls, fake.calls, cmp.AllowUnexported(call{})); diff != "" {
				t.Errorf("calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDispatch_MissingArgumentMessages(t *testing.T) {
	out, _, errOut := newTestPrinter()
	d := NewDispatcher(&fakeTasks{}, out)

	d.Dispatch(context.Background(), "add", nil)
	d.Dispatch(context.Background(), "complete", nil)

	got := errOut.String()
	for _, want := range []string{"Error: Please provide a task description", "Error: Please provide a task number"} {
		if !strings.Contains(got, want) {
			t.Errorf("stderr %q missing %q", got, want)
		}
	}
}

func TestDispatch_UnknownCommandDoesNotTouchStorage(t *testing.T) {
	store := memory.New()
	out, stdout, errOut := newTestPrinter()
	d := NewDispatcher(app.New(store, out), out)

	if got := d.Dispatch(context.Background(), "bogus", nil); got != Failed {
		t.Fatalf("Dispatch(bogus) = %v, want %v", got, Failed)
	}
	if store.Reads() != 0 || store.Writes() != 0 {
		t.Errorf("storage touched: reads=%d writes=%d", store.Reads(), store.Writes())
	}
	if !strings.Contains(errOut.String(), `unknown command "bogus"`) {
		t.Errorf("stderr = %q, want unknown command error", errOut.String())
	}
	if !strings.Contains(stdout.String(), "Available Commands") {
		t.Errorf("usage not printed: %q", stdout.String())
	}
}

func TestDispatch_QuitDoesNotTouchStorage(t *testing.T) {
	store := memory.New()
	out, _, _ := newTestPrinter()
	d := NewDispatcher(app.New(store, out), out)

	if got := d.Dispatch(context.Background(), "quit", []string{}); got != ExitRequested {
		t.Fatalf("Dispatch(quit) = %v, want %v", got, ExitRequested)
	}
	if store.Reads() != 0 {
		t.Errorf("quit read storage")
	}
}

func TestDispatch_ErrorReporting(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStdout string
		wantStderr string
	}{
		{name: "warning", err: models.ErrAlreadyCompleted, wantStdout: "⚠️  Task is already completed"},
		{name: "validation", err: app.ErrEmptyDescription, wantStderr: "Error: Task description cannot be empty"},
		{name: "other", err: errors.New("disk on fire"), wantStderr: "Error: Disk on fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, stdout, errOut := newTestPrinter()
			d := NewDispatcher(&fakeTasks{err: tt.err}, out)

			if got := d.Dispatch(context.Background(), "complete", []string{"1"}); got != Failed {
				t.Fatalf("Dispatch() = %v, want %v", got, Failed)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout %q missing %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(errOut.String(), tt.wantStderr) {
				t.Errorf("stderr %q missing %q", errOut.String(), tt.wantStderr)
			}
		})
	}
}

func TestResultString(t *testing.T) {
	for r, want := range map[Result]string{Continue: "continue", Failed: "failed", ExitRequested: "exit", Result(9): "Result(9)"} {
		if got := r.String(); got != want {
			t.Errorf("Result(%d).String() = %q, want %q", int(r), got, want)
		}
	}
}
