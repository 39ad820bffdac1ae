package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tiwariParth/clean-todo-cli/internal/app"
	"github.com/tiwariParth/clean-todo-cli/internal/config"
	"github.com/tiwariParth/clean-todo-cli/internal/logger"
	"github.com/tiwariParth/clean-todo-cli/internal/storage/file"
	"github.com/tiwariParth/clean-todo-cli/internal/ui"
)

// ErrCommandFailed is returned by the root command when a one-shot command
// fails. The reason has already been printed.
var ErrCommandFailed = errors.New("command failed")

// ReaderFactory opens the line reader for the interactive shell.
type ReaderFactory func(prompt string) (LineReader, error)

type rootOptions struct {
	forceCLI   bool
	dataFile   string
	configPath string
	verbose    bool
	noColor    bool
}

// NewRootCommand builds the todo command. newReader may be nil, in which
// case the shell reads from the terminal via readline.
func NewRootCommand(newReader ReaderFactory) *cobra.Command {
	if newReader == nil {
		newReader = func(prompt string) (LineReader, error) {
			rl, err := NewReadline(prompt)
			if err != nil {
				return nil, err
			}
			return rl, nil
		}
	}

	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "todo [command] [args...]",
		Short: "Clean Todo CLI - a personal task list",
		Long: `Clean Todo CLI keeps a personal task list in a local JSON file.

Run without arguments to start the interactive shell, or pass a single
command to run it once:

  todo add Buy groceries
  todo list
  todo complete 1
  todo remove 2
  todo --cli help`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Global flags are split off by splitGlobalFlags, so that an
		// unrecognized leading token reaches the dispatcher as a command.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			global, rest := splitGlobalFlags(cmd.Flags(), args)
			if err := cmd.Flags().Parse(global); err != nil {
				return err
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			return run(cmd, opts, newReader, rest)
		},
	}

	flags := cmd.Flags()
	// Flags are only recognized before the command, so "todo add -x" keeps
	// "-x" as part of the description.
	flags.SetInterspersed(false)
	flags.BoolVar(&opts.forceCLI, "cli", false, "run the next argument as a single command, even with no arguments")
	flags.StringVar(&opts.dataFile, "file", config.New().DataFile, "path of the tasks data file")
	flags.StringVar(&opts.configPath, "config", "", "path of a YAML config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log storage and command details to stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

// splitGlobalFlags returns the leading arguments that are known flags of fs,
// with their values, and the arguments from the command on. The first token
// that is not a known flag starts the command even when it begins with a
// dash, so "todo --bogus" runs the unknown command "--bogus". A value flag
// with nothing after it is treated the same way.
func splitGlobalFlags(fs *pflag.FlagSet, args []string) (global, rest []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args[:i], args[i+1:]
		}
		flag, inline := lookupFlag(fs, arg)
		if flag == nil {
			return args[:i], args[i:]
		}
		if inline || flag.NoOptDefVal != "" {
			continue
		}
		if i+1 == len(args) {
			return args[:i], args[i:]
		}
		i++
	}
	return args, nil
}

// lookupFlag finds the flag named by arg ("--name", "--name=value" or "-n").
// inline reports whether arg carries its own value.
func lookupFlag(fs *pflag.FlagSet, arg string) (flag *pflag.Flag, inline bool) {
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		name, _, found := strings.Cut(arg[2:], "=")
		return fs.Lookup(name), found
	case strings.HasPrefix(arg, "-") && len(arg) == 2 && arg != "--":
		return fs.ShorthandLookup(arg[1:]), false
	}
	return nil, false
}

func (o *rootOptions) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.New()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("file") {
		cfg.DataFile = o.dataFile
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	if o.noColor {
		cfg.NoColor = true
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, opts *rootOptions, newReader ReaderFactory, args []string) error {
	cfg, err := opts.load(cmd)
	if err != nil {
		return err
	}

	level, _ := logger.ParseLevel(cfg.LogLevel)
	logger.SetLevel(level)
	if cfg.NoColor {
		ui.DisableColor()
	}

	ctx := cmd.Context()
	out := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	tasks := app.New(file.New(cfg.DataFile), out)
	dispatcher := NewDispatcher(tasks, out)
	logger.Debug(ctx, "starting", "data_file", cfg.DataFile, "args", len(args), "cli", opts.forceCLI)

	switch {
	case opts.forceCLI && len(args) == 0:
		out.Println(ui.Cyan("🚀 Welcome to Clean Todo CLI!"))
		PrintUsage(out.Out)
		return nil

	case !opts.forceCLI && len(args) == 0:
		out.Println(ui.Cyan("🚀 Welcome to Clean Todo CLI!"))
		out.Println("Starting interactive mode...")
		out.Println()

		reader, err := newReader(cfg.Prompt)
		if err != nil {
			return fmt.Errorf("failed to start interactive mode: %w", err)
		}
		return NewShell(reader, dispatcher, tasks, out).Run(ctx)
	}

	// One-shot: the arguments come pre-split from the OS and are passed on
	// without quote handling.
	if dispatcher.Dispatch(ctx, strings.ToLower(args[0]), args[1:]) == Failed {
		return ErrCommandFailed
	}
	return nil
}
