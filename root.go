package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"gridpath/pkg/engine/search"
	"gridpath/pkg/game/config"
	"gridpath/pkg/game/devtools"
	"gridpath/pkg/game/generator"
	"gridpath/pkg/game/i18n"
	"gridpath/pkg/game/renderer"
	"gridpath/pkg/game/renderer/tui"
	"gridpath/pkg/game/state"
)

// Process exit codes
const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitNoPath    = 2
	ExitCancelled = 130
)

var version = "dev"

var errBadCoord = errors.New("gridpath: coordinate must be row,col")

// exitCodeError carries a non-zero exit code for an outcome that is not a
// failure of the command itself.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string {
	return e.msg
}

// ExitCode maps err to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ec *exitCodeError
	if errors.As(err, &ec) {
		return ec.code
	}
	return ExitError
}

// runOptions holds the flags of the run command
type runOptions struct {
	size      int
	width     int
	start     string
	end       string
	barriers  []string
	layout    string
	generator string
	seed      int64
	snapshot  string
	delay     time.Duration
	animate   bool
	noColor   bool
	envFile   string
	verbose   bool
}

// Execute runs the root command with signal handling
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridpath",
		Short: "gridpath - A* path finding on a square grid",
		Long: `gridpath finds the shortest 4-connected path between a start and an end
cell on a square grid with barriers, using A* with the Manhattan heuristic.

The grid comes from --layout or from --start, --end and --barrier flags.
With --animate every search step is drawn to the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("gridpath %s\n", version)
		},
	})
	return rootCmd
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search for a path and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.size, "size", config.DefaultSize, "rows (and columns) in the grid")
	f.IntVar(&opts.width, "width", config.DefaultWidth, "pixel width of the drawing area")
	f.StringVar(&opts.start, "start", "", "start cell as row,col")
	f.StringVar(&opts.end, "end", "", "end cell as row,col")
	f.StringArrayVar(&opts.barriers, "barrier", nil, "barrier cell as row,col (repeatable)")
	f.StringVar(&opts.layout, "layout", "", "read the grid from a layout file")
	f.StringVar(&opts.generator, "generator", "", fmt.Sprintf("lay out barriers with a generator %v", generator.Names()))
	f.Int64Var(&opts.seed, "seed", 0, "generator seed (0 picks one from the clock)")
	f.StringVar(&opts.snapshot, "snapshot", "", "also write the final board to this HTML file")
	f.DurationVar(&opts.delay, "delay", 0, "pause after each animated step")
	f.BoolVar(&opts.animate, "animate", false, "draw every search step")
	f.BoolVar(&opts.noColor, "no-color", false, "disable ANSI colors")
	f.StringVar(&opts.envFile, "env-file", "", "load settings from this .env file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log search details to stderr")
	return cmd
}

func runSearch(cmd *cobra.Command, opts *runOptions) error {
	runID := uuid.New().String()
	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger = log.New(cmd.ErrOrStderr(), fmt.Sprintf("[gridpath %s] ", runID[:8]), log.LstdFlags)
	}

	cfg, err := loadConfig(cmd, opts, logger)
	if err != nil {
		return err
	}
	if cfg.NoColor {
		color.Enable = false
	}
	if cfg.LocaleFile != "" {
		data, err := os.ReadFile(cfg.LocaleFile)
		if err != nil {
			return fmt.Errorf("gridpath: reading locale: %w", err)
		}
		i18n.Load(data)
	}

	b, err := buildBoard(opts, cfg, logger)
	if err != nil {
		return err
	}
	logger.Printf("[RUN] [INFO] %dx%d grid, start=%v end=%v", b.Grid().Size(), b.Grid().Size(), b.Start(), b.End())

	r := tui.New(cmd.OutOrStdout())
	r.Init()

	var onStep search.StepFunc
	if opts.animate {
		onStep = renderer.StepFunc(r, b, cfg.StepDelay)
	}

	res, err := b.Solve(cmd.Context(), onStep, search.WithLogger(logger))
	if err != nil {
		return err
	}

	var outcomeErr *exitCodeError
	switch res.Outcome {
	case search.Found:
		b.AddMessage(r.StyleText(i18n.Get("PATH_FOUND", res.Cost, res.Expanded), renderer.StyleFound))
	case search.NotFound:
		msg := i18n.Get("NO_PATH", res.Expanded)
		b.AddMessage(r.StyleText(msg, renderer.StyleDenied))
		outcomeErr = &exitCodeError{code: ExitNoPath, msg: msg}
	case search.Cancelled:
		msg := i18n.Get("SEARCH_CANCELLED", res.Steps)
		b.AddMessage(r.StyleText(msg, renderer.StyleSubtle))
		outcomeErr = &exitCodeError{code: ExitCancelled, msg: msg}
	}
	renderer.Show(r, b)

	if opts.snapshot != "" {
		path, err := devtools.SaveSnapshotHTML(opts.snapshot, b, i18n.Get("TITLE"))
		if err != nil {
			return fmt.Errorf("gridpath: writing snapshot: %w", err)
		}
		logger.Printf("[RUN] [INFO] snapshot written to %s", path)
	}

	if outcomeErr != nil {
		return outcomeErr
	}
	return nil
}

// loadConfig reads the environment and lets explicitly set flags win
func loadConfig(cmd *cobra.Command, opts *runOptions, logger *log.Logger) (config.Config, error) {
	var files []string
	if opts.envFile != "" {
		files = append(files, opts.envFile)
	}
	cfg, err := config.Load(logger, files...)
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("size") {
		cfg.Size = opts.size
	}
	if f.Changed("width") {
		cfg.Width = opts.width
	}
	if f.Changed("delay") {
		cfg.StepDelay = opts.delay
	}
	if f.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}
	return cfg, cfg.Validate()
}

// buildBoard loads the layout file if one is given, runs the generator,
// then applies the start, end and barrier flags on top.
func buildBoard(opts *runOptions, cfg config.Config, logger *log.Logger) (*state.Board, error) {
	var (
		b   *state.Board
		err error
	)
	if opts.layout != "" {
		f, err := os.Open(opts.layout)
		if err != nil {
			return nil, fmt.Errorf("gridpath: opening layout: %w", err)
		}
		defer f.Close()
		b, err = devtools.LoadLayout(f, cfg.CellSize())
		if err != nil {
			return nil, fmt.Errorf("gridpath: %s: %w", opts.layout, err)
		}
	} else {
		b, err = state.NewBoardSized(cfg.Size, cfg.CellSize())
		if err != nil {
			return nil, err
		}
	}

	if opts.generator != "" {
		gen, err := generator.Lookup(opts.generator)
		if err != nil {
			return nil, err
		}
		seed := opts.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		logger.Printf("[RUN] [INFO] generator %q seed %d", gen.Name(), seed)
		if err := gen.Generate(b, rand.New(rand.NewSource(seed))); err != nil {
			return nil, err
		}
	}

	for _, raw := range opts.barriers {
		row, col, err := parseCoord(raw)
		if err != nil {
			return nil, err
		}
		if err := b.SetBarrier(b.Grid().GetCell(row, col)); err != nil {
			return nil, fmt.Errorf("gridpath: --barrier %s: %w", raw, err)
		}
	}
	if opts.start != "" {
		row, col, err := parseCoord(opts.start)
		if err != nil {
			return nil, err
		}
		if err := b.SetStart(b.Grid().GetCell(row, col)); err != nil {
			return nil, fmt.Errorf("gridpath: --start %s: %w", opts.start, err)
		}
	}
	if opts.end != "" {
		row, col, err := parseCoord(opts.end)
		if err != nil {
			return nil, err
		}
		if err := b.SetEnd(b.Grid().GetCell(row, col)); err != nil {
			return nil, fmt.Errorf("gridpath: --end %s: %w", opts.end, err)
		}
	}
	return b, nil
}

// parseCoord parses "row,col"
func parseCoord(s string) (row, col int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	row, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	col, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	return row, col, nil
}
