// Package runner builds a solution and runs it against puzzle test cases.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"

	"github.com/coclash/coclash/clash"
)

// Outcome classifies one test run.
type Outcome int

const (
	// Success: stdout matched the expected output. A run that prints the
	// right output counts as a pass even if it then crashes or times out.
	Success Outcome = iota
	// WrongOutput: the command ran to completion but printed the wrong thing.
	WrongOutput
	// RuntimeError: the command exited nonzero before producing the output.
	RuntimeError
	// Timeout: the command was killed at the deadline without the output.
	Timeout
	// UnableToRun: the command could not be started at all.
	UnableToRun
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case WrongOutput:
		return "wrong output"
	case RuntimeError:
		return "runtime error"
	case Timeout:
		return "timeout"
	case UnableToRun:
		return "unable to run"
	}
	return "unknown"
}

// Result is the outcome of one test case.
type Result struct {
	TestCase clash.TestCase
	Outcome  Outcome
	Stdout   string
	Stderr   string
	Err      error
}

func (r Result) Passed() bool { return r.Outcome == Success }

// Runner executes a solution command per test case, with an optional build
// step run once up front.
type Runner struct {
	buildCmd string
	runCmd   string
	timeout  time.Duration
	log      zerolog.Logger
}

// New returns a runner. buildCmd may be empty; timeout zero means no
// deadline.
func New(buildCmd, runCmd string, timeout time.Duration, log zerolog.Logger) *Runner {
	return &Runner{buildCmd: buildCmd, runCmd: runCmd, timeout: timeout, log: log}
}

// Build runs the build command once. A missing build command is a no-op.
func (r *Runner) Build(ctx context.Context) error {
	if strings.TrimSpace(r.buildCmd) == "" {
		return nil
	}
	words, err := shellquote.Split(r.buildCmd)
	if err != nil {
		return fmt.Errorf("build command: %w", err)
	}
	r.log.Debug().Strs("argv", words).Msg("building solution")

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("build failed: %w: %s", err, msg)
		}
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}

// RunTest executes the solution against one test case.
func (r *Runner) RunTest(ctx context.Context, tc clash.TestCase) Result {
	res := Result{TestCase: tc}

	words, err := shellquote.Split(r.runCmd)
	if err != nil || len(words) == 0 {
		res.Outcome = UnableToRun
		res.Err = fmt.Errorf("run command %q: %w", r.runCmd, err)
		return res
	}

	runCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, words[0], words[1:]...)
	cmd.Stdin = strings.NewReader(tc.TestIn)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	timedOut := errors.Is(runCtx.Err(), context.DeadlineExceeded)

	switch {
	case OutputMatches(res.Stdout, tc.TestOut):
		res.Outcome = Success
	case timedOut:
		res.Outcome = Timeout
	default:
		var exitErr *exec.ExitError
		switch {
		case errors.As(runErr, &exitErr):
			res.Outcome = RuntimeError
			res.Err = runErr
		case runErr != nil:
			res.Outcome = UnableToRun
			res.Err = runErr
		default:
			res.Outcome = WrongOutput
		}
	}

	r.log.Debug().Int("test", tc.Index).Stringer("outcome", res.Outcome).Msg("test finished")
	return res
}

// Suite runs test cases lazily in order, so a caller can stop at the first
// failure without paying for the rest.
func (r *Runner) Suite(ctx context.Context, tcs []clash.TestCase) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for _, tc := range tcs {
			if !yield(r.RunTest(ctx, tc)) {
				return
			}
		}
	}
}

// OutputMatches compares program output against the expected output.
// Line endings are normalized to LF and trailing whitespace is ignored,
// both per line and at the end.
func OutputMatches(actual, expected string) bool {
	return normalizeOutput(actual) == normalizeOutput(expected)
}

func normalizeOutput(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	out := strings.Join(lines, "\n")
	return strings.TrimRight(out, "\n")
}
