package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/coclash/coclash"
	"github.com/coclash/coclash/runner"
	"github.com/coclash/coclash/store"
)

func newRunCmd() *cobra.Command {
	var (
		buildCommand   string
		command        string
		timeoutSeconds int
		ignoreFailures bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run your solution against the test cases of the current clash",
		Long: `Run the solution command once per test case with the test input on stdin
and compare stdout against the expected output. Trailing whitespace and
line-ending differences are ignored; a solution that prints the right
output passes even if it then crashes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.New()
			if err != nil {
				return err
			}
			c, err := resolveClash(s, nil)
			if err != nil {
				return err
			}

			build := firstNonEmpty(buildCommand, cfg.Run.BuildCommand)
			run := firstNonEmpty(command, cfg.Run.Command)
			if run == "" {
				return errors.New("no run command: pass --command or set run.command in the config")
			}
			if !cmd.Flags().Changed("timeout") {
				timeoutSeconds = cfg.Run.TimeoutSeconds
			}

			r := runner.New(build, run, time.Duration(timeoutSeconds)*time.Second, log.Logger)
			if err := r.Build(cmd.Context()); err != nil {
				return err
			}

			opts := renderOptions()
			st := opts.Theme.Styles()
			failed, total := 0, 0
			for res := range r.Suite(cmd.Context(), c.Testcases()) {
				total++
				if res.Passed() {
					fmt.Printf("%s %s\n", paint("PASS", st.Success, opts.Color), res.TestCase.DisplayTitle())
					continue
				}
				failed++
				fmt.Printf("%s %s (%s)\n", paint("FAIL", st.Failure, opts.Color),
					res.TestCase.DisplayTitle(), res.Outcome)
				printFailure(res, st, opts.Color)
				if !ignoreFailures {
					break
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d tests failed", failed, total)
			}
			fmt.Printf("all %d tests passed\n", total)
			return nil
		},
	}
	cmd.Flags().StringVar(&buildCommand, "build-command", "", "command run once before the tests")
	cmd.Flags().StringVar(&command, "command", "", "command run per test case")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 5, "per-test timeout in seconds (0 = none)")
	cmd.Flags().BoolVar(&ignoreFailures, "ignore-failures", false, "keep running after a failed test")
	return cmd
}

func printFailure(res runner.Result, st coclash.Styles, color bool) {
	fmt.Println(paint("expected:", st.Title, color))
	fmt.Printf("%s%s%s\n", ifColor(st.Output.Prefix, color),
		coclash.ShowWhitespace(res.TestCase.TestOut, st.Output, st.Whitespace, color),
		ifColor(coclash.Reset, color))
	fmt.Println(paint("got:", st.Title, color))
	fmt.Printf("%s%s%s\n", ifColor(st.Failure.Prefix, color),
		coclash.ShowWhitespace(res.Stdout, st.Failure, st.Whitespace, color),
		ifColor(coclash.Reset, color))
	if res.Stderr != "" {
		fmt.Println(paint("stderr:", st.Title, color))
		fmt.Print(res.Stderr)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
