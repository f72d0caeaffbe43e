package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coclash/coclash"
	"github.com/coclash/coclash/clash"
	"github.com/coclash/coclash/store"
)

func newShowTestsCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "showtests [handle]",
		Short: "Print the test cases of the current clash",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.New()
			if err != nil {
				return err
			}
			c, err := resolveClash(s, args)
			if err != nil {
				return err
			}
			printTests(c, renderOptions(), all)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include validator test cases")
	return cmd
}

// printTests writes test inputs and expected outputs with whitespace made
// visible, since trailing spaces and newlines decide pass or fail.
func printTests(c *clash.Clash, opts coclash.Options, all bool) {
	st := opts.Theme.Styles()
	first := true
	for _, tc := range c.Testcases() {
		if tc.IsValidator && !all {
			continue
		}
		if !first {
			fmt.Println()
		}
		first = false

		fmt.Println(paint(tc.DisplayTitle(), st.Title, opts.Color))
		fmt.Printf("%s%s%s\n", ifColor(st.Input.Prefix, opts.Color),
			coclash.ShowWhitespace(tc.TestIn, st.Input, st.Whitespace, opts.Color),
			ifColor(coclash.Reset, opts.Color))
		fmt.Println(paint("expected:", st.Title, opts.Color))
		fmt.Printf("%s%s%s\n", ifColor(st.Output.Prefix, opts.Color),
			coclash.ShowWhitespace(tc.TestOut, st.Output, st.Whitespace, opts.Color),
			ifColor(coclash.Reset, opts.Color))
	}
}

func ifColor(s string, color bool) string {
	if !color {
		return ""
	}
	return s
}
