package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coclash/coclash"
	"github.com/coclash/coclash/clash"
	"github.com/coclash/coclash/store"
)

func newShowCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "show [handle]",
		Short: "Print the statement of the current clash",
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
			if raw {
				fmt.Println(c.Statement())
				return nil
			}
			printClash(c)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw statement markup")
	return cmd
}

// resolveClash loads the clash named by args[0], or the current one.
func resolveClash(s *store.Store, args []string) (*clash.Clash, error) {
	if len(args) > 0 {
		h, err := clash.ParseHandle(args[0])
		if err != nil {
			return nil, err
		}
		return s.Read(h)
	}
	h, err := s.Current()
	if err != nil {
		return nil, err
	}
	return s.Read(h)
}

// printClash renders a full statement to stdout. Reverse-only clashes have
// no usable statement, so the test cases are shown instead.
func printClash(c *clash.Clash) {
	opts := renderOptions()
	if c.IsReverseOnly() {
		markup := "<h1>" + c.Title() + "</h1>\n\n" +
			"This is a <b>reverse</b> clash: deduce the rule from the test cases below."
		fmt.Print(coclash.Render(markup, opts))
		fmt.Println()
		printTests(c, opts, false)
		return
	}

	var b strings.Builder
	b.WriteString("<h1>" + c.Title() + "</h1>\n\n")
	b.WriteString(c.Statement())
	if con := c.Constraints(); con != "" {
		b.WriteString("\n\n<h2>Constraints</h2>\n\n" + con)
	}
	if in := c.InputDescription(); in != "" {
		b.WriteString("\n\n<h2>Input</h2>\n\n" + in)
	}
	if out := c.OutputDescription(); out != "" {
		b.WriteString("\n\n<h2>Output</h2>\n\n" + out)
	}
	fmt.Print(coclash.Render(b.String(), opts))
}
