package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coclash/coclash/store"
	"github.com/coclash/coclash/stub"
)

func newGenerateStubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-stub <language>",
		Short: "Generate a solution scaffold for the current clash",
		Long: "Generate input-reading boilerplate from the clash's stub generator.\n" +
			"Supported languages: " + strings.Join(stub.Languages(), ", ") + ".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.New()
			if err != nil {
				return err
			}
			c, err := resolveClash(s, nil)
			if err != nil {
				return err
			}
			gen := c.StubGenerator()
			if gen == "" {
				return errors.New("clash has no stub generator")
			}
			parsed, err := stub.Parse(gen)
			if err != nil {
				return fmt.Errorf("stub generator: %w", err)
			}
			out, err := stub.Generate(parsed, args[0])
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}
