package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coclash/coclash/store"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the store location, puzzle count and current clash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.New()
			if err != nil {
				return err
			}
			n, err := s.Count()
			if err != nil {
				return err
			}
			fmt.Printf("store: %s\n", s.Dir())
			fmt.Printf("stored clashes: %d\n", n)

			h, err := s.Current()
			if errors.Is(err, store.ErrNoCurrent) {
				fmt.Println("current clash: none")
				return nil
			}
			if err != nil {
				return err
			}
			c, err := s.Read(h)
			if err != nil {
				return err
			}
			fmt.Printf("current clash: %s (%s)\n", c.Title(), h)
			return nil
		},
	}
}
