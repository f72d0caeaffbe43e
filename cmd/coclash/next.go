package main

import (
	"github.com/spf13/cobra"

	"github.com/coclash/coclash/clash"
	"github.com/coclash/coclash/store"
)

func newNextCmd() *cobra.Command {
	var fastest, shortest, reverse bool
	cmd := &cobra.Command{
		Use:   "next [handle]",
		Short: "Select the next clash and show it",
		Long: `Select a stored clash as current and print its statement. Without a
handle a random stored clash is picked; mode flags restrict the pick to
clashes supporting that mode.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.New()
			if err != nil {
				return err
			}

			var c *clash.Clash
			if len(args) > 0 {
				h, err := clash.ParseHandle(args[0])
				if err != nil {
					return err
				}
				c, err = s.Read(h)
				if err != nil {
					return err
				}
			} else {
				c, err = s.RandomWithModes(fastest, shortest, reverse)
				if err != nil {
					return err
				}
			}

			if err := s.SetCurrent(c.PublicHandle); err != nil {
				return err
			}
			printClash(c)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fastest, "fastest", false, "pick a clash supporting fastest mode")
	cmd.Flags().BoolVar(&shortest, "shortest", false, "pick a clash supporting shortest mode")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "pick a clash supporting reverse mode")
	return cmd
}
