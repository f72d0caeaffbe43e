package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/coclash/coclash/clash"
	"github.com/coclash/coclash/store"
)

func newJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json [handle]",
		Short: "Print the stored JSON of the current clash",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.New()
			if err != nil {
				return err
			}
			var h clash.PublicHandle
			if len(args) > 0 {
				h, err = clash.ParseHandle(args[0])
			} else {
				h, err = s.Current()
			}
			if err != nil {
				return err
			}
			raw, err := s.RawJSON(h)
			if err != nil {
				return err
			}
			_, _ = os.Stdout.Write(raw)
			if len(raw) > 0 && raw[len(raw)-1] != '\n' {
				_, _ = os.Stdout.Write([]byte{'\n'})
			}
			return nil
		},
	}
}
