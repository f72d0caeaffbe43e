package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/coclash/coclash/clash"
	"github.com/coclash/coclash/fetch"
	"github.com/coclash/coclash/store"
)

func newFetchCmd() *cobra.Command {
	var endpoint string
	cmd := &cobra.Command{
		Use:   "fetch <handle>...",
		Short: "Fetch clashes by public handle and store them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.New()
			if err != nil {
				return err
			}
			client := fetch.NewClient(endpoint, log.Logger)

			for _, arg := range args {
				h, err := clash.ParseHandle(arg)
				if err != nil {
					return err
				}
				raw, err := client.Clash(cmd.Context(), h)
				if err != nil {
					return err
				}
				if err := s.Write(h, raw); err != nil {
					return err
				}
				fmt.Printf("fetched %s\n", h)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "override the contribution API endpoint")
	_ = cmd.Flags().MarkHidden("endpoint")
	return cmd
}
