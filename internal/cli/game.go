package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new round",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Player == "" {
				return fmt.Errorf("no player address: run 'blackjack auth' or pass --player")
			}

			var result GameResult
			path := "/session?player=" + url.QueryEscape(cfg.Player)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintGame(result)
			return nil
		},
	}
}

func newHitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hit",
		Short: "Draw another card",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAction("hit")
		},
	}
}

func newStandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stand",
		Short: "Stand and let the dealer play out",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAction("stand")
		},
	}
}

func postAction(action string) error {
	if cfg.Player == "" {
		return fmt.Errorf("no player address: run 'blackjack auth' or pass --player")
	}

	var result GameResult
	body := SessionRequest{
		Action: action,
		Player: cfg.Player,
	}
	if err := client.Post("/session", body, &result); err != nil {
		return err
	}

	out := NewOutput(cfg.Output)
	out.PrintGame(result)
	return nil
}
