package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameJoinCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameSubmitCmd())
	cmd.AddCommand(newGameWinnerCmd())
	cmd.AddCommand(newGameKickCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameResult

			if err := client.Post("/api/game", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameJoinCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "join <game-id>",
		Short: "Join a game and save the player token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": name}
			var result JoinResult

			if err := client.Post(fmt.Sprintf("/api/game/%s/player", args[0]), req, &result); err != nil {
				return err
			}

			// Save token so later commands act as this player
			if err := cfg.SaveToken(result.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
			client.SetToken(result.Token)

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameResult

			if err := client.Get(fmt.Sprintf("/api/game/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <game-id>",
		Short: "Start the game (VIP only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameResult

			if err := client.Post(fmt.Sprintf("/api/game/%s/start", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSubmitCmd() *cobra.Command {
	var card string

	cmd := &cobra.Command{
		Use:   "submit <game-id>",
		Short: "Submit a card for the current round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"card": card}
			var result GameResult

			if err := client.Post(fmt.Sprintf("/api/game/%s/card", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&card, "card", "", "Card text (required)")
	_ = cmd.MarkFlagRequired("card")

	return cmd
}

func newGameWinnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "winner <game-id> <player-id>",
		Short: "Pick the round winner (cardzar only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"winner_id": args[1]}
			var result GameResult

			if err := client.Post(fmt.Sprintf("/api/game/%s/winner", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameKickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kick <game-id> <player-id>",
		Short: "Remove a player from the game (VIP only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/game/%s/player/%s", args[0], args[1])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Player removed")
			return nil
		},
	}
}
