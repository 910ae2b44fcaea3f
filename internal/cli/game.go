package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGamePlaceCmd())
	cmd.AddCommand(newGamePassCmd())
	cmd.AddCommand(newGameExchangeCmd())
	cmd.AddCommand(newGameRackCmd())
	cmd.AddCommand(newGameAbandonCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "create <player>...",
		Short: "Create a new game with the given players",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"language":   language,
				"player_ids": args,
			}
			var result GameState

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "en", "Letter distribution and dictionary: en, de")

	return cmd
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <game>",
		Short: "Start a created game, dealing the opening racks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result GameState

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/start", id), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game>",
		Short: "Get current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result GameState

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <game> <player> <row,col,letter>...",
		Short: "Place tiles on the board",
		Long: `Place tiles on the board. Each placement is row,col,letter, for
example 7,7,H. Prefix the letter with ? to play a blank as that
letter, for example 7,8,?E.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			player := args[1]

			placements := make([]map[string]any, 0, len(args)-2)
			for _, arg := range args[2:] {
				p, err := parsePlacement(arg)
				if err != nil {
					return err
				}
				placements = append(placements, p)
			}

			req := map[string]any{
				"player_id":  player,
				"type":       "place",
				"placements": placements,
			}
			var result MoveResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/moves", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func parsePlacement(arg string) (map[string]any, error) {
	parts := strings.SplitN(arg, ",", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid placement %q: want row,col,letter", arg)
	}

	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid row in %q: %w", arg, err)
	}

	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid col in %q: %w", arg, err)
	}

	letter := parts[2]
	blank := false
	if rest, ok := strings.CutPrefix(letter, "?"); ok {
		letter = rest
		blank = true
	}
	letter = strings.ToUpper(letter)
	if letter == "" {
		return nil, fmt.Errorf("invalid placement %q: missing letter", arg)
	}

	return map[string]any{
		"row":    row,
		"col":    col,
		"letter": letter,
		"blank":  blank,
	}, nil
}

func newGamePassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pass <game> <player>",
		Short: "Pass the turn",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			player := args[1]

			req := map[string]any{
				"player_id": player,
				"type":      "pass",
			}
			var result MoveResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/moves", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameExchangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange <game> <player> <letter>...",
		Short: "Exchange rack tiles with the bag",
		Long: `Exchange rack tiles with the bag. Each letter names one rack tile
to swap; use ? for a blank tile.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			player := args[1]

			letters := make([]string, 0, len(args)-2)
			for _, arg := range args[2:] {
				letters = append(letters, strings.ToUpper(arg))
			}

			req := map[string]any{
				"player_id": player,
				"type":      "exchange",
				"exchange":  letters,
			}
			var result MoveResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/moves", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rack <game> <player>",
		Short: "Show a player's rack",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			player := args[1]

			var result RackResponse

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/players/%s/rack", id, player), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <game>",
		Short: "Abandon a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s", id)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game abandoned")
			return nil
		},
	}
}
