// Command lotto645 draws 6/45 lottery numbers in the terminal.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/lotto645/internal/lotto"
	"github.com/ytget/lotto645/internal/model"
	"github.com/ytget/lotto645/internal/ticket"
)

// A paper slip holds games A to E
const (
	MinGames = 1
	MaxGames = 5
)

type options struct {
	games   int
	seed    uint64
	grid    bool
	json    bool
	verbose bool
}

// game is one line of the slip in JSON output
type game struct {
	Label string `json:"label"`
	model.Ticket
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "lotto645",
		Short:         "Draw 6/45 lottery numbers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.games, "games", "n", 1, "number of games to draw (1-5)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for a reproducible draw (0 picks a random seed)")
	cmd.Flags().BoolVar(&opts.grid, "grid", false, "print each game as a marked slip grid")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print games as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log draws to stderr")

	return cmd
}

func run(out io.Writer, opts *options) error {
	if opts.games < MinGames || opts.games > MaxGames {
		return fmt.Errorf("--games must be between %d and %d, got %d", MinGames, MaxGames, opts.games)
	}

	logger := zap.NewNop()
	if opts.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logger = l
		defer logger.Sync()
	}

	src := lotto.DefaultSource()
	if opts.seed != 0 {
		src = lotto.NewSeededSource(opts.seed)
	}
	picker := lotto.NewPicker(src)

	layout, err := ticket.DefaultLayout()
	if err != nil {
		return err
	}

	games := make([]game, 0, opts.games)
	for i := 0; i < opts.games; i++ {
		draw, err := picker.Generate(layout.Range, lotto.StandardCount)
		if err != nil {
			return err
		}
		t := model.NewTicket(draw, lotto.ToPresenceMask(draw, layout.Range))
		games = append(games, game{Label: string(rune('A' + i)), Ticket: t})
		logger.Debug("game drawn", zap.String("label", games[i].Label), zap.Ints("numbers", draw.Numbers()))
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(games)
	}

	for _, g := range games {
		fmt.Fprintf(out, "%s  %s\n", g.Label, g.NumbersString())
		if opts.grid {
			fmt.Fprint(out, renderGrid(layout, g.Mask))
		}
	}
	return nil
}

// renderGrid prints the slip rows, "[]" for a marked cell and the number otherwise
func renderGrid(layout *ticket.Layout, mask lotto.PresenceMask) string {
	var b strings.Builder
	for row := 0; row < layout.Rows(); row++ {
		b.WriteString("   ")
		for col := 0; col < layout.RowLength(row); col++ {
			i := row*layout.Columns + col
			if mask.Filled(i) {
				b.WriteString(" [] ")
			} else {
				fmt.Fprintf(&b, " %2d ", layout.Range.Min+i)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
