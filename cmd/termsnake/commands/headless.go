package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/runner"
	"github.com/battlesnakeio/termsnake/term"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	moves string
	dump  bool
)

func init() {
	headlessCmd.Flags().StringVarP(&moves, "moves", "m", "", "keys fed one per tick: u, d, l, r, q; any other rune is ignored")
	headlessCmd.Flags().BoolVar(&dump, "dump", false, "dump the final game state")
}

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "plays a scripted game without a terminal and prints the final board",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		b := config.Bounds
		screen := term.NewTextScreen(b.Width, b.Height, term.ParseScript(moves))
		g := rules.NewGame(b)

		r := runner.New(g, screen, screen, newRand())
		r.Now = runner.SteppedClock(time.Now(), config.TickInterval)
		r.Limiter = rate.NewLimiter(rate.Inf, 1)

		res, err := r.Run(context.Background())
		if err != nil {
			return err
		}

		out := c.OutOrStdout()
		fmt.Fprintln(out, screen.Frame())
		printSummary(out, res)
		if dump {
			spew.Fdump(out, g)
		}
		return nil
	},
}
