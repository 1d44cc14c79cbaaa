package commands

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/runner"
	"github.com/battlesnakeio/termsnake/term"
	"github.com/battlesnakeio/termsnake/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "termsnake",
	Short:             "termsnake plays snake in the terminal",
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setupLogging() },
	PreRun:            func(*cobra.Command, []string) { startPrometheus() },
	RunE: func(c *cobra.Command, args []string) error {
		return play(c.OutOrStdout())
	},
}

var (
	backend  = "termbox"
	logFile  string
	logLevel = "info"
	seed     int64
)

func init() {
	rootCmd.Flags().StringVar(&backend, "backend", backend, "terminal backend, termbox or tcell")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logFile, "write logs to this file, logs are discarded when empty")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", seed, "seed for food placement, 0 picks one from the clock")

	rootCmd.AddCommand(headlessCmd)
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	if closeErr := closeLogging(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func play(out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.Setup(os.Stdout, config.Bounds, config.Title); err != nil {
		log.WithError(err).Warn("terminal setup failed")
	}

	screen, err := openScreen(backend)
	if err != nil {
		return err
	}

	g := rules.NewGame(config.Bounds)
	res, err := runner.New(g, screen, screen, newRand()).Run(ctx)
	if err == nil && res.Cause == rules.DeathCauseWallCollision {
		holdGameOver(screen, config.GameOverHold)
	}

	if closeErr := screen.Close(); closeErr != nil && err == nil {
		err = errors.Wrap(closeErr, "close screen")
	}
	if err != nil {
		return err
	}

	printSummary(out, res)
	return nil
}

// holdGameOver keeps the game over frame up until a fresh key or the hold
// expires. Keys pressed while the game was running are discarded first.
func holdGameOver(in term.InputSource, hold time.Duration) {
	for {
		if _, ok := in.Poll(0); !ok {
			break
		}
	}
	in.Poll(hold)
}

func openScreen(name string) (term.Screen, error) {
	switch name {
	case "termbox":
		return term.NewTermboxScreen()
	case "tcell":
		return term.NewTcellScreen()
	}
	return nil, errors.Errorf("unknown backend %q", name)
}

func newRand() *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.WithField("seed", s).Debug("food placement seed")
	return rand.New(rand.NewSource(s))
}

var causeText = map[string]string{
	rules.DeathCauseWallCollision: "Game over",
	rules.DeathCauseQuit:          "Quit",
	rules.DeathCauseInterrupted:   "Interrupted",
}

func printSummary(w io.Writer, res runner.Result) {
	text, ok := causeText[res.Cause]
	if !ok {
		text = res.Cause
	}
	fmt.Fprintf(w, "%s after %d turns, food eaten: %d, length: %d\n", text, res.Turn, res.FoodCount, res.Length)
}
