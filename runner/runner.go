// Package runner drives a game session: it fires ticks at a fixed cadence,
// feeds polled input into the snake, and renders frames in between.
package runner

import (
	"context"
	"time"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/game"
	"github.com/battlesnakeio/termsnake/render"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/term"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Result summarizes a finished session.
type Result struct {
	GameID    string
	Turn      int64
	FoodCount uint64
	Length    int
	Cause     string
}

// Runner owns a game for the duration of a session. It is not safe for
// concurrent use; everything happens on the goroutine calling Run or Step.
type Runner struct {
	Game      *rules.Game
	Renderer  term.Renderer
	Input     term.InputSource
	Rand      game.Rand
	Scheduler *Scheduler
	Limiter   *rate.Limiter
	Now       func() time.Time
}

// New returns a runner using the compiled in cadence and frame rate.
func New(g *rules.Game, renderer term.Renderer, input term.InputSource, rng game.Rand) *Runner {
	return &Runner{
		Game:      g,
		Renderer:  renderer,
		Input:     input,
		Rand:      rng,
		Scheduler: NewScheduler(config.TickInterval, config.MaxCatchUpTicks),
		Limiter:   rate.NewLimiter(config.FrameRate, config.FrameBurst),
		Now:       time.Now,
	}
}

// Run plays the game until it is over, the player quits or ctx is done.
// Frames are rendered as often as the limiter allows; the game state only
// changes when the scheduler reports a due tick.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	log.WithFields(log.Fields{
		"GameID": r.Game.ID,
		"Width":  r.Game.Bounds.Width,
		"Height": r.Game.Bounds.Height,
	}).Info("session started")

	r.Scheduler.Reset(r.Now())
	if err := render.Frame(r.Renderer, r.Game); err != nil {
		return r.result(), err
	}

	for !rules.CheckForGameOver(r.Game) {
		if ctx.Err() != nil {
			rules.EndGame(r.Game, rules.DeathCauseInterrupted)
			break
		}

		steps := r.Scheduler.Due(r.Now())
		for i := 0; i < steps && !rules.CheckForGameOver(r.Game); i++ {
			if err := r.Step(); err != nil {
				log.WithError(err).
					WithField("GameID", r.Game.ID).
					Error("ending session due to fatal error")
				return r.result(), err
			}
		}

		if err := render.Frame(r.Renderer, r.Game); err != nil {
			return r.result(), err
		}

		if rules.CheckForGameOver(r.Game) {
			break
		}
		if err := r.Limiter.Wait(ctx); err != nil {
			rules.EndGame(r.Game, rules.DeathCauseInterrupted)
		}
	}

	return r.finish(), nil
}

// Step runs exactly one tick: a single non-blocking input poll followed by
// the game tick. A quit key ends the game without advancing the snake.
func (r *Runner) Step() error {
	defer instrument()()

	if ev, ok := r.Input.Poll(0); ok {
		if r.handleKey(ev) {
			return nil
		}
	}

	outcome, err := rules.GameTick(r.Game, r.Rand)
	if err != nil {
		return err
	}
	tickOutcomes.WithLabelValues(outcome.String()).Inc()
	snakeLength.Set(float64(r.Game.Snake.Len()))
	return nil
}

// handleKey applies a key to the game and reports whether it ended it.
func (r *Runner) handleKey(ev term.Event) bool {
	if ev.Key == term.KeyQuit {
		rules.EndGame(r.Game, rules.DeathCauseQuit)
		return true
	}

	d, ok := ev.Key.Direction()
	if !ok {
		return false
	}
	if !r.Game.Snake.SetDirection(d) {
		log.WithFields(log.Fields{
			"GameID":    r.Game.ID,
			"Turn":      r.Game.Turn,
			"Direction": r.Game.Snake.Direction(),
			"Requested": d,
		}).Debug("reversal ignored")
	}
	return false
}

func (r *Runner) finish() Result {
	res := r.result()
	sessionsEnded.WithLabelValues(res.Cause).Inc()
	log.WithFields(log.Fields{
		"GameID":    res.GameID,
		"Turn":      res.Turn,
		"FoodCount": res.FoodCount,
		"Length":    res.Length,
		"Cause":     res.Cause,
	}).Info("session ended")
	return res
}

func (r *Runner) result() Result {
	return Result{
		GameID:    r.Game.ID,
		Turn:      r.Game.Turn,
		FoodCount: r.Game.Snake.FoodCount(),
		Length:    r.Game.Snake.Len(),
		Cause:     r.Game.Cause,
	}
}
