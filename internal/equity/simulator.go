// Package equity estimates showdown probabilities by Monte Carlo
// simulation. Two modes share the trial machinery: multiway pot equity
// against the session's fixed opponents, and hand strength against a fresh
// synthetic opponent per trial.
package equity

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/mananjp/Poker-Hand-Predictor/internal/deck"
	"github.com/mananjp/Poker-Hand-Predictor/internal/evaluator"
	"github.com/mananjp/Poker-Hand-Predictor/internal/randutil"
	"github.com/mananjp/Poker-Hand-Predictor/internal/session"
)

const (
	// DefaultMultiwayTrials is the multiway iteration count used when the
	// caller has no opinion. Standard error shrinks as 1/sqrt(N); callers
	// wanting sub-1% precision need a few thousand trials.
	DefaultMultiwayTrials = 3000

	// DefaultStrengthTrials is the default for single-opponent hand strength
	DefaultStrengthTrials = 300
)

// MultiwayResult holds per-player win probabilities for one stage.
// Probabilities[0] is the hero, followed by opponents in seat order; the
// entries sum to 1 because each trial's single unit of credit is split
// evenly across the trial's winner set.
type MultiwayResult struct {
	Probabilities []float64
	TieTrials     int
	Trials        int
}

// TieRate returns the fraction of trials decided by a split pot
func (r MultiwayResult) TieRate() float64 {
	if r.Trials == 0 {
		return 0.0
	}
	return float64(r.TieTrials) / float64(r.Trials)
}

// Simulator runs Monte Carlo showdown trials. All randomness derives from
// the construction seed, so runs are replayable; the simulator owns no
// global random state.
type Simulator struct {
	seed   int64
	rng    *rand.Rand
	logger *log.Logger
}

// NewSimulator builds a simulator seeded with seed. A nil logger discards
// diagnostics.
func NewSimulator(seed int64, logger *log.Logger) *Simulator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{
		seed:   seed,
		rng:    randutil.New(seed),
		logger: logger,
	}
}

// Multiway estimates each player's pot equity for the session's current
// stage. Opponent hole cards stay fixed across trials; only the missing
// board cards are drawn per trial.
func (s *Simulator) Multiway(sess *session.HandSession, iterations int) (MultiwayResult, error) {
	if iterations <= 0 {
		iterations = DefaultMultiwayTrials
	}

	known := sess.Known()
	if err := deck.ValidateUnique(known); err != nil {
		return MultiwayResult{}, err
	}

	s.logger.Debug("multiway simulation", "stage", sess.Stage(), "players", 1+len(sess.Opponents), "trials", iterations)

	credits := make([]float64, 1+len(sess.Opponents))
	ties := 0
	for trial := 0; trial < iterations; trial++ {
		tied, err := s.runTrial(s.rng, sess, known, credits)
		if err != nil {
			return MultiwayResult{}, err
		}
		if tied {
			ties++
		}
	}

	return finishMultiway(credits, ties, iterations), nil
}

// MultiwayParallel is Multiway with trials sharded across workers. Trials
// are independent and the credit merge is a plain sum, so only the
// pseudorandom realization differs from the sequential mode. The context
// abandons unfinished shards.
func (s *Simulator) MultiwayParallel(ctx context.Context, sess *session.HandSession, iterations, workers int) (MultiwayResult, error) {
	if iterations <= 0 {
		iterations = DefaultMultiwayTrials
	}
	if workers <= 1 {
		return s.Multiway(sess, iterations)
	}

	known := sess.Known()
	if err := deck.ValidateUnique(known); err != nil {
		return MultiwayResult{}, err
	}

	s.logger.Debug("parallel multiway simulation", "trials", iterations, "workers", workers)

	players := 1 + len(sess.Opponents)
	perWorker := make([][]float64, workers)
	tiesPerWorker := make([]int, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		share := iterations / workers
		if w < iterations%workers {
			share++
		}
		rng := randutil.Derive(s.seed, w)
		credits := make([]float64, players)
		perWorker[w] = credits

		g.Go(func() error {
			for trial := 0; trial < share; trial++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				tied, err := s.runTrial(rng, sess, known, credits)
				if err != nil {
					return err
				}
				if tied {
					tiesPerWorker[w]++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return MultiwayResult{}, err
	}

	credits := make([]float64, players)
	ties := 0
	for w := range perWorker {
		for i, c := range perWorker[w] {
			credits[i] += c
		}
		ties += tiesPerWorker[w]
	}
	return finishMultiway(credits, ties, iterations), nil
}

// runTrial completes the board from a trial-scoped deck, shows down every
// player, and splits the trial's credit across the winner set.
func (s *Simulator) runTrial(rng *rand.Rand, sess *session.HandSession, known []deck.Card, credits []float64) (bool, error) {
	d := deck.NewDeck(rng, known...)
	drawn, err := d.DrawN(5 - len(sess.Board))
	if err != nil {
		return false, err
	}
	board := append(append([]deck.Card{}, sess.Board...), drawn...)

	winners, err := showdown(sess, board)
	if err != nil {
		return false, err
	}

	share := 1.0 / float64(len(winners))
	for _, i := range winners {
		credits[i] += share
	}
	return len(winners) > 1, nil
}

// showdown evaluates every player on the completed board and returns the
// indices achieving the maximum rank (0 = hero).
func showdown(sess *session.HandSession, board []deck.Card) ([]int, error) {
	holes := make([][2]deck.Card, 0, 1+len(sess.Opponents))
	holes = append(holes, sess.Hole)
	holes = append(holes, sess.Opponents...)

	var best evaluator.HandRank
	var winners []int
	for i, hole := range holes {
		rank, _, err := evaluator.EvaluateBest(append(hole[:], board...))
		if err != nil {
			return nil, fmt.Errorf("equity: player %d: %w", i, err)
		}
		if i == 0 {
			best = rank
			winners = []int{0}
			continue
		}
		cmp := rank.Compare(best)
		if cmp > 0 {
			best = rank
			winners = winners[:0]
		}
		if cmp >= 0 {
			winners = append(winners, i)
		}
	}
	return winners, nil
}

func finishMultiway(credits []float64, ties, iterations int) MultiwayResult {
	probs := make([]float64, len(credits))
	for i, c := range credits {
		probs[i] = c / float64(iterations)
	}
	return MultiwayResult{
		Probabilities: probs,
		TieTrials:     ties,
		Trials:        iterations,
	}
}

// HandStrengthResult estimates equity against one synthetic opponent whose
// hole cards are drawn fresh each trial from the cards outside the hero's
// hand and the known board. This answers "how strong is my hand against an
// arbitrary holding", independent of the fixed opponents in play.
func (s *Simulator) HandStrengthResult(hole [2]deck.Card, board []deck.Card, iterations int) (Result, error) {
	if iterations <= 0 {
		iterations = DefaultStrengthTrials
	}
	if len(board) > 5 {
		return Result{}, fmt.Errorf("equity: board has %d cards, maximum is 5", len(board))
	}
	if err := deck.ValidateUnique(hole[:], board); err != nil {
		return Result{}, err
	}

	s.logger.Debug("hand strength simulation", "hole", fmt.Sprintf("%s %s", hole[0], hole[1]), "board", len(board), "trials", iterations)

	known := append(append([]deck.Card{}, hole[:]...), board...)

	var result Result
	result.Trials = uint32(iterations)
	for trial := 0; trial < iterations; trial++ {
		d := deck.NewDeck(s.rng, known...)
		oppCards, err := d.DrawN(2)
		if err != nil {
			return Result{}, err
		}
		drawn, err := d.DrawN(5 - len(board))
		if err != nil {
			return Result{}, err
		}
		fullBoard := append(append([]deck.Card{}, board...), drawn...)

		heroRank, _, err := evaluator.EvaluateBest(append(hole[:], fullBoard...))
		if err != nil {
			return Result{}, err
		}
		oppRank, _, err := evaluator.EvaluateBest(append(oppCards, fullBoard...))
		if err != nil {
			return Result{}, err
		}

		switch heroRank.Compare(oppRank) {
		case 1:
			result.Wins++
		case 0:
			result.Ties++
		}
	}
	return result, nil
}

// HandStrength returns the equity estimate from HandStrengthResult as a
// probability in [0,1].
func (s *Simulator) HandStrength(hole [2]deck.Card, board []deck.Card, iterations int) (float64, error) {
	result, err := s.HandStrengthResult(hole, board, iterations)
	if err != nil {
		return 0, err
	}
	return result.Equity(), nil
}
