package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/mananjp/Poker-Hand-Predictor/internal/advisor"
	"github.com/mananjp/Poker-Hand-Predictor/internal/classification"
	"github.com/mananjp/Poker-Hand-Predictor/internal/config"
	"github.com/mananjp/Poker-Hand-Predictor/internal/deck"
	"github.com/mananjp/Poker-Hand-Predictor/internal/equity"
	"github.com/mananjp/Poker-Hand-Predictor/internal/evaluator"
	"github.com/mananjp/Poker-Hand-Predictor/internal/randutil"
	"github.com/mananjp/Poker-Hand-Predictor/internal/session"
)

type CLI struct {
	Hole       string `arg:"" help:"Your 2 hole cards (e.g., 'AH KD')" required:""`
	Flop       string `help:"3 flop cards (e.g., '2H 3D 4C')"`
	Turn       string `help:"Turn card (e.g., '5S')"`
	River      string `help:"River card (e.g., '7H')"`
	Opponents  int    `help:"Number of generated opponents" default:"0"`
	Iterations int    `short:"i" help:"Multiway simulation trials" default:"0"`
	Strength   int    `help:"Hand strength simulation trials" default:"0"`
	Workers    int    `help:"Parallel simulation workers" default:"1"`
	Seed       *int64 `help:"Random seed for reproducible results"`
	Config     string `short:"c" help:"HCL config file" default:"predictor.hcl"`
	Profile    string `help:"Config profile name"`
	Verbose    bool   `short:"v" help:"Verbose logging"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	reasonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		ctx.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
	profile, err := cfg.Profile(cli.Profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
	applyOverrides(&cli, &profile)

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: logLevel(cli.Verbose, profile.LogLevel)})

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else if profile.Seed != 0 {
		seed = profile.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	logger.Debug("run configuration", "seed", seed, "profile", profile.Name)

	if err := run(&cli, profile, seed, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
}

// applyOverrides lets explicit flags win over the config profile
func applyOverrides(cli *CLI, profile *config.Profile) {
	if cli.Iterations > 0 {
		profile.MultiwayTrials = cli.Iterations
	}
	if cli.Strength > 0 {
		profile.StrengthTrials = cli.Strength
	}
	if cli.Opponents > 0 {
		profile.Opponents = cli.Opponents
	}
}

func logLevel(verbose bool, configured string) log.Level {
	if verbose {
		return log.DebugLevel
	}
	level, err := log.ParseLevel(configured)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

func run(cli *CLI, profile config.Profile, seed int64, logger *log.Logger) error {
	hole, err := parseHole(cli.Hole)
	if err != nil {
		return err
	}

	sess, err := session.NewHandSession(randutil.Derive(seed, 1), hole, profile.Opponents)
	if err != nil {
		return err
	}
	sim := equity.NewSimulator(seed, logger)

	fmt.Printf("%s %s\n\n", headerStyle.Render("your hand"), formatCards(hole[:]))

	// Progressive analysis: every stage the supplied cards reach gets its
	// own block, matching how the hand actually unfolds.
	if err := analyzeStage(cli, sim, sess, profile); err != nil {
		return err
	}

	for _, street := range []struct {
		name  string
		input string
	}{
		{"flop", cli.Flop},
		{"turn", cli.Turn},
		{"river", cli.River},
	} {
		if input := strings.TrimSpace(street.input); input != "" {
			cards, err := deck.ParseCards(input)
			if err != nil {
				return err
			}
			if err := sess.AdvanceBoard(cards); err != nil {
				return err
			}
			if err := analyzeStage(cli, sim, sess, profile); err != nil {
				return err
			}
		} else {
			return nil
		}
	}

	if sess.Stage() == session.River {
		return showdown(sess)
	}
	return nil
}

func parseHole(s string) ([2]deck.Card, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return [2]deck.Card{}, err
	}
	if len(cards) != 2 {
		return [2]deck.Card{}, fmt.Errorf("need exactly 2 hole cards, got %d", len(cards))
	}
	return [2]deck.Card{cards[0], cards[1]}, nil
}

func analyzeStage(cli *CLI, sim *equity.Simulator, sess *session.HandSession, profile config.Profile) error {
	stage := sess.Stage()
	fmt.Printf("%s", headerStyle.Render(fmt.Sprintf("=== %s ===", strings.ToUpper(stage.String()))))
	if len(sess.Board) > 0 {
		fmt.Printf("  board: %s", formatCards(sess.Board))
	}
	fmt.Println()

	texture := classification.Dry
	if len(sess.Board) >= 3 {
		var err error
		texture, err = classification.ClassifyTexture(sess.Board)
		if err != nil {
			return err
		}
		fmt.Printf("texture: %s\n", texture)
	}

	result, err := sim.MultiwayParallel(context.Background(), sess, profile.MultiwayTrials, cli.Workers)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("player"),
		headerStyle.Render("win"),
		headerStyle.Render("strength"),
		headerStyle.Render("action"),
		headerStyle.Render("why"))

	players := playerHands(sess)
	for i, hand := range players {
		strength, err := sim.HandStrength(hand, sess.Board, profile.StrengthTrials)
		if err != nil {
			return err
		}
		recommendation, err := advisor.Recommend(stage, strength*100, texture)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%s\t%.1f%%\t%s\t%s\n",
			cardStyle.Render(playerName(i)+" "+formatCards(hand[:])),
			winStyle.Render(fmt.Sprintf("%.1f%%", result.Probabilities[i]*100)),
			strength*100,
			actionStyle.Render(fmt.Sprintf("%s (%d%%)", recommendation.Action, recommendation.Confidence)),
			reasonStyle.Render(recommendation.Reason))
	}
	w.Flush()

	fmt.Printf("ties: %.1f%% of %d trials\n\n", result.TieRate()*100, result.Trials)
	return nil
}

// showdown prints the final ranking once the river is out
func showdown(sess *session.HandSession) error {
	fmt.Printf("%s\n", headerStyle.Render("=== SHOWDOWN ==="))
	fmt.Printf("board: %s\n\n", formatCards(sess.Board))

	type entry struct {
		name string
		rank evaluator.HandRank
		best []deck.Card
	}

	players := playerHands(sess)
	entries := make([]entry, len(players))
	for i, hand := range players {
		rank, best, err := evaluator.EvaluateBest(append(hand[:], sess.Board...))
		if err != nil {
			return err
		}
		entries[i] = entry{name: playerName(i), rank: rank, best: best}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].rank.Compare(entries[j].rank) > 0
	})

	if entries[0].rank.Compare(entries[1].rank) == 0 {
		fmt.Printf("%s\n", actionStyle.Render(fmt.Sprintf("TIE with %s", entries[0].rank)))
	} else if entries[0].name == "you" {
		fmt.Printf("%s\n", winStyle.Render(fmt.Sprintf("YOU WIN with %s", entries[0].rank)))
	} else {
		fmt.Printf("%s\n", actionStyle.Render(fmt.Sprintf("%s wins with %s", entries[0].name, entries[0].rank)))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, e := range entries {
		fmt.Fprintf(w, "%d.\t%s\t%s\t%s\n",
			i+1,
			cardStyle.Render(e.name),
			e.rank,
			formatCards(e.best))
	}
	w.Flush()
	return nil
}

func playerHands(sess *session.HandSession) [][2]deck.Card {
	hands := make([][2]deck.Card, 0, 1+len(sess.Opponents))
	hands = append(hands, sess.Hole)
	hands = append(hands, sess.Opponents...)
	return hands
}

func playerName(i int) string {
	if i == 0 {
		return "you"
	}
	return fmt.Sprintf("opponent %d", i)
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
