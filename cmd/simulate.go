package cmd

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosnakes/director/auto"
	"github.com/they4kman/gosnakes/game"
)

type simulateOptions struct {
	numGames  uint
	seed      int64
	maxEvents int
	dump      bool
}

var simulateOpts = simulateOptions{
	numGames:  1,
	maxEvents: 100000,
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play games without a window and report who won",
	RunE: func(cmd *cobra.Command, args []string) error {
		if simulateOpts.seed == 0 {
			simulateOpts.seed = time.Now().UnixNano()
		}

		tally, err := simulate(simulateOpts)
		if err != nil {
			return err
		}

		for _, name := range tally.names {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d\n", name, tally.wins[name])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %.1f\n", "avg rolls", tally.averageRolls())
		return nil
	},
}

type simulateTally struct {
	names     []string
	wins      map[string]uint
	numGames  uint
	totalRoll int
}

func (tally simulateTally) averageRolls() float64 {
	if tally.numGames == 0 {
		return 0
	}
	return float64(tally.totalRoll) / float64(tally.numGames)
}

func simulate(opts simulateOptions) (simulateTally, error) {
	tally := simulateTally{wins: make(map[string]uint)}
	for _, player := range game.DefaultPlayers() {
		tally.names = append(tally.names, player.Name)
	}

	for i := uint(0); i < opts.numGames; i++ {
		seed := opts.seed + int64(i)
		state, err := game.NewState(game.DefaultBoard(), game.DefaultPlayers(), game.NewDice(seed))
		if err != nil {
			return tally, err
		}

		snapshot, err := game.PlayOut(state, &auto.Director{}, opts.maxEvents)
		if err != nil {
			return tally, fmt.Errorf("game %d (seed %d): %w", i, seed, err)
		}

		log.WithFields(log.Fields{
			"game":   i,
			"seed":   seed,
			"winner": snapshot.Winner,
			"rolls":  snapshot.NumRolls,
		}).Debug("game finished")
		if opts.dump {
			log.Infof("final snapshot:\n%s", snapshot.Serialize())
		}

		tally.wins[snapshot.Winner]++
		tally.numGames++
		tally.totalRoll += snapshot.NumRolls
	}

	return tally, nil
}

func init() {
	simulateCmd.Flags().UintVarP(&simulateOpts.numGames, "games", "n", simulateOpts.numGames, "Number of games to play")
	simulateCmd.Flags().Int64VarP(&simulateOpts.seed, "seed", "s", 0, "Seed of the first game; game i uses seed+i (0 picks one from the clock)")
	simulateCmd.Flags().IntVar(&simulateOpts.maxEvents, "max-events", simulateOpts.maxEvents, "Give up on a game after this many events")
	simulateCmd.Flags().BoolVar(&simulateOpts.dump, "dump", false, "Log the final state of every game as YAML")

	rootCmd.AddCommand(simulateCmd)
}
