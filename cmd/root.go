package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosnakes/director/auto"
	"github.com/they4kman/gosnakes/game"
)

var gameConfig = game.NewGameConfig()
var useDemo = false
var logLevel = "info"

var rootCmd = &cobra.Command{
	Use:   "gosnakes",
	Short: "Play two-player Snakes and Ladders",
	Long: `gosnakes is a two-player Snakes and Ladders game.

Run with no arguments to play at the keyboard
	gosnakes

	ENTER  roll the dice
	SPACE  pass the turn to the next player
	R      start a new game once somebody has won

Use the demo flag to let the computer press the keys
	gosnakes --demo
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if gameConfig.Seed == 0 {
			gameConfig.Seed = time.Now().UnixNano()
		}

		if useDemo {
			gameConfig.Director = &auto.Director{Restart: true}
		}

		var runErr error
		pixelgl.Run(func() {
			runErr = game.Run(gameConfig)
		})
		return runErr
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Logging level (debug, info, warn, error)")

	rootCmd.Flags().Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Seed for the dice (0 picks one from the clock)")
	rootCmd.Flags().BoolVarP(&useDemo, "demo", "d", false, "Let the computer roll and pass turns")
	rootCmd.Flags().DurationVar(&gameConfig.DirectorInterval, "demo-interval", gameConfig.DirectorInterval, "Time between key presses in demo mode")
	rootCmd.Flags().BoolVar(&gameConfig.DumpSnapshots, "dump", false, "Log the final state of every finished game as YAML")
}
