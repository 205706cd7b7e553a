package game

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

type GameConfig struct {
	Seed int64

	// Raises events instead of (or alongside) the keyboard
	Director Director
	// Time between director actions
	DirectorInterval time.Duration

	// Whether to log the final snapshot of every finished game
	DumpSnapshots bool
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Director:         nil,
		DirectorInterval: 500 * time.Millisecond,
		DumpSnapshots:    false,
	}
}

func (config GameConfig) createState() (*State, error) {
	return NewState(DefaultBoard(), DefaultPlayers(), NewDice(config.Seed))
}

func (config GameConfig) onGameEnd(snapshot Snapshot) {
	if config.DumpSnapshots {
		log.Infof("final snapshot:\n%s", snapshot.Serialize())
	}
}

var keyEvents = []struct {
	button pixelgl.Button
	event  Event
}{
	{pixelgl.KeyEnter, RollEvent},
	{pixelgl.KeyKPEnter, RollEvent},
	{pixelgl.KeySpace, AdvanceTurnEvent},
	{pixelgl.KeyR, ResetEvent},
}

func readKeyboard(win *pixelgl.Window, queue *EventQueue) {
	for _, binding := range keyEvents {
		if win.JustPressed(binding.button) {
			queue.Push(binding.event)
		}
	}
}

// Run opens the game window and blocks until it is closed. It must be called
// from within pixelgl.Run.
func Run(config GameConfig) error {
	state, err := config.createState()
	if err != nil {
		return err
	}

	cfg := pixelgl.WindowConfig{
		Title:  "Snakes and Ladders",
		Bounds: pixel.R(0, 0, windowWidth, windowHeight),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Destroy()

	render := newRenderer(state.Board())
	queue := EventQueue{}

	var directorTick <-chan time.Time
	if config.Director != nil {
		config.Director.Init(state)
		defer config.Director.End()

		ticker := time.NewTicker(config.DirectorInterval)
		defer ticker.Stop()
		directorTick = ticker.C
	}

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	log.WithField("seed", config.Seed).Info("game started")

	bgColor := colornames.White
	for !win.Closed() {
		win.Update()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		readKeyboard(win, &queue)

		select {
		case <-directorTick:
			config.Director.Act(&queue)
		default:
		}

		wasOver := state.Phase() == GameOver
		queue.Drain(state)
		snapshot := state.Snapshot()
		if !wasOver && snapshot.IsOver() {
			config.onGameEnd(snapshot)
		}

		win.Clear(bgColor)
		render.Draw(win, snapshot)
	}

	return nil
}
