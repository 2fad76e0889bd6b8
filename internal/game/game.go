package game

import (
	"math/rand"

	"github.com/immortal00111/4096base/internal/core"
)

// DefaultTarget is the tile value that flags a win.
const DefaultTarget = 4096

// DefaultInitialTiles is how many tiles are spawned on a fresh board.
const DefaultInitialTiles = 2

// Options tune a game session. Zero Target and InitialTiles fall back to
// the defaults. SpawnFourProb is used exactly as given: zero means every
// spawned tile is a 2. The config layer supplies the 0.10 default.
type Options struct {
	Target        int     // Win tile value (default 4096)
	SpawnFourProb float64 // Probability a spawned tile is a 4
	InitialTiles  int     // Tiles placed at the start (default 2)
}

// withDefaults fills in unset option fields.
func (o Options) withDefaults() Options {
	if o.Target <= 0 {
		o.Target = DefaultTarget
	}
	if o.InitialTiles <= 0 {
		o.InitialTiles = DefaultInitialTiles
	}
	return o
}

// Game runs one 4096 session: it owns the current board, the running
// score, and the win/game-over flags. All board transformations go through
// the pure engine functions; Game only sequences them one turn at a time.
type Game struct {
	opts Options
	rng  *rand.Rand
	tick uint64

	board Board
	score int
	best  int // Best score from storage, display only

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	won           bool // Target tile reached at least once
	keepPlaying   bool // Player chose to continue past the win overlay
	gameOver      bool
	paused        bool
	tooSmall      bool
	moveProcessed bool // Prevent multiple moves per tick
}

// New creates a new game with the given options.
func New(opts Options) *Game {
	return &Game{opts: opts.withDefaults()}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "4096"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "4096"
}

// Target returns the win tile value for this session.
func (g *Game) Target() int {
	return g.opts.Target
}

// SetBest sets the stored best score shown in the HUD.
func (g *Game) SetBest(best int) {
	g.best = best
}

// Board returns the current board snapshot.
func (g *Game) Board() Board {
	return g.board
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.won = false
	g.keepPlaying = false
	g.gameOver = false
	g.paused = false
	g.moveProcessed = false

	g.board = Board{}
	for range g.opts.InitialTiles {
		g.board = Spawn(g.board, g.rng, g.opts.SpawnFourProb)
	}

	g.checkScreenSize()
}

// SetScreenSize updates the render surface dimensions without touching
// the board. Used on terminal resize.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Minimum size: board (21 wide, 9 tall) + HUD (3 lines)
	minW := 25
	minH := 13
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Win overlay: wait for the player to dismiss it
	if g.won && !g.keepPlaying {
		if in.Has(core.ActionConfirm) {
			g.keepPlaying = true
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		// Restart is handled by the platform
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if ok && !g.moveProcessed {
		g.processMove(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// directionFor maps an input frame to a move direction.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return DirUp, false
}

// processMove runs one full turn: slide, spawn, then terminal check.
func (g *Game) processMove(dir Direction) {
	newBoard, scoreGained, moved := Move(g.board, dir)
	if !moved {
		// Board didn't change: no spawn, no state change at all
		return
	}

	g.board = Spawn(newBoard, g.rng, g.opts.SpawnFourProb)
	g.score += scoreGained
	if g.score > g.best {
		g.best = g.score
	}

	if !g.won && MaxTile(g.board) >= g.opts.Target {
		g.won = true
	}

	if IsGameOver(g.board) {
		g.gameOver = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || (g.won && !g.keepPlaying),
	}
}
