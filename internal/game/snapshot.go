package game

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Target  int
	Score   int
	Board   Board
	MaxTile int // Highest tile on board
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.won && !g.keepPlaying:
		state = StateWon
	}

	return Snapshot{
		Tick:    g.tick,
		Target:  g.opts.Target,
		Score:   g.score,
		Board:   g.board,
		MaxTile: MaxTile(g.board),
		State:   state,
	}
}
