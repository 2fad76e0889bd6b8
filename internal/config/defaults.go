package config

import (
	_ "embed"

	"github.com/immortal00111/4096base/internal/game"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default session configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Target:       game.DefaultTarget,
		SpawnFour:    game.DefaultSpawnFourProb,
		InitialTiles: game.DefaultInitialTiles,
	}
}
