// Package config provides YAML-based game configuration loading for the
// puzzle platform.
package config

import (
	"fmt"

	"github.com/immortal00111/4096base/internal/game"
)

// GameConfig contains the tunable parameters of a puzzle session.
type GameConfig struct {
	Target       int     `yaml:"target"`        // Win tile value
	SpawnFour    float64 `yaml:"spawn_four"`    // Probability a spawned tile is a 4
	InitialTiles int     `yaml:"initial_tiles"` // Tiles placed on a fresh board
}

// Validate checks the configuration for values the engine cannot honor.
func (c GameConfig) Validate() error {
	if c.Target < 8 || !isPowerOfTwo(c.Target) {
		return fmt.Errorf("config: target %d must be a power of two >= 8", c.Target)
	}
	if c.SpawnFour < 0 || c.SpawnFour > 1 {
		return fmt.Errorf("config: spawn_four %v must be within [0, 1]", c.SpawnFour)
	}
	if c.InitialTiles < 1 || c.InitialTiles > game.BoardSize*game.BoardSize {
		return fmt.Errorf("config: initial_tiles %d must be within [1, %d]",
			c.InitialTiles, game.BoardSize*game.BoardSize)
	}
	return nil
}

// Options converts the configuration into game session options.
func (c GameConfig) Options() game.Options {
	return game.Options{
		Target:        c.Target,
		SpawnFourProb: c.SpawnFour,
		InitialTiles:  c.InitialTiles,
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
