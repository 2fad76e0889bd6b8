package game

import "math/rand"

// DefaultSpawnFourProb is the probability that a spawned tile is a 4
// rather than a 2.
const DefaultSpawnFourProb = 0.10

// Spawn places one new tile in a uniformly random empty cell and returns
// the resulting board. The new tile is 4 with probability fourProb,
// otherwise 2. A full board is returned unchanged: spawning with no room
// is a defined no-op, not an error.
func Spawn(board Board, rng *rand.Rand, fourProb float64) Board {
	empty := EmptyCells(board)
	if len(empty) == 0 {
		return board
	}

	cell := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < fourProb {
		value = 4
	}

	board[cell.Y][cell.X] = value
	return board
}
