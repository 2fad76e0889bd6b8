package game

import (
	"math/rand"
	"testing"
)

func TestSpawnZeroFourProbOnlySpawnsTwos(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 5000; trial++ {
		result := Spawn(Board{}, rng, 0)
		for y := range BoardSize {
			for x := range BoardSize {
				if v := result[y][x]; v == 4 {
					t.Fatalf("trial %d spawned a 4 with fourProb 0", trial)
				}
			}
		}
	}
}

func TestSpawnAddsExactlyOneTile(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	board := Board{
		{2, 0, 4, 0},
		{0, 2, 0, 4},
		{2, 4, 2, 4},
		{0, 0, 0, 0},
	}

	result := Spawn(board, rng, DefaultSpawnFourProb)

	changes := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if result[y][x] == board[y][x] {
				continue
			}
			changes++
			if board[y][x] != 0 {
				t.Errorf("cell (%d, %d) was not empty before spawn", x, y)
			}
			if result[y][x] != 2 && result[y][x] != 4 {
				t.Errorf("spawned value = %d, want 2 or 4", result[y][x])
			}
		}
	}

	if changes != 1 {
		t.Errorf("spawn changed %d cells, want exactly 1", changes)
	}
}

func TestSpawnFullBoardNoOp(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	board := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	if result := Spawn(board, rng, DefaultSpawnFourProb); result != board {
		t.Errorf("spawn on a full board must return it unchanged, got\n%v", result)
	}
}

func TestSpawnValueRatio(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	const trials = 20000
	fours := 0
	for i := 0; i < trials; i++ {
		result := Spawn(Board{}, rng, DefaultSpawnFourProb)
		if v := MaxTile(result); v == 4 {
			fours++
		}
	}

	// Expected 10% fours; binomial sd is ~42 over 20000 trials, so this
	// window is far outside noise.
	if fours < 1800 || fours > 2200 {
		t.Errorf("got %d fours out of %d trials, want roughly 2000", fours, trials)
	}
}

func TestSpawnCoversAllEmptyCells(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	board := Board{
		{2, 0, 4, 0},
		{0, 2, 0, 4},
		{2, 4, 2, 4},
		{0, 0, 0, 0},
	}
	empty := EmptyCells(board)

	seen := make(map[Coord]bool)
	for i := 0; i < 2000; i++ {
		result := Spawn(board, rng, DefaultSpawnFourProb)
		for y := range BoardSize {
			for x := range BoardSize {
				if result[y][x] != board[y][x] {
					seen[Coord{X: x, Y: y}] = true
				}
			}
		}
	}

	for _, c := range empty {
		if !seen[c] {
			t.Errorf("empty cell %v was never chosen over 2000 spawns", c)
		}
	}
	if len(seen) != len(empty) {
		t.Errorf("spawn hit %d cells, want %d eligible empties", len(seen), len(empty))
	}
}
