package game

import "testing"

func TestHasAnyMove(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		expected bool
	}{
		{
			name:     "empty board",
			board:    Board{},
			expected: true,
		},
		{
			name: "single empty cell",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: true,
		},
		{
			name: "full board with horizontal pair",
			board: Board{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: true,
		},
		{
			name: "full board with vertical pair",
			board: Board{
				{2, 4, 8, 16},
				{2, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: true,
		},
		{
			name: "full checkerboard with no equal neighbors",
			board: Board{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			expected: false,
		},
		{
			name: "full board of distinct powers",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAnyMove(tt.board); got != tt.expected {
				t.Errorf("HasAnyMove() = %v, want %v", got, tt.expected)
			}
			if got := IsGameOver(tt.board); got == tt.expected {
				t.Errorf("IsGameOver() = %v, want %v", got, !tt.expected)
			}
		})
	}
}

func TestEmptyCellsRowMajor(t *testing.T) {
	board := Board{
		{2, 0, 4, 0},
		{0, 2, 0, 4},
		{2, 4, 2, 4},
		{0, 0, 0, 0},
	}

	expected := []Coord{
		{X: 1, Y: 0}, {X: 3, Y: 0},
		{X: 0, Y: 1}, {X: 2, Y: 1},
		{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3},
	}

	cells := EmptyCells(board)
	if len(cells) != len(expected) {
		t.Fatalf("EmptyCells returned %d cells, want %d", len(cells), len(expected))
	}
	for i, c := range cells {
		if c != expected[i] {
			t.Errorf("EmptyCells[%d] = %v, want %v", i, c, expected[i])
		}
	}

	if !HasEmptyCell(board) {
		t.Error("HasEmptyCell should be true")
	}

	full := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	if HasEmptyCell(full) {
		t.Error("HasEmptyCell should be false for a full board")
	}
	if EmptyCells(full) != nil {
		t.Error("EmptyCells should be empty for a full board")
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 0, 4, 0},
		{0, 2, 0, 4},
		{2, 4096, 2, 4},
		{0, 0, 0, 8},
	}

	if got := MaxTile(board); got != 4096 {
		t.Errorf("MaxTile() = %d, want 4096", got)
	}

	if got := MaxTile(Board{}); got != 0 {
		t.Errorf("MaxTile(empty) = %d, want 0", got)
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{DirUp, "up"},
		{DirDown, "down"},
		{DirLeft, "left"},
		{DirRight, "right"},
		{Direction(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.expected {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.expected)
		}
	}
}
