// Package game implements the 4096 sliding-tile merge puzzle: a pure board
// engine plus the tick-driven session that the platform layer runs.
package game

// BoardSize is the board dimension.
const BoardSize = 4

// Board represents a 4x4 grid of tiles. Zero means empty; any other value
// is a power of two. Board is a value type: engine operations take a Board
// and return a new one, they never mutate the input.
type Board [BoardSize][BoardSize]int

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Coord identifies a single cell by column (X) and row (Y).
type Coord struct {
	X, Y int
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Coord {
	var cells []Coord
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, Coord{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasMergeablePair returns true if any two orthogonally adjacent cells hold
// the same non-zero value. Only right and down neighbors are scanned;
// adjacency is symmetric, so that covers every pair.
func HasMergeablePair(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			if val == 0 {
				continue
			}
			if x < BoardSize-1 && board[y][x+1] == val {
				return true
			}
			if y < BoardSize-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// HasAnyMove returns true if at least one direction would change the board.
// An empty cell always admits a move; a full board needs a mergeable pair.
func HasAnyMove(board Board) bool {
	return HasEmptyCell(board) || HasMergeablePair(board)
}

// IsGameOver returns true if no moves are possible.
func IsGameOver(board Board) bool {
	return !HasAnyMove(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] > maxVal {
				maxVal = board[y][x]
			}
		}
	}
	return maxVal
}
