package game

// slideRow compacts and merges a single row to the left.
// Compaction first, then one left-to-right merge pass: each tile merges at
// most once per move, so [2,2,4,0] becomes [4,4,0,0], never [8,0,0,0].
// Returns the packed row and the score gained from merges.
func slideRow(row [BoardSize]int) (result [BoardSize]int, score int) {
	var packed [BoardSize]int
	n := 0
	for _, v := range row {
		if v != 0 {
			packed[n] = v
			n++
		}
	}

	writePos := 0
	for i := 0; i < n; i++ {
		if i+1 < n && packed[i] == packed[i+1] {
			result[writePos] = packed[i] * 2
			score += result[writePos]
			i++ // skip the merged partner
		} else {
			result[writePos] = packed[i]
		}
		writePos++
	}

	return result, score
}

// slideRows applies slideRow to every row of the board independently.
// Merges never cross row boundaries.
func slideRows(board Board) (Board, int) {
	var newBoard Board
	totalScore := 0
	for y := range BoardSize {
		newRow, score := slideRow(board[y])
		newBoard[y] = newRow
		totalScore += score
	}
	return newBoard, totalScore
}

// reverseRow reverses a row.
func reverseRow(row [BoardSize]int) [BoardSize]int {
	var result [BoardSize]int
	for i := range BoardSize {
		result[i] = row[BoardSize-1-i]
	}
	return result
}

// reverseRows reverses every row of the board.
func reverseRows(board Board) Board {
	var result Board
	for y := range BoardSize {
		result[y] = reverseRow(board[y])
	}
	return result
}

// rotateCW rotates the board 90 degrees clockwise.
// Inverse of rotateCCW: rotateCW(rotateCCW(b)) == b for every cell.
func rotateCW(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[BoardSize-1-x][y]
		}
	}
	return result
}

// rotateCCW rotates the board 90 degrees counter-clockwise.
func rotateCCW(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[x][BoardSize-1-y]
		}
	}
	return result
}

// Move applies a slide in the given direction.
// Every direction is normalized onto the canonical slide-left: rows are
// reversed for right, and up/down use the inverse rotation pair so each
// column is reduced as a row. Returns the new board, the score gained,
// and whether the board changed.
//
// The moved flag comes from an exact cell-by-cell comparison: a pure slide
// with no merge still counts as moved even though the gain is zero.
func Move(board Board, dir Direction) (Board, int, bool) {
	var newBoard Board
	var score int

	switch dir {
	case DirLeft:
		newBoard, score = slideRows(board)
	case DirRight:
		newBoard, score = slideRows(reverseRows(board))
		newBoard = reverseRows(newBoard)
	case DirUp:
		newBoard, score = slideRows(rotateCCW(board))
		newBoard = rotateCW(newBoard)
	case DirDown:
		newBoard, score = slideRows(rotateCW(board))
		newBoard = rotateCCW(newBoard)
	default:
		return board, 0, false
	}

	return newBoard, score, newBoard != board
}
