package knights

// KnightOffsets lists the (dy, dx) steps a piece may take, in the
// order legal moves are reported.
var KnightOffsets = [8][2]int{
	{1, 2},
	{-1, 2},
	{1, -2},
	{-1, -2},
	{-2, 1},
	{-2, -1},
	{2, 1},
	{2, -1},
}

// LegalMoves appends to moves every destination p may jump to: on the
// board, not vacated, and not the opponent's square.
func LegalMoves(b *Board, p, opponent *Player, moves []Coord) []Coord {
	from := p.Position()
	for _, o := range KnightOffsets {
		to := from.Offset(o[0], o[1])
		if !b.InBounds(to) || b.At(to).IsVacated() {
			continue
		}
		if opponent != nil && to.Equal(opponent.Position()) {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

type Move struct {
	Player   int
	From, To Coord
}
