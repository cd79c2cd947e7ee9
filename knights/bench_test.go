package knights

import "testing"

func benchGame(b *testing.B) *Game {
	g, err := New(DefaultConfig)
	if err != nil {
		b.Fatal(err)
	}
	if err := g.SizeBoard(8, 8); err != nil {
		b.Fatal(err)
	}
	for i, at := range []Coord{At(3, 3), At(7, 7)} {
		g.SetName("p")
		g.ChooseGlyph(i)
		if err := g.Place(at); err != nil {
			b.Fatal(err)
		}
	}
	return g
}

func BenchmarkLegalMoves(b *testing.B) {
	g := benchGame(b)
	var buf []Coord
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = LegalMoves(g.Board(), g.Active(), g.Opponent(), buf[:0])
	}
}

func BenchmarkCloneMove(b *testing.B) {
	g := benchGame(b)
	to := g.LegalMoves()[0]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := g.Clone()
		if err := n.Move(to); err != nil {
			b.Fatal(err)
		}
	}
}
