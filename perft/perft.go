// Package perft counts the continuations of a position by walking the
// full game tree to a fixed depth.
package perft

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nelhage/knights/knights"
)

type Result struct {
	// Nodes counts positions still in play after exactly depth plies.
	Nodes uint64
	// Wins counts games that ended within depth plies, by winner.
	Wins [2]uint64
}

func (r *Result) Add(o Result) {
	r.Nodes += o.Nodes
	r.Wins[0] += o.Wins[0]
	r.Wins[1] += o.Wins[1]
}

func (r Result) Games() uint64 {
	return r.Wins[0] + r.Wins[1]
}

// Count walks every sequence of up to depth moves from g. g itself is
// not modified.
func Count(g *knights.Game, depth int) Result {
	r, _ := walk(context.Background(), g, depth)
	return r
}

func walk(ctx context.Context, g *knights.Game, depth int) (Result, error) {
	var r Result
	if err := ctx.Err(); err != nil {
		return r, err
	}
	if over, _ := g.GameOver(); over {
		r.Wins[g.WinnerIndex()]++
		return r, nil
	}
	if depth == 0 {
		r.Nodes++
		return r, nil
	}
	for _, m := range g.LegalMoves() {
		next := g.Clone()
		if err := next.Move(m); err != nil {
			panic(err)
		}
		sub, err := walk(ctx, next, depth-1)
		if err != nil {
			return r, err
		}
		r.Add(sub)
	}
	return r, nil
}

// Parallel is Count with the root moves shared out between threads
// goroutines. It stops early if ctx is cancelled.
func Parallel(ctx context.Context, g *knights.Game, depth, threads int) (Result, error) {
	if threads < 1 {
		threads = 1
	}
	if over, _ := g.GameOver(); over || depth == 0 {
		return walk(ctx, g, depth)
	}

	roots := g.LegalMoves()
	input := make(chan knights.Coord)
	results := make([]Result, threads)

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(input)
		for _, m := range roots {
			select {
			case input <- m:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for i := 0; i < threads; i++ {
		i := i
		grp.Go(func() error {
			for m := range input {
				next := g.Clone()
				if err := next.Move(m); err != nil {
					return err
				}
				sub, err := walk(ctx, next, depth-1)
				if err != nil {
					return err
				}
				results[i].Add(sub)
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Result{}, err
	}

	var total Result
	for _, r := range results {
		total.Add(r)
	}
	return total, nil
}
