package astar_test

import (
	"testing"

	"github.com/katalvlaran/tilesearch/astar"
	"github.com/katalvlaran/tilesearch/puzzle"
)

func benchSearch(b *testing.B, build func(p *puzzle.Problem) *astar.AStar) {
	b.Helper()
	p, err := puzzle.Scrambled(3, 15, 42)
	if err != nil {
		b.Fatal(err)
	}
	alg := build(p)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := alg.Search(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAStar_Manhattan(b *testing.B) {
	benchSearch(b, func(p *puzzle.Problem) *astar.AStar {
		alg, _ := astar.New(puzzle.Manhattan(p))
		return alg
	})
}

func BenchmarkAStar_LinearConflict(b *testing.B) {
	benchSearch(b, func(p *puzzle.Problem) *astar.AStar {
		alg, _ := astar.New(puzzle.LinearConflict(p))
		return alg
	})
}

func BenchmarkWeightedAStar(b *testing.B) {
	benchSearch(b, func(p *puzzle.Problem) *astar.AStar {
		alg, _ := astar.NewWeighted(puzzle.Manhattan(p), 1.5)
		return alg
	})
}

func BenchmarkGreedy(b *testing.B) {
	benchSearch(b, func(p *puzzle.Problem) *astar.AStar {
		alg, _ := astar.NewGreedy(puzzle.Manhattan(p))
		return alg
	})
}
