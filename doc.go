// Package tilesearch is an in-memory search engine for sliding-tile
// puzzles (8-puzzle, 15-puzzle) — from core state-space primitives to
// informed, memory-bounded, local and evolutionary search.
//
// 🚀 What is tilesearch?
//
//	A modern, deterministic, zero-dependency library that brings together:
//		• Core primitives: Problem contract, node arena, search results & agents
//		• Puzzle domain: immutable boards, legal moves, solvable scrambles
//		• Heuristics: misplaced tiles, Manhattan distance, linear conflict
//		• Best-first search: A*, Weighted A*, Greedy Best-First
//		• Memory-bounded search: IDA* with an explicit frontier stack
//		• Local search: Hill Climbing, Simulated Annealing
//		• Evolutionary search: Genetic Algorithm over action chromosomes
//
// ✨ Why choose tilesearch?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every stochastic component takes an explicit seed
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – bring your own Problem; the algorithms never ask what
//     they are searching
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/    — Problem, State, Action, Node arena, SearchResult, Agent
//	puzzle/  — sliding-tile domain model, scrambles & heuristics
//	astar/   — A*, Weighted A* and Greedy Best-First over one engine
//	idastar/ — iterative-deepening A*, O(depth) memory
//	local/   — Hill Climbing & Simulated Annealing
//	genetic/ — Genetic Algorithm over fixed-length move sequences
//	solver/  — unified dispatcher: pick an algorithm by enum or name
//
// Quick ASCII example:
//
//	    1 2 3
//	    4 . 6        two moves from solved:
//	    7 5 8        blank DOWN, then RIGHT.
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and worked examples.
//
//	go get github.com/katalvlaran/tilesearch
package tilesearch
