// Package lvlref is a reference collection of classic algorithms and data
// structures, one small package per technique.
//
// The centerpiece is radix, a compressed prefix tree that splits nodes on
// insert and merges or prunes them on delete while keeping its structural
// invariants. The other packages are peers:
//
//	prefix/       longest common prefix of two symbol sequences
//	radix/        generic radix tree, string wrapper, rendering and checks
//	trie/         plain character trie with prefix enumeration
//	segtree/      generic segment tree with point update and range query
//	disjointset/  union-find with path halving and union by rank
//	graph/        integer-vertex adjacency-set graph and topological sort
//	builder/      deterministic graph fixtures (path, star, random DAG…)
//	bfs/          breadth-first search to a target or the furthest vertex
//	heaps/        generic binary heap and top-k selection
//	nums/         GCD/LCM, Stirling numbers, sieve of Eratosthenes
//
// The lvlref command in cmd/lvlref drives every package from the shell:
//
//	echo "test team toast" | lvlref radix --delete team --print
//	.
//	└── t
//	    ├── est $
//	    └── oast $
//
// Structures are not safe for concurrent mutation; guard them externally.
package lvlref
