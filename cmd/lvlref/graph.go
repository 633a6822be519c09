package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvlref/bfs"
	"github.com/katalvlaran/lvlref/graph"
)

func edgeFlag() cli.Flag {
	return &cli.IntSliceFlag{Name: "edge", Usage: "directed edge u,v (repeatable)"}
}

func topoCommand() *cli.Command {
	return &cli.Command{
		Name:  "topo",
		Usage: "topological order of a directed graph",
		Flags: []cli.Flag{edgeFlag()},
		Action: func(cctx *cli.Context) error {
			edges, err := pairs(cctx, "edge")
			if err != nil {
				return err
			}
			order, err := graph.TopologicalSort(graph.New(edges), graph.WithCancelContext(cctx.Context))
			if err != nil {
				return err
			}
			fmt.Fprintln(cctx.App.Writer, joinInts(order))

			return nil
		},
	}
}

func bfsCommand() *cli.Command {
	return &cli.Command{
		Name:  "bfs",
		Usage: "distance to a target, or to the furthest vertex",
		Flags: []cli.Flag{
			edgeFlag(),
			&cli.BoolFlag{Name: "bidirectional", Usage: "treat edges as undirected"},
			&cli.IntFlag{Name: "source", Usage: "start vertex", Required: true},
			&cli.IntFlag{Name: "target", Usage: "stop at this vertex"},
			&cli.IntFlag{Name: "max-depth", Usage: "do not search further than this (0 = no limit)"},
		},
		Action: func(cctx *cli.Context) error {
			edges, err := pairs(cctx, "edge")
			if err != nil {
				return err
			}
			var gopts []graph.Option
			if cctx.Bool("bidirectional") {
				gopts = append(gopts, graph.WithBidirectional())
			}
			g := graph.New(edges, gopts...)

			opts := []bfs.Option{
				bfs.WithContext(cctx.Context),
				bfs.WithMaxDepth(cctx.Int("max-depth")),
				bfs.WithOnVisit(func(v, depth int) error {
					slog.Debug("bfs visit", "vertex", v, "depth", depth)
					return nil
				}),
			}
			if cctx.IsSet("target") {
				opts = append(opts, bfs.WithTarget(cctx.Int("target")))
			}
			res, err := bfs.BFS(g, cctx.Int("source"), opts...)
			if err != nil {
				return err
			}
			path, err := res.PathTo(res.Target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cctx.App.Writer, "target %d\ndistance %d\npath %s\n", res.Target, res.Distance, joinInts(path))

			return nil
		},
	}
}
