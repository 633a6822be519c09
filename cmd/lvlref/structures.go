package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvlref/disjointset"
	"github.com/katalvlaran/lvlref/heaps"
	"github.com/katalvlaran/lvlref/segtree"
)

func topkCommand() *cli.Command {
	return &cli.Command{
		Name:      "topk",
		Usage:     "the k smallest values in ascending order",
		ArgsUsage: "<values...>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "k", Usage: "how many values", Required: true},
		},
		Action: func(cctx *cli.Context) error {
			values, err := intArgs(cctx)
			if err != nil {
				return err
			}
			top, err := heaps.TopK(values, cctx.Int("k"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cctx.App.Writer, joinInts(top))

			return nil
		},
	}
}

func dsuCommand() *cli.Command {
	return &cli.Command{
		Name:  "dsu",
		Usage: "union-find over elements 0..size-1",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Usage: "number of elements", Required: true},
			&cli.IntSliceFlag{Name: "union", Usage: "merge the sets of a,b (repeatable)"},
			&cli.IntSliceFlag{Name: "connected", Usage: "report whether a,b share a set (repeatable)"},
		},
		Action: func(cctx *cli.Context) error {
			d, err := disjointset.New(cctx.Int("size"))
			if err != nil {
				return err
			}
			unions, err := pairs(cctx, "union")
			if err != nil {
				return err
			}
			for _, p := range unions {
				if _, err := d.Union(p[0], p[1]); err != nil {
					return err
				}
			}

			out := cctx.App.Writer
			queries, err := pairs(cctx, "connected")
			if err != nil {
				return err
			}
			for _, p := range queries {
				ok, err := d.Connected(p[0], p[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "connected %d %d: %t\n", p[0], p[1], ok)
			}
			fmt.Fprintf(out, "sets %d\n", d.Sets())

			return nil
		},
	}
}

func segtreeCommand() *cli.Command {
	return &cli.Command{
		Name:      "segtree",
		Usage:     "range queries over a list of integers",
		ArgsUsage: "<values...>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "op", Usage: "sum, min or max", Value: "sum"},
			&cli.IntSliceFlag{Name: "set", Usage: "assign index i the value v before querying: i,v (repeatable)"},
			&cli.IntSliceFlag{Name: "query", Usage: "inclusive range l,r (repeatable)"},
		},
		Action: func(cctx *cli.Context) error {
			op, err := segOp(cctx.String("op"))
			if err != nil {
				return err
			}
			values, err := intArgs(cctx)
			if err != nil {
				return err
			}
			t, err := segtree.New(values, op)
			if err != nil {
				return err
			}

			updates, err := pairs(cctx, "set")
			if err != nil {
				return err
			}
			for _, u := range updates {
				if err := t.Update(u[0], u[1]); err != nil {
					return err
				}
			}

			ranges, err := pairs(cctx, "query")
			if err != nil {
				return err
			}
			for _, r := range ranges {
				v, err := t.Query(r[0], r[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cctx.App.Writer, "%s[%d,%d] %d\n", cctx.String("op"), r[0], r[1], v)
			}

			return nil
		},
	}
}

func segOp(name string) (segtree.Op[int], error) {
	switch strings.ToLower(name) {
	case "sum":
		return func(a, b int) int { return a + b }, nil
	case "min":
		return func(a, b int) int {
			if b < a {
				return b
			}
			return a
		}, nil
	case "max":
		return func(a, b int) int {
			if b > a {
				return b
			}
			return a
		}, nil
	default:
		return nil, fmt.Errorf("unknown op %q", name)
	}
}
