package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvlref/radix"
)

func radixCommand() *cli.Command {
	return &cli.Command{
		Name:      "radix",
		Usage:     "load words into a radix tree and query it",
		ArgsUsage: "[word-file]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "delete", Usage: "delete these words after loading"},
			&cli.StringSliceFlag{Name: "find", Usage: "report whether these words are stored"},
			&cli.StringSliceFlag{Name: "prefix", Usage: "report whether any stored word starts with these prefixes"},
			&cli.StringFlag{Name: "complete", Usage: "list stored words starting with this prefix"},
			&cli.BoolFlag{Name: "print", Usage: "print the tree shape"},
		},
		Action: runRadix,
	}
}

func runRadix(cctx *cli.Context) error {
	words, err := readWords(cctx)
	if err != nil {
		return err
	}

	t := radix.NewStringTree(
		radix.WithOnSplit(func(path []rune) { slog.Debug("radix split", "at", string(path)) }),
		radix.WithOnMerge(func(path []rune) { slog.Debug("radix merge", "into", string(path)) }),
		radix.WithOnPrune(func(path []rune) { slog.Debug("radix prune", "node", string(path)) }),
	)
	for _, w := range words {
		t.Insert(w)
	}
	for _, w := range cctx.StringSlice("delete") {
		if !t.Delete(w) {
			slog.Warn("radix delete: word not stored", "word", w)
		}
	}
	if err := t.Check(); err != nil {
		return err
	}
	slog.Info("radix tree loaded", "words", t.Len(), "nodes", t.Tree().Nodes(), "depth", t.Tree().Depth())

	out := cctx.App.Writer
	for _, w := range cctx.StringSlice("find") {
		fmt.Fprintf(out, "find %s: %t\n", w, t.Find(w))
	}
	for _, p := range cctx.StringSlice("prefix") {
		fmt.Fprintf(out, "prefix %s: %t\n", p, t.StartsWith(p))
	}
	if cctx.IsSet("complete") {
		for _, w := range t.KeysWithPrefix(cctx.String("complete")) {
			fmt.Fprintln(out, w)
		}
	}
	if cctx.Bool("print") {
		fmt.Fprint(out, t.String())
	}

	return nil
}
