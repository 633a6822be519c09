package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvlref/trie"
)

func trieCommand() *cli.Command {
	return &cli.Command{
		Name:      "trie",
		Usage:     "load words into a trie and query it",
		ArgsUsage: "[word-file]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "search", Usage: "report whether these words are stored"},
			&cli.StringFlag{Name: "prefixes-of", Usage: "list stored words that prefix this text"},
		},
		Action: func(cctx *cli.Context) error {
			words, err := readWords(cctx)
			if err != nil {
				return err
			}
			t := trie.New()
			for _, w := range words {
				t.Insert(w)
			}

			out := cctx.App.Writer
			for _, w := range cctx.StringSlice("search") {
				fmt.Fprintf(out, "search %s: %t\n", w, t.Search(w))
			}
			if cctx.IsSet("prefixes-of") {
				text := []rune(cctx.String("prefixes-of"))
				for _, n := range t.Prefixes(string(text)) {
					fmt.Fprintln(out, string(text[:n]))
				}
			}

			return nil
		},
	}
}
