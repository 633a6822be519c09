package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
)

// readWords returns the whitespace-separated words of the file named by the
// first argument, or of the app's reader when it is absent or "-".
func readWords(cctx *cli.Context) ([]string, error) {
	var r io.Reader = cctx.App.Reader
	if path := cctx.Args().First(); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open word list: %w", err)
		}
		defer f.Close()
		r = f
	}

	var words []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	return words, nil
}

// intArgs parses every positional argument as an int.
func intArgs(cctx *cli.Context) ([]int, error) {
	args := cctx.Args().Slice()
	out := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", a, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// pairs groups a flattened int slice flag ("--edge 1,2 --edge 2,3") into pairs.
func pairs(cctx *cli.Context, name string) ([][2]int, error) {
	flat := cctx.IntSlice(name)
	if len(flat)%2 != 0 {
		return nil, fmt.Errorf("--%s expects pairs a,b; got %d values", name, len(flat))
	}
	out := make([][2]int, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		out = append(out, [2]int{flat[i], flat[i+1]})
	}

	return out, nil
}

// joinInts formats values space-separated.
func joinInts(values []int) string {
	b := make([]byte, 0, len(values)*4)
	for i, v := range values {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}

	return string(b)
}
