package main

import (
	"fmt"
	"math/big"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvlref/nums"
)

func primesCommand() *cli.Command {
	return &cli.Command{
		Name:  "primes",
		Usage: "list primes below a bound",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "below", Usage: "exclusive upper bound", Required: true},
		},
		Action: func(cctx *cli.Context) error {
			fmt.Fprintln(cctx.App.Writer, joinInts(nums.Primes(cctx.Int("below"))))

			return nil
		},
	}
}

func gcdCommand() *cli.Command {
	return &cli.Command{
		Name:      "gcd",
		Usage:     "greatest common divisor and least common multiple",
		ArgsUsage: "<a> <b>",
		Action: func(cctx *cli.Context) error {
			args, err := intArgs(cctx)
			if err != nil {
				return err
			}
			if len(args) != 2 {
				return fmt.Errorf("gcd needs exactly two integers, got %d", len(args))
			}
			a, b := args[0], args[1]
			fmt.Fprintf(cctx.App.Writer, "gcd %d\nlcm %d\n", nums.GCD(a, b), nums.LCM(a, b))

			return nil
		},
	}
}

func stirlingCommand() *cli.Command {
	return &cli.Command{
		Name:      "stirling",
		Usage:     "Stirling numbers of the first or second kind",
		ArgsUsage: "<n> <k>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "kind", Usage: "first or second", Value: "second"},
		},
		Action: func(cctx *cli.Context) error {
			args, err := intArgs(cctx)
			if err != nil {
				return err
			}
			if len(args) != 2 {
				return fmt.Errorf("stirling needs n and k, got %d values", len(args))
			}

			var v *big.Int
			switch kind := cctx.String("kind"); kind {
			case "first":
				v, err = nums.StirlingFirst(args[0], args[1])
			case "second":
				v, err = nums.StirlingSecond(args[0], args[1])
			default:
				return fmt.Errorf("unknown kind %q", kind)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cctx.App.Writer, v)

			return nil
		},
	}
}
