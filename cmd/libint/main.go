package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/NolanDeveloper/libint/pkg/bigint"
	"github.com/NolanDeveloper/libint/pkg/stream"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "libint",
		Short: "Arbitrary-precision integer calculator",
	}

	var base, obase int
	rootCmd.PersistentFlags().IntVarP(&base, "base", "b", 10, "Input base (2-16)")
	rootCmd.PersistentFlags().IntVarP(&obase, "obase", "o", 10, "Output base (2-16)")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine) // glog flags

	lib, err := bigint.Start()
	if err != nil {
		glog.Exitf("failed to initialize: %v", err)
	}

	binary := func(name, short string, op func(x, y *bigint.Signed) (*bigint.Signed, error)) *cobra.Command {
		return &cobra.Command{
			Use:   name + " X Y",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, err := parseOperand(lib, args[0], base)
				if err != nil {
					return err
				}
				y, err := parseOperand(lib, args[1], base)
				if err != nil {
					return err
				}
				z, err := op(x, y)
				if err != nil {
					return err
				}
				return printValue(lib, z, obase)
			},
		}
	}

	addCmd := binary("add", "Print X + Y", lib.Add)
	subCmd := binary("sub", "Print X - Y", lib.Sub)
	mulCmd := binary("mul", "Print X * Y", lib.Mul)

	var floor bool
	divCmd := binary("div", "Print the quotient of X / Y", func(x, y *bigint.Signed) (*bigint.Signed, error) {
		if floor {
			return lib.DivFloor(x, y)
		}
		return lib.DivTrunc(x, y)
	})
	divCmd.Flags().BoolVar(&floor, "floor", false, "Round toward negative infinity instead of zero")

	var modFloor bool
	modCmd := binary("mod", "Print the remainder of X / Y", func(x, y *bigint.Signed) (*bigint.Signed, error) {
		if modFloor {
			return lib.ModFloor(x, y)
		}
		return lib.ModTrunc(x, y)
	})
	modCmd.Flags().BoolVar(&modFloor, "floor", false, "Remainder follows the divisor's sign")

	var dmFloor bool
	divmodCmd := &cobra.Command{
		Use:   "divmod X Y",
		Short: "Print the quotient and remainder of X / Y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(lib, args[0], base)
			if err != nil {
				return err
			}
			y, err := parseOperand(lib, args[1], base)
			if err != nil {
				return err
			}
			var q, r *bigint.Signed
			if dmFloor {
				q, r, err = lib.DivModFloor(x, y)
			} else {
				q, r, err = lib.DivModTrunc(x, y)
			}
			if err != nil {
				return err
			}
			if err := printValue(lib, q, obase); err != nil {
				return err
			}
			return printValue(lib, r, obase)
		},
	}
	divmodCmd.Flags().BoolVar(&dmFloor, "floor", false, "Round toward negative infinity instead of zero")

	powCmd := &cobra.Command{
		Use:   "pow X E",
		Short: "Print non-negative X raised to the host-integer exponent E",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, end, err := lib.UnsignedFromString(args[0], base)
			if err != nil {
				return fmt.Errorf("cannot parse %q: %w", args[0], err)
			}
			if end != len(args[0]) {
				return fmt.Errorf("cannot parse %q: unexpected byte at offset %d", args[0], end)
			}
			e, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid exponent %q: %w", args[1], err)
			}
			glog.V(1).Infof("pow %s %d", args[0], e)
			p, err := lib.UnsignedPow(u, e)
			if err != nil {
				return err
			}
			s, err := lib.UnsignedToString(p, obase)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}

	cmpCmd := &cobra.Command{
		Use:   "cmp X Y",
		Short: "Print -1, 0 or 1 as X is less than, equal to or greater than Y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(lib, args[0], base)
			if err != nil {
				return err
			}
			y, err := parseOperand(lib, args[1], base)
			if err != nil {
				return err
			}
			order, err := lib.Compare(x, y)
			if err != nil {
				return err
			}
			fmt.Println(order)
			return nil
		},
	}

	convertCmd := &cobra.Command{
		Use:   "convert X",
		Short: "Re-encode X from --base to --obase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(lib, args[0], base)
			if err != nil {
				return err
			}
			return printValue(lib, x, obase)
		},
	}

	sumCmd := &cobra.Command{
		Use:   "sum",
		Short: "Sum whitespace-separated integers read from standard input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			total, count, err := sumStream(lib, stream.NewFromReader(os.Stdin), base)
			if err != nil {
				return err
			}
			glog.V(1).Infof("summed %d values", count)
			return printValue(lib, total, obase)
		},
	}

	rootCmd.AddCommand(addCmd, subCmd, mulCmd, divCmd, modCmd, divmodCmd, powCmd, cmpCmd, convertCmd, sumCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	if err := lib.Finish(); err != nil {
		glog.Errorf("failed to finish: %v", err)
	}
}

// parseOperand parses a full command-line argument, rejecting trailing
// garbage (a bare prefix parse is success at the library level).
func parseOperand(lib *bigint.Lib, s string, base int) (*bigint.Signed, error) {
	x, end, err := lib.FromString(s, base)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q: %w", s, err)
	}
	if end != len(s) {
		return nil, fmt.Errorf("cannot parse %q: unexpected byte at offset %d", s, end)
	}
	return x, nil
}

func printValue(lib *bigint.Lib, x *bigint.Signed, obase int) error {
	s, err := lib.ToString(x, obase)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

// sumStream reads signed integers separated by whitespace until EOF and
// folds them into a running total.
func sumStream(lib *bigint.Lib, src *stream.Stream, base int) (*bigint.Signed, int, error) {
	total, err := lib.Create(0)
	if err != nil {
		return nil, 0, err
	}
	count := 0
	for {
		ch, eof, err := src.Lookahead()
		for err == nil && !eof && isSpace(ch) {
			ch, eof, err = src.SkipChar()
		}
		if err != nil {
			return nil, count, fmt.Errorf("read input: %w", err)
		}
		if eof {
			return total, count, nil
		}
		before := src.Pos()
		x, err := lib.FromStream(src, base)
		if err != nil {
			return nil, count, err
		}
		if src.Pos() == before {
			return nil, count, fmt.Errorf("unexpected byte %q in input", ch)
		}
		if err := lib.AddReplace(&total, x); err != nil {
			return nil, count, err
		}
		count++
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
