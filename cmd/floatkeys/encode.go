package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/forestrie/go-floatkey/floatkey"
)

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <float>...",
		Short: "Print the V1 key of each value",
		Long: `Print the V1 key of each value as value<TAB>hex(key).

Negative values are taken as values, not flags: "floatkeys encode -1 -0.5"
needs no "--" separator.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Root().PersistentFlags()
			values, help, err := splitEncodeArgs(flags, args)
			if err != nil {
				return err
			}
			if help {
				return cmd.Help()
			}
			if len(values) == 0 {
				return ErrNoValues
			}
			if err := a.setup(flags.Changed); err != nil {
				return err
			}
			return runEncode(a, cmd.OutOrStdout(), values)
		},
	}
}

// splitEncodeArgs separates the inherited flags from the values. Anything
// that is not "--name", "--name=value", "-h" or "--help" is a value, so "-1"
// and "-Inf" reach strconv.ParseFloat. Values after "--" are taken verbatim.
func splitEncodeArgs(flags *pflag.FlagSet, args []string) (values []string, help bool, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(values, args[i+1:]...), help, nil
		case arg == "-h" || arg == "--help":
			help = true
		case strings.HasPrefix(arg, "--"):
			name, val, hasVal := strings.Cut(arg[2:], "=")
			if flags.Lookup(name) == nil {
				return nil, false, fmt.Errorf("unknown flag: --%s", name)
			}
			if !hasVal {
				if i+1 == len(args) {
					return nil, false, fmt.Errorf("flag needs an argument: --%s", name)
				}
				i++
				val = args[i]
			}
			if err := flags.Set(name, val); err != nil {
				return nil, false, fmt.Errorf("invalid argument %q for --%s: %w", val, name, err)
			}
		default:
			values = append(values, arg)
		}
	}
	return values, help, nil
}

func runEncode(a *app, out io.Writer, args []string) error {
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return err
		}
		writeKeyLine(out, v)
	}
	a.log.Debugf("encode: %d values", len(args))
	return nil
}

func writeKeyLine(out io.Writer, v float64) {
	k := floatkey.EncodeV1(v)
	fmt.Fprintf(out, "%v\t%x\n", v, k[:])
}
