package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-floatkey/floatkey"
)

var demoValues = []float64{-5.12, -3.14, 0.0, 3.14, 5.12}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Sort a small fixed set by key and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(a, cmd.OutOrStdout())
		},
	}
}

func runDemo(a *app, out io.Writer) error {
	values := append([]float64(nil), demoValues...)
	floatkey.SortByKeyV1(values)
	a.log.Infof("demo: sorted %d values by key", len(values))

	for _, v := range values {
		writeKeyLine(out, v)
	}
	return floatkey.CheckOrderV1(values)
}
