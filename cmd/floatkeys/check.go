package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-floatkey/floatkey"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check key order against numeric order on random samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(a, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&a.cfg.Trials, flagTrials, defaultTrials, "Number of independent trials.")
	cmd.Flags().IntVar(&a.cfg.Samples, flagSamples, defaultSamples, "Values per trial.")
	cmd.Flags().Uint64Var(&a.cfg.Seed, flagSeed, 0, "Random seed, 0 picks one from the clock.")
	cmd.Flags().BoolVar(&a.cfg.FullRange, flagFullRange, false, "Draw finite values of every sign and exponent instead of [0,1).")
	return cmd
}

func runCheck(a *app, out io.Writer) error {
	cfg := a.cfg
	if cfg.Trials <= 0 {
		return ErrBadTrials
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))

	a.log.Infof("check: trials=%d samples=%d fullRange=%v seed=%d",
		cfg.Trials, cfg.Samples, cfg.FullRange, seed)

	for i := 0; i < cfg.Trials; i++ {
		if err := floatkey.TrialV1(r, cfg.Samples, cfg.FullRange); err != nil {
			return fmt.Errorf("trial %d (seed %d): %w", i, seed, err)
		}
	}

	fmt.Fprintf(out, "ok: %d trials of %d samples\n", cfg.Trials, cfg.Samples)
	return nil
}
