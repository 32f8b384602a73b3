// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Command sais builds the suffix array of a file and prints it, one
// position per line.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dgryski/go-farm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gosais/suffixarr"
)

var (
	validate bool
	debug    bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("sais failed")
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sais <file>",
		Short: "Build the suffix array of a file",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	cmd.Flags().BoolVar(&validate, "validate", false, "validate the constructed suffix array before printing it")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug-level logging")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	path := args[0]
	text, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	fingerprint := farm.Hash64(text)
	log.Debug().
		Str("file", path).
		Int("bytes", len(text)).
		Uint64("fingerprint", fingerprint).
		Msg("read input")

	start := time.Now()
	sa := suffixarr.Build(text)
	log.Info().
		Str("file", path).
		Int("bytes", len(text)).
		Dur("elapsed", time.Since(start)).
		Msg("built suffix array")

	if validate {
		if err := suffixarr.Validate(text, sa.AsSlice()); err != nil {
			return errors.Wrap(err, "validating suffix array")
		}
		log.Debug().Msg("suffix array validated")
	}

	w := cmd.OutOrStdout()
	for _, p := range sa.All() {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return nil
}
