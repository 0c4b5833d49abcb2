// SPDX-License-Identifier: MIT

// Command pgtune prints tuned PostgreSQL memory parameters for the current
// container. Inputs come from the environment: PG_VERSION (required) and
// APTIBLE_CONTAINER_SIZE in megabytes (optional, default 1024).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aptible/pgtune/internal/config"
	pglog "github.com/aptible/pgtune/internal/log"
	"github.com/aptible/pgtune/internal/selftest"
	"github.com/aptible/pgtune/internal/tune"
	"github.com/aptible/pgtune/internal/version"
)

func main() {
	runSelfTest := flag.Bool("test", false, "run the built-in fixture battery and exit")
	outPath := flag.String("o", "", "write config to file (atomic) instead of stdout")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("pgtune %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		return
	}

	pglog.Configure(pglog.Config{
		Service: "pgtune",
		Version: version.Version,
	})
	logger := pglog.WithComponent("cli")

	if flag.NArg() > 0 {
		// Stray arguments report usage but are not an error exit.
		usage()
		return
	}

	if *runSelfTest {
		if err := selftest.Run(); err != nil {
			logger.Fatal().
				Err(err).
				Str("event", "selftest.failed").
				Msg("self-test mismatch")
		}
		fmt.Fprintln(os.Stderr, "OK")
		return
	}

	settings, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("event", "config.load_failed").
			Msg("failed to resolve inputs from environment")
	}

	params := tune.Recommend(settings.Version, settings.RAMKB)

	if *outPath != "" {
		if err := tune.WriteConfFile(*outPath, params); err != nil {
			logger.Fatal().
				Err(err).
				Str("event", "conf.write_failed").
				Str("path", *outPath).
				Msg("failed to write config file")
		}
		logger.Info().
			Str("event", "conf.written").
			Str("path", *outPath).
			Str("pg_version", settings.Version.String()).
			Int64("ram_kb", settings.RAMKB).
			Msg("wrote tuned configuration")
		return
	}

	if err := tune.WriteConf(os.Stdout, params); err != nil {
		logger.Fatal().
			Err(err).
			Str("event", "conf.write_failed").
			Msg("failed to write config")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [--test] [-o file] [-version]\n", os.Args[0])
}
