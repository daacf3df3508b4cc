package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"district-sim/config"
	"district-sim/db"
	"district-sim/report"
)

func main() {
	// load the environment variables
	_ = godotenv.Load()

	// parse the command line arguments
	cfg, query := parseFlags()

	// Initialize logging
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	log.SetLevel(level)

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Print welcome message
	printWelcome()

	// Build phase: the store is read-only once Build returns
	store, summary, err := db.NewAggregator(cfg.Data).Build()
	if err != nil {
		log.Fatal("Failed to load source tables: ", err)
	}
	if summary.Empty() {
		log.WithFields(log.Fields{
			"root":    cfg.Data.Root,
			"missing": len(summary.Missing),
		}).Warn("No source tables found; every target will be reported as not found")
	}

	query, err = promptTarget(os.Stdin, os.Stdout, stdinIsTerminal(), query)
	if err != nil {
		log.Fatal("Failed to read target district: ", err)
	}
	target := db.DistrictID(query.State, query.District)

	// Query phase
	ranking, err := db.NewEngine(store, cfg.Data.Categories).Rank(target)
	if errors.Is(err, db.ErrTargetNotFound) {
		fmt.Printf("Target GEONAME %s not found.\n", target)
		return
	}
	if err != nil {
		log.Fatal("Failed to rank districts: ", err)
	}

	if err := report.NewReporter(cfg.Output, os.Stdout).Write(ranking); err != nil {
		log.Fatal("Failed to write rankings: ", err)
	}
}

func parseFlags() (*config.Config, targetQuery) {
	// Load default config
	cfg, err := config.LoadFromFile("./config.json")
	if err != nil {
		cfg = config.DefaultConfig()
	}
	cfg.ApplyEnv()

	// Data flags
	flag.StringVar(&cfg.Data.Root, "data-root", cfg.Data.Root, "Directory holding one sub-directory per category")
	flag.StringVar(&cfg.Data.Prefix, "prefix", cfg.Data.Prefix, "Source table file name prefix")

	// Output flags
	flag.StringVar(&cfg.Output.Dir, "output-dir", cfg.Output.Dir, "Directory the ranked tables are written to")
	flag.IntVar(&cfg.Output.TopN, "top", cfg.Output.TopN, "Number of closest districts to display per ranking")

	// Log level flag
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error, fatal)")

	// Target flags, prompted for when empty
	var query targetQuery
	flag.StringVar(&query.State, "state", "", "State name of the target district (e.g. California)")
	flag.StringVar(&query.District, "district", "", "District label of the target district (e.g. 1, (at Large))")

	// Parse flags
	flag.Parse()

	return cfg, query
}

func printWelcome() {
	fmt.Println("     _ _     _        _      _             _")
	fmt.Println("  __| (_)___| |_ _ __(_) ___| |_      ___(_)_ __ ___")
	fmt.Println(" / _` | / __| __| '__| |/ __| __|____/ __| | '_ ` _ \\")
	fmt.Println("| (_| | \\__ \\ |_| |  | | (__| ||_____\\__ \\ | | | | | |")
	fmt.Println(" \\__,_|_|___/\\__|_|  |_|\\___|\\__|    |___/_|_| |_| |_|")
}
