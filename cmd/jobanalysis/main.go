package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/config"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/jobstore"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/loader"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/session"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/ui"
	"github.com/pterm/pterm"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 JobAnalysis Usage Examples 📋")
	fmt.Println("\n1. List every job in a file:")
	fmt.Println("   jobanalysis -file jobs.json")

	fmt.Println("\n2. Show senior Go jobs, newest first:")
	fmt.Println("   jobanalysis -file jobs.json -level Senior -skill Go -sort time")

	fmt.Println("\n3. Show contract jobs as a table sorted by title, without the banner:")
	fmt.Println("   jobanalysis -file jobs.json -type Contract -sort title -table -silence")

	fmt.Println("\n4. Show every field of the third job in the file:")
	fmt.Println("   jobanalysis -file jobs.json -show 3")

	fmt.Println("\n5. Search job titles:")
	fmt.Println("   jobanalysis -file jobs.json -find \"backend\"")

	fmt.Println("\n6. Browse interactively (type 'help' at the prompt):")
	fmt.Println("   jobanalysis -interactive -file jobs.json")

	fmt.Println("\nGzip-compressed files (jobs.json.gz) are read transparently.")
	os.Exit(0)
}

func main() {
	// Command line flags
	file := flag.String("file", "", "JSON file of job postings to load")
	level := flag.String("level", models.All, "Only show jobs with this level")
	jobType := flag.String("type", models.All, "Only show jobs with this type")
	skill := flag.String("skill", models.All, "Only show jobs with this skill")
	sortKey := flag.String("sort", "", "Sort by title or time")
	show := flag.Int("show", 0, "Show every field of the job with this ID")
	find := flag.String("find", "", "Search job titles")
	table := flag.Bool("table", false, "Show results in table format")
	summary := flag.Bool("summary", false, "Print counts by level, type and skill after the list")
	interactive := flag.Bool("interactive", false, "Start an interactive session on stdin")
	configPath := flag.String("config", "", "Path to a YAML config file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner and progress output")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	quiet := *silence || *noBanner

	// Display banner (skip if either -silence or -nobanner is set)
	ui.PrintBanner(os.Stdout, quiet)

	if *examples {
		printExamples()
		return
	}

	if err := config.LoadEnv(); err != nil {
		fatal(&pterm.DefaultLogger, "Failed to load .env", err)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fatal(&pterm.DefaultLogger, "Failed to load configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		fatal(&pterm.DefaultLogger, "Invalid configuration", err)
	}

	// Flags take precedence over the config file and environment
	if *file != "" {
		cfg.Data.File = *file
	}
	if *table {
		cfg.Display.Table = true
	}
	if *sortKey != "" {
		cfg.Display.DefaultSort = *sortKey
	}

	logger := cfg.NewLogger(os.Stderr, *debug)

	renderer := ui.NewRenderer(os.Stdout)
	renderer.Table = cfg.Display.Table
	renderer.Hyperlinks = cfg.Display.Hyperlinks
	renderer.ShowPostedAge = cfg.Display.ShowPostedAge

	store := jobstore.New(logger)
	load := func(ctx context.Context, path string) ([]byte, error) {
		return loader.Read(ctx, path, loader.Options{
			Progress:          !quiet,
			ProgressThreshold: cfg.Display.ProgressThresholdBytes,
			ProgressWriter:    os.Stderr,
		})
	}
	controller := session.NewController(store, renderer, load, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *interactive {
		runInteractive(ctx, controller, cfg, logger)
		return
	}

	if cfg.Data.File == "" {
		fatal(logger, "A job file is required", fmt.Errorf("use -file or set data.file in the config"))
	}

	if err := controller.Load(ctx, cfg.Data.File); err != nil {
		controller.Report(err)
		os.Exit(1)
	}

	if *show > 0 {
		if err := controller.Show(*show); err != nil {
			controller.Report(err)
			os.Exit(1)
		}
		return
	}

	if *find != "" {
		controller.Find(*find)
		return
	}

	controller.Filter(models.Selection{Level: *level, Type: *jobType, Skill: *skill})

	if cfg.Display.DefaultSort != "" {
		key, ok := models.ParseSortKey(cfg.Display.DefaultSort)
		if !ok {
			fatal(logger, "Invalid sort key", fmt.Errorf("must be title or time, got %q", cfg.Display.DefaultSort))
		}
		if err := controller.Sort(key); err != nil {
			fatal(logger, "Sort failed", err)
		}
	}

	controller.List()

	if *summary {
		fmt.Println()
		controller.Summary()
	}
}

// runInteractive loads the configured file, if any, and reads commands from stdin
func runInteractive(ctx context.Context, controller *session.Controller, cfg *config.AppConfig, logger *pterm.Logger) {
	controller.AutoRender()

	if cfg.Data.File != "" {
		if err := controller.Load(ctx, cfg.Data.File); err != nil {
			controller.Report(err)
		} else if key, ok := models.ParseSortKey(cfg.Display.DefaultSort); ok {
			if err := controller.Sort(key); err != nil {
				controller.Report(err)
			}
		}
	}

	fmt.Println("Type 'help' for a list of commands.")
	if err := controller.Run(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		fatal(logger, "Session ended with an error", err)
	}
}

func fatal(logger *pterm.Logger, msg string, err error) {
	logger.Error(msg, logger.Args("error", err))
	os.Exit(1)
}
