package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samschueth/recipe-bot/internal/cli"
	"github.com/samschueth/recipe-bot/internal/config"
	"github.com/samschueth/recipe-bot/internal/errors"
	"github.com/samschueth/recipe-bot/internal/service"
	"github.com/samschueth/recipe-bot/internal/ui"
)

var version = "0.1.0"

func printHelp() {
	fmt.Printf(`recipe-bot - Recipe generation and bias-evaluation dataset extraction

USAGE:
    recipe-bot [OPTIONS] [COMMAND]

OPTIONS:
    --help          Show this help information
    --version       Print version information
    --init          Initialize a new dataset library
    --verbose       Log error details

COMMANDS:
    (no command)       Start interactive TUI mode
    extract            Generate the synthetic bias-evaluation dataset
    list, ls           List saved datasets
    show [name]        Show a saved dataset summary
    search <query>     Fuzzy-search generated prompts
    copy <query>       Copy the best-matching prompt to the clipboard
    templates          List catalog templates and expansion sizes
    recipe <query>     Generate and evaluate a recipe
    help               Show CLI command help

EXAMPLES:
    recipe-bot                              # Start interactive mode
    recipe-bot --init                       # Initialize new library
    recipe-bot extract                      # Generate and save the dataset
    recipe-bot extract --format json        # Print the full dataset as JSON
    recipe-bot search "community"           # Search generated prompts
    recipe-bot recipe "mushroom risotto"    # Generate a recipe

STORAGE:
    Default directory: ~/.recipe-bot
    Override with: RECIPE_BOT_DIR=<path>
`)
}

func main() {
	var showVersion bool
	var initLib bool
	var showHelp bool
	var verbose bool

	flag.BoolVar(&showVersion, "version", false, "Print version information")
	flag.BoolVar(&initLib, "init", false, "Initialize a new dataset library")
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.BoolVar(&verbose, "verbose", false, "Log error details")
	flag.Parse()

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("recipe-bot version %s\n", version)
		os.Exit(0)
	}

	errHandler := errors.NewCLIErrorHandler(verbose)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errHandler.FormatError(err))
		os.Exit(1)
	}

	svc, err := service.NewService(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, errHandler.FormatError(err))
		os.Exit(1)
	}

	if initLib {
		if err := svc.InitLibrary(); err != nil {
			fmt.Println("Error initializing library:", err)
			os.Exit(1)
		}
		fmt.Println("Initialized recipe-bot library")
		return
	}

	// Command line arguments mean CLI mode - execute command and exit
	args := flag.Args()
	if len(args) > 0 {
		cliHandler := cli.NewCLI(svc, cfg)
		if err := cliHandler.ExecuteCommand(args); err != nil {
			fmt.Fprintln(os.Stderr, errHandler.FormatError(err))
			os.Exit(1)
		}
		return
	}

	// No arguments provided - start TUI mode
	model, err := ui.NewModel(svc, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, errHandler.FormatError(err))
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errHandler.FormatError(err))
		os.Exit(1)
	}
}
