// pawns-only is a console game of pawns-only chess for two players.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/pawns-only-go/internal/config"
	"github.com/lgbarn/pawns-only-go/internal/output"
	"github.com/lgbarn/pawns-only-go/internal/parser"
	"github.com/lgbarn/pawns-only-go/internal/session"
)

const programVersion = "0.1.0"

var (
	whiteName = flag.String("white", "", "name of the player with the white pawns")
	blackName = flag.String("black", "", "name of the player with the black pawns")
	verbosity = flag.Int("v", 0, "verbosity (0=results only, 1=running commentary)")
	version   = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("pawns-only version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	cfg.WhiteName = *whiteName
	cfg.BlackName = *blackName
	cfg.Verbosity = *verbosity

	run(cfg)
}

// run plays one game session over the configured streams.
func run(cfg *config.Config) {
	in := bufio.NewScanner(cfg.Input)
	fmt.Fprintln(cfg.Output, "Pawns-Only Chess")

	if cfg.WhiteName == "" {
		cfg.WhiteName = readName(cfg, in, "First Player's name:")
	}
	if cfg.BlackName == "" {
		cfg.BlackName = readName(cfg, in, "Second Player's name:")
	}

	manager := session.NewManager()
	game := manager.Create(cfg.WhiteName, cfg.BlackName)
	defer manager.Remove(game.ID())

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "started game %s: %s vs %s\n", game.ID(), cfg.WhiteName, cfg.BlackName)
	}

	fmt.Fprint(cfg.Output, output.RenderBoard(game.Board()))

	for {
		fmt.Fprintf(cfg.Output, "%s's turn:\n", game.PlayerName(game.ToMove()))
		if !in.Scan() {
			return
		}

		action := parser.ParseAction(strings.TrimSpace(in.Text()))
		switch action.Type {
		case parser.ExitAction:
			fmt.Fprintln(cfg.Output, "Bye!")
			return

		case parser.InvalidAction:
			fmt.Fprintln(cfg.Output, "Invalid Input")
			continue
		}

		outcome, err := game.Play(action.Move)
		if err != nil {
			if cfg.Verbosity > 0 {
				fmt.Fprintf(cfg.LogFile, "rejected: %v\n", err)
			}
			fmt.Fprintln(cfg.Output, "Invalid Input")
			continue
		}

		fmt.Fprint(cfg.Output, output.RenderBoard(game.Board()))

		if outcome.Terminal() {
			fmt.Fprintln(cfg.Output, output.RenderOutcome(outcome))
			fmt.Fprintln(cfg.Output, "Bye!")
			return
		}
	}
}

// readName prompts for and reads one player name.
func readName(cfg *config.Config, in *bufio.Scanner, prompt string) string {
	fmt.Fprintln(cfg.Output, prompt)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pawns-only [options]\n\n")
	fmt.Fprintf(os.Stderr, "A console game of pawns-only chess for two players.\n\n")
	fmt.Fprintf(os.Stderr, "Moves are entered in long algebraic form, e.g. e2e4.\n")
	fmt.Fprintf(os.Stderr, "Enter \"exit\" to end the game.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
