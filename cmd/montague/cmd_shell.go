package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vic/montague/internal/shell"
	"github.com/vic/montague/pkg/interpreter"
	"github.com/vic/montague/pkg/translator"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell",
	Long: `Starts an interactive shell that translates sentences, parses and
simplifies formulas, and evaluates them against the world model. Type !help
inside the shell for its commands.

The lexicon and world model are optional; modes that need a missing one
report an error.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	lex := translator.Lexicon{}
	if _, err := os.Stat(cfg.Lexicon.Path); err == nil {
		if lex, err = loadLexicon(cfg.Lexicon.Path); err != nil {
			return err
		}
	} else {
		logger.Info("no lexicon loaded", zap.String("path", cfg.Lexicon.Path))
	}

	var model *interpreter.WorldModel
	if _, err := os.Stat(cfg.World.Path); err == nil {
		if model, err = loadWorld(cfg.World.Path); err != nil {
			return err
		}
	} else {
		logger.Info("no world model loaded", zap.String("path", cfg.World.Path))
	}

	return shell.Run(shell.NewState(lex, model, logger))
}
