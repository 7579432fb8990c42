package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vic/montague/internal/config"
	"github.com/vic/montague/internal/logging"
	"github.com/vic/montague/pkg/interpreter"
	"github.com/vic/montague/pkg/lexicon"
	"github.com/vic/montague/pkg/translator"
	"github.com/vic/montague/pkg/world"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "montague",
	Short: "Translate English into logic and evaluate it against a world model",
	Long: `montague translates simple English sentences into formulas of a typed
lambda calculus with first-order connectives and quantifiers, reduces them to
normal form and evaluates them against a finite world model described as a
Mangle program.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "montague.yaml", "Configuration file")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(simplifyCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(shellCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// inputText joins the arguments, or reads standard input when there are none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func loadLexicon(path string) (translator.Lexicon, error) {
	lex, err := lexicon.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded lexicon", zap.String("path", path), zap.Int("entries", len(lex)))
	return lex, nil
}

func loadWorld(path string) (*interpreter.WorldModel, error) {
	m, err := world.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world %s: %w", path, err)
	}
	logger.Debug("loaded world", zap.String("path", path),
		zap.Int("individuals", len(m.Individuals)), zap.Int("symbols", len(m.Assignment)))
	return m, nil
}
