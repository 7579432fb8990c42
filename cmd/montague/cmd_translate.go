package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vic/montague/pkg/translator"
)

var (
	translateRaw     bool
	translateLexicon string
)

var translateCmd = &cobra.Command{
	Use:   "translate [sentence...]",
	Short: "Translate an English sentence into a formula",
	Long: `Looks up every word of the sentence in the lexicon, combines the
entries by function application and prints the denotation and its type.

With --raw the words are folded strictly from left to right and the
denotation is printed without beta reduction.

Example:
  montague translate John is good`,
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().BoolVar(&translateRaw, "raw", false, "Fold left to right and skip simplification")
	translateCmd.Flags().StringVarP(&translateLexicon, "lexicon", "l", "", "Lexicon file (overrides config)")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	path := cfg.Lexicon.Path
	if translateLexicon != "" {
		path = translateLexicon
	}
	lex, err := loadLexicon(path)
	if err != nil {
		return err
	}

	translate := translator.Translate
	if translateRaw {
		translate = translator.TranslateSentence
	}
	entry, err := translate(text, lex)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Denotation: %s\nType: %s\n", entry.Denotation, entry.Type.ConciseString())
	return nil
}
