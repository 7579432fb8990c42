// Package shell implements the interactive montague shell: a line-oriented
// command language over the translator, the formula parser and the
// interpreter, and a terminal front end for it.
package shell

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/vic/montague/pkg/formula"
	"github.com/vic/montague/pkg/interpreter"
	"github.com/vic/montague/pkg/translator"
)

// Modes decide what a line that is not a command does.
const (
	ModeTranslate = "translate"
	ModeParse     = "parse"
	ModeSimplify  = "simplify"
	ModeEval      = "eval"
)

// Modes lists the recognised modes.
var Modes = []string{ModeTranslate, ModeParse, ModeSimplify, ModeEval}

// HelpMessage is the text shown by !help.
const HelpMessage = `Enter a line to process it in the current mode:

- **translate**: translate an English sentence into a formula and its type
- **parse**: print a formula in canonical form
- **simplify**: beta-reduce a formula
- **eval**: evaluate a formula against the world model

Commands:

- ` + "`!help`" + `: show this message
- ` + "`!mode`" + `: show the current mode
- ` + "`!mode <name>`" + `: switch to another mode`

// State is the session state shared by consecutive commands.
type State struct {
	Lexicon translator.Lexicon
	Model   *interpreter.WorldModel
	Mode    string
	Logger  *zap.Logger
}

// NewState returns a state in translate mode.
func NewState(lexicon translator.Lexicon, model *interpreter.WorldModel, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &State{Lexicon: lexicon, Model: model, Mode: ModeTranslate, Logger: logger}
}

// Execute runs one line and returns the response to show. Lines starting
// with ! are commands; anything else is processed in the current mode.
func Execute(line string, state *State) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	if state.Logger == nil {
		state.Logger = zap.NewNop()
	}
	if strings.HasPrefix(line, "!") {
		return command(line[1:], state)
	}
	state.Logger.Debug("processing line", zap.String("mode", state.Mode), zap.String("line", line))

	response, err := process(line, state)
	if err != nil {
		state.Logger.Debug("line failed", zap.Error(err))
		return "Error: " + err.Error()
	}
	return response
}

func command(text string, state *State) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "Unrecognized command ."
	}
	switch fields[0] {
	case "help":
		return HelpMessage + "\n\n" + currentMode(state)
	case "mode":
		if len(fields) == 1 {
			return currentMode(state)
		}
		mode := fields[1]
		if !slices.Contains(Modes, mode) {
			return fmt.Sprintf("%s is not a recognized mode.", mode)
		}
		state.Mode = mode
		return fmt.Sprintf("Switched to %s mode.", mode)
	default:
		return fmt.Sprintf("Unrecognized command %s.", fields[0])
	}
}

func currentMode(state *State) string {
	return fmt.Sprintf("You are currently in %s mode.", state.Mode)
}

func process(line string, state *State) (string, error) {
	switch state.Mode {
	case ModeTranslate:
		entry, err := translator.Translate(line, state.Lexicon)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Denotation: %s\nType: %s", entry.Denotation, entry.Type.ConciseString()), nil

	case ModeParse:
		f, err := formula.ParseFormula(line)
		if err != nil {
			return "", err
		}
		return f.String(), nil

	case ModeSimplify:
		f, err := formula.ParseFormula(line)
		if err != nil {
			return "", err
		}
		return formula.Simplify(f).String(), nil

	case ModeEval:
		if state.Model == nil {
			return "", fmt.Errorf("no world model loaded")
		}
		f, err := formula.ParseFormula(line)
		if err != nil {
			return "", err
		}
		value, err := interpreter.Evaluate(formula.Simplify(f), state.Model)
		if err != nil {
			return "", err
		}
		return value.String(), nil

	default:
		return "", fmt.Errorf("unknown mode %q", state.Mode)
	}
}
