package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vic/montague/pkg/formula"
	"github.com/vic/montague/pkg/interpreter"
)

const program = `
individual(/mary).
individual(/john).
individual(/rex).

constant("j", /john).
constant("m", /mary).

good(/john).
bad(/mary).
man(/john).
human(/john).
human(/mary).
loves(/john, /mary).
loves(/mary, /mary).

holds("rain").
proposition("snow").
proposition("rain").

lovedBy(Y, X) :- loves(X, Y).
person(X) :- human(X).
`

func TestLoadString(t *testing.T) {
	m, err := LoadString(program)
	require.NoError(t, err)

	assert.Equal(t, []interpreter.Individual{"john", "mary", "rex"}, m.Individuals)

	j, ok := m.Lookup("j")
	require.True(t, ok)
	assert.Equal(t, interpreter.Individual("john"), j)

	rain, _ := m.Lookup("rain")
	snow, _ := m.Lookup("snow")
	assert.Equal(t, interpreter.Truth(true), rain)
	assert.Equal(t, interpreter.Truth(false), snow)

	good, ok := m.Lookup("Good")
	require.True(t, ok)
	assert.Equal(t, "{john}", good.String())
	lower, _ := m.Lookup("good")
	assert.Same(t, good, lower)
}

func TestLoadedModelInterprets(t *testing.T) {
	m, err := LoadString(program)
	require.NoError(t, err)

	cases := map[string]bool{
		"Good(j)":               true,
		"Bad(j)":                false,
		"Ax.Human(x) -> Man(x)": false,
		"Ex.Man(x) & Good(x)":   true,
		"Loves(j, m)":           true,
		"LovedBy(m, j)":         true,
		"LovedBy(j, m)":         false,
		"Ax.Person(x)":          false,
		"Ex.~Person(x)":         true,
		"rain & ~snow":          true,
	}
	for input, want := range cases {
		got, err := interpreter.Interpret(formula.MustParseFormula(input), m)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestLoadDomainIncludesRelationArguments(t *testing.T) {
	m, err := LoadString(`knows(/ann, /bob).`)
	require.NoError(t, err)
	assert.Equal(t, []interpreter.Individual{"ann", "bob"}, m.Individuals)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":             `individual(/john`,
		"constant by name":   `constant(/j, /john).`,
		"string in relation": `good("john").`,
		"individual string":  `individual("john").`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadString(src)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.mg")
	require.NoError(t, os.WriteFile(path, []byte(program), 0o644))
	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, m.Individuals, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.mg"))
	assert.Error(t, err)
}
