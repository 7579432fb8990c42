package reduction

import (
	_ "embed"
	"testing"

	"github.com/vic/montague/cmd/gentests/helper"
)

//go:embed input.formula
var input string

//go:embed output.formula
var output string

func Test_041_iff_Reduction(t *testing.T) {
	helper.CheckReduction(t, "041_iff", input, output)
}
