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

func Test_030_shadowed_parameter_Reduction(t *testing.T) {
	helper.CheckReduction(t, "030_shadowed_parameter", input, output)
}
