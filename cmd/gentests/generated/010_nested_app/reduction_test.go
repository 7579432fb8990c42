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

func Test_010_nested_app_Reduction(t *testing.T) {
	helper.CheckReduction(t, "010_nested_app", input, output)
}
