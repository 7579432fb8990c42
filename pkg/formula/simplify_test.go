package formula

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSimplify(t *testing.T) {
	every := MustParseFormula("LP.LQ.Ax.P(x) -> Q(x)")
	child := MustParseFormula("Lx.Child(x)")

	cases := []struct {
		name string
		tree Formula
		want Formula
	}{
		{
			name: "identity",
			tree: call(Lambda{"x", v("x")}, v("j")),
			want: v("j"),
		},
		{
			// (Lx.Ly.x & y)(a)(b) -> a & b
			name: "curried",
			tree: call(Lambda{"x", Lambda{"y", And{v("x"), v("y")}}}, v("a"), v("b")),
			want: And{v("a"), v("b")},
		},
		{
			// (LP.P(x))(Lx.x | a) -> x | a
			name: "lambda argument",
			tree: call(Lambda{"P", call(v("P"), v("x"))}, Lambda{"x", Or{v("x"), v("a")}}),
			want: Or{v("x"), v("a")},
		},
		{
			// (LP.P(a, b))(Lx.Ly.x & y) -> a & b
			name: "argument applied twice",
			tree: call(Lambda{"P", call(v("P"), v("a"), v("b"))}, Lambda{"x", Lambda{"y", And{v("x"), v("y")}}}),
			want: And{v("a"), v("b")},
		},
		{
			name: "every child",
			tree: call(every, child),
			want: Lambda{"Q", ForAll{"x", IfThen{call(v("Child"), v("x")), call(v("Q"), v("x"))}}},
		},
		{
			name: "redex under connectives",
			tree: Not{And{call(Lambda{"x", call(v("Good"), v("x"))}, v("j")), v("p")}},
			want: Not{And{call(v("Good"), v("j")), v("p")}},
		},
		{
			name: "redex under quantifier",
			tree: Exists{"y", call(Lambda{"x", call(v("Bad"), v("x"))}, v("y"))},
			want: Exists{"y", call(v("Bad"), v("y"))},
		},
		{
			name: "redex in argument only",
			tree: call(v("F"), call(Lambda{"x", v("x")}, v("a"))),
			want: call(v("F"), v("a")),
		},
		{
			name: "shadowed parameter survives",
			tree: call(Lambda{"x", And{v("x"), Lambda{"x", v("x")}}}, v("j")),
			want: And{v("j"), Lambda{"x", v("x")}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Simplify(tc.tree)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Simplify(%s) mismatch (-want +got):\n%s", tc.tree, diff)
			}
			if HasRedex(got) {
				t.Errorf("Simplify(%s) = %s still has a redex", tc.tree, got)
			}
		})
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	inputs := []string{
		"x & y | z -> m",
		"Lx.Good(x)",
		"(LP.LQ.Ax.P(x) -> Q(x))(Lx.Child(x))",
		"(Lx.Ly.Loves(x, y))(j, m) <-> ~Hates(j, m)",
		"F(G(a), Lx.x)",
	}
	for _, input := range inputs {
		f := MustParseFormula(input)
		once := Simplify(f)
		twice := Simplify(once)
		if !Equal(once, twice) {
			t.Errorf("Simplify not idempotent on %q: %s then %s", input, once, twice)
		}
		if !HasRedex(f) && !Equal(f, once) {
			t.Errorf("Simplify changed redex-free %q to %s", input, once)
		}
	}
}

func TestHasRedex(t *testing.T) {
	if HasRedex(MustParseFormula("Lx.Good(x) & F(a)")) {
		t.Errorf("no lambda is applied, expected no redex")
	}
	if !HasRedex(MustParseFormula("G((Lx.x)(a))")) {
		t.Errorf("expected the nested application to be a redex")
	}
}
