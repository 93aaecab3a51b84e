package roleresolve

import (
	"testing"

	"github.com/pable/go-inhouse-stats/internal/model"
)

func TestResolve(t *testing.T) {
	type want struct {
		role model.Role
		err  bool
	}

	cases := map[string]struct {
		reason string
		input  string
		want   want
	}{
		"Exact": {
			reason: "A canonical role name resolves to itself.",
			input:  "support",
			want:   want{role: model.RoleSupport},
		},
		"CaseAndWhitespace": {
			reason: "Input is lowercased and trimmed before matching.",
			input:  "  SUPPORT ",
			want:   want{role: model.RoleSupport},
		},
		"AliasADC": {
			reason: "Common shorthand maps straight to the canonical role.",
			input:  "adc",
			want:   want{role: model.RoleBot},
		},
		"AliasSupp": {
			reason: "Common shorthand maps straight to the canonical role.",
			input:  "supp",
			want:   want{role: model.RoleSupport},
		},
		"AliasJungler": {
			reason: "Common shorthand maps straight to the canonical role.",
			input:  "Jungler",
			want:   want{role: model.RoleJungle},
		},
		"FuzzyTypo": {
			reason: "One dropped letter still scores 85 against support, above the threshold.",
			input:  "suport",
			want:   want{role: model.RoleSupport},
		},
		"FuzzyTruncated": {
			reason: "A truncated role name scores 83 against jungle, above the threshold.",
			input:  "jungl",
			want:   want{role: model.RoleJungle},
		},
		"RejectAmbiguousTypo": {
			reason: "tob scores 66 against top, below the threshold; guessing would be worse than failing.",
			input:  "tob",
			want:   want{err: true},
		},
		"RejectEmpty": {
			reason: "Empty input cannot resolve to anything.",
			input:  "   ",
			want:   want{err: true},
		},
		"RejectGarbage": {
			reason: "Input unrelated to any role is a resolution failure.",
			input:  "xyzzy",
			want:   want{err: true},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Resolve(tc.input)
			if tc.want.err {
				if err == nil {
					t.Fatalf("\n%s\nResolve(%q): expected error, got %q", tc.reason, tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("\n%s\nResolve(%q): unexpected error: %v", tc.reason, tc.input, err)
			}
			if got != tc.want.role {
				t.Errorf("\n%s\nResolve(%q): want %q, got %q", tc.reason, tc.input, tc.want.role, got)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	cases := map[string]struct {
		a, b string
		want int
	}{
		"Identical":  {"support", "support", 100},
		"OneEdit":    {"suport", "support", 85},
		"Disjoint":   {"aaa", "zzz", 0},
		"BothEmpty":  {"", "", 0},
		"OneEmpty":   {"", "top", 0},
		"OneSubstitution": {"tob", "top", 66},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := similarity(tc.a, tc.b); got != tc.want {
				t.Errorf("similarity(%q, %q): want %d, got %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
