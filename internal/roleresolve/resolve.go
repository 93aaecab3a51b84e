// Package roleresolve maps free-text role names to the canonical role set
// before they reach the engine, which only accepts validated roles.
package roleresolve

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pable/go-inhouse-stats/internal/model"
)

// MinScore is the minimum similarity (0-100) accepted when fuzzy-matching a
// role name. Inputs scoring below it are rejected rather than guessed.
const MinScore = 80

// aliases maps common shorthand straight to canonical roles.
var aliases = map[string]model.Role{
	"jg":      model.RoleJungle,
	"jgl":     model.RoleJungle,
	"jungler": model.RoleJungle,
	"middle":  model.RoleMid,
	"ad":      model.RoleBot,
	"adc":     model.RoleBot,
	"bottom":  model.RoleBot,
	"sup":     model.RoleSupport,
	"supp":    model.RoleSupport,
}

// Resolve maps free-text input to a canonical role: case-insensitive exact
// and alias matches first, then the closest role name above MinScore. An
// input not close enough to any role is a resolution failure.
func Resolve(input string) (model.Role, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return "", fmt.Errorf("empty role name")
	}
	if r := model.Role(s); r.Valid() {
		return r, nil
	}
	if r, ok := aliases[s]; ok {
		return r, nil
	}

	var best model.Role
	bestScore := -1
	for _, r := range model.Roles() {
		if score := similarity(s, string(r)); score > bestScore {
			best, bestScore = r, score
		}
	}
	if bestScore < MinScore {
		return "", fmt.Errorf("role %q not understood (closest %q scored %d, need %d)",
			input, best, bestScore, MinScore)
	}
	return best, nil
}

// similarity scores two strings on a 0-100 scale: the Levenshtein distance
// normalized by the longer length.
func similarity(a, b string) int {
	d := fuzzy.LevenshteinDistance(a, b)
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return (longest - d) * 100 / longest
}
