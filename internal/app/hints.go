// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultMaxDistance is the edit distance up to which a candidate is
// offered as a correction.
const DefaultMaxDistance = 2

// DidYouMean returns the candidates within maxDist edits of word, closest
// first and then in candidate order. The comparison ignores case. An exact
// match is not a correction and yields nothing.
func DidYouMean(word string, candidates []string, maxDist int) []string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil
	}

	type scored struct {
		name string
		dist int
	}
	var matches []scored
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(word, strings.ToLower(c))
		if d == 0 {
			return nil
		}
		if d <= maxDist {
			matches = append(matches, scored{c, d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.name)
	}
	return out
}
