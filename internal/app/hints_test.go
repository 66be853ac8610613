// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDidYouMean(t *testing.T) {
	candidates := []string{"resolve", "suggest", "commands", "config", "stats", "version", "prompt"}

	tests := []struct {
		name    string
		word    string
		maxDist int
		want    []string
	}{
		{"one typo", "resovle", 2, []string{"resolve"}},
		{"case ignored", "SUGEST", 2, []string{"suggest"}},
		{"closest first", "confg", 2, []string{"config"}},
		{"exact match is not a correction", "stats", 2, nil},
		{"too far", "xyzzy", 2, []string{}},
		{"empty", "", 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DidYouMean(tt.word, candidates, tt.maxDist))
		})
	}
}

func TestDidYouMeanOrdersByDistance(t *testing.T) {
	got := DidYouMean("stat", []string{"status", "stats", "start"}, 2)
	assert.Equal(t, []string{"stats", "start", "status"}, got)
}
