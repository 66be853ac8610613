// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// =============================================================================
// TABLE TESTS
// =============================================================================

func TestDefaultTable_Valid(t *testing.T) {
	if err := DefaultTable().Validate(); err != nil {
		t.Fatalf("DefaultTable().Validate() = %v", err)
	}
}

func TestDefaultTable_WildcardLast(t *testing.T) {
	table := DefaultTable()
	if !table[len(table)-1].IsWildcard() {
		t.Errorf("last command = %q, want wildcard", table[len(table)-1].Key)
	}
	if _, ok := table.Wildcard(); !ok {
		t.Error("Wildcard() not found")
	}
}

func TestTable_Get(t *testing.T) {
	table := DefaultTable()

	cmd, ok := table.Get("so")
	if !ok || cmd.Name != "Stack Overflow" {
		t.Errorf("Get(so) = %+v, %v", cmd, ok)
	}
	if _, ok := table.Get("nope"); ok {
		t.Error("Get(nope) should fail")
	}
}

func TestTable_Categories(t *testing.T) {
	got := DefaultTable().Categories()
	want := []string{"General", "Programming", "Social", "Entertainment", "Search"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %q, want %q", got, want)
	}
}

func TestTable_InCategory(t *testing.T) {
	table := DefaultTable()

	social := table.InCategory(2)
	if keys := Table(social).Keys(); !reflect.DeepEqual(keys, []string{"r", "tw", "li"}) {
		t.Errorf("InCategory(2) keys = %q", keys)
	}
	if got := table.InCategory(-1); got != nil {
		t.Errorf("InCategory(-1) = %v, want nil", got)
	}
	if got := table.InCategory(9); got != nil {
		t.Errorf("InCategory(9) = %v, want nil", got)
	}
}

func TestTable_ByCategory(t *testing.T) {
	table := Table{
		{Key: "a", URL: "https://a.example", Category: "Work"},
		{Key: "b", URL: "https://b.example"},
	}

	groups := table.ByCategory()
	if len(groups["Work"]) != 1 || len(groups["General"]) != 1 {
		t.Errorf("ByCategory() = %+v", groups)
	}
}

func TestTable_QuickLaunch(t *testing.T) {
	keys := Table(DefaultTable().QuickLaunch()).Keys()
	if !reflect.DeepEqual(keys, []string{"g", "r", "y"}) {
		t.Errorf("QuickLaunch() keys = %q", keys)
	}
}

func TestCommand_Predicates(t *testing.T) {
	c := Command{Key: "g", URL: "https://github.com", Search: "/search?q={}"}
	if !c.SupportsSearch() {
		t.Error("command with template should support search")
	}
	if c.IsWildcard() {
		t.Error("g is not the wildcard")
	}
	if (Command{Key: WildcardKey}).SupportsSearch() {
		t.Error("command without template should not support search")
	}
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestTable_Validate(t *testing.T) {
	valid := Command{Key: "g", Name: "GitHub", URL: "https://github.com", Search: "/search?q={}"}

	tests := []struct {
		name    string
		table   Table
		wantErr string
		is      error
	}{
		{name: "ok", table: Table{valid}},
		{name: "empty table", table: Table{}},
		{
			name:    "empty key",
			table:   Table{{Key: " ", URL: "https://a.example"}},
			wantErr: "key is empty",
		},
		{
			name:    "key with whitespace",
			table:   Table{{Key: "a b", URL: "https://a.example"}},
			wantErr: "key contains whitespace",
		},
		{
			name:  "duplicate key",
			table: Table{valid, valid},
			is:    ErrDuplicateKey,
		},
		{
			name: "two wildcards",
			table: Table{
				{Key: WildcardKey, URL: "https://a.example", Search: "/?q={}"},
				{Key: WildcardKey, URL: "https://b.example", Search: "/?q={}"},
			},
			is: ErrMultipleWildcards,
		},
		{
			name:    "wildcard without template",
			table:   Table{{Key: WildcardKey, URL: "https://a.example"}},
			wantErr: "needs a search template",
		},
		{
			name:    "non http url",
			table:   Table{{Key: "f", URL: "ftp://files.example"}},
			wantErr: "must use http or https",
		},
		{
			name:    "missing host",
			table:   Table{{Key: "f", URL: "https://"}},
			wantErr: "has no host",
		},
		{
			name:    "template without placeholder",
			table:   Table{{Key: "f", URL: "https://a.example", Search: "/search"}},
			wantErr: "lacks {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr == "" && tt.is == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want it to mention %q", err, tt.wantErr)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Validate() = %v, want errors.Is %v", err, tt.is)
			}
		})
	}
}
