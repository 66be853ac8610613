// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "strconv"

// =============================================================================
// SPECIAL TOKENS
// =============================================================================

// SpecialKind enumerates the local actions.
type SpecialKind int

const (
	SpecialHelp        SpecialKind = iota // "?"
	SpecialQuickLaunch                    // "q!"
	SpecialInvert                         // "invert!"
	SpecialKeys                           // "keys!"
	SpecialSettings                       // "settings!"
	SpecialCategory                       // "<digit>!"
)

var specialTokens = map[string]SpecialKind{
	"?":         SpecialHelp,
	"q!":        SpecialQuickLaunch,
	"invert!":   SpecialInvert,
	"keys!":     SpecialKeys,
	"settings!": SpecialSettings,
}

// Special is a recognised special token. Digit is only meaningful for
// SpecialCategory.
type Special struct {
	Kind  SpecialKind
	Digit int
}

// ParseSpecial recognises the fixed tokens and the "<digit>!" pattern.
// The input must already be trimmed.
func ParseSpecial(s string) (Special, bool) {
	if kind, ok := specialTokens[s]; ok {
		return Special{Kind: kind}, true
	}
	if len(s) == 2 && s[0] >= '0' && s[0] <= '9' && s[1] == '!' {
		return Special{Kind: SpecialCategory, Digit: int(s[0] - '0')}, true
	}
	return Special{}, false
}

// CategoryIndex maps the typed digit to a zero-based index into
// Table.Categories. "1!" is index 0; "0!" yields -1.
func (s Special) CategoryIndex() int {
	return s.Digit - 1
}

// String returns the token as typed.
func (s Special) String() string {
	switch s.Kind {
	case SpecialHelp:
		return "?"
	case SpecialQuickLaunch:
		return "q!"
	case SpecialInvert:
		return "invert!"
	case SpecialKeys:
		return "keys!"
	case SpecialSettings:
		return "settings!"
	case SpecialCategory:
		return strconv.Itoa(s.Digit) + "!"
	default:
		return ""
	}
}

// =============================================================================
// DISPATCH
// =============================================================================

// Callbacks are the host actions bound to special tokens. Nil callbacks
// are skipped.
type Callbacks struct {
	OnHelp           func()
	OnQuickLaunch    func()
	OnInvertColors   func()
	OnToggleKeys     func()
	OnSettings       func()
	OnCategoryLaunch func(index int)
}

// Dispatch invokes the callback bound to token. It reports whether a
// callback ran.
func Dispatch(token Special, cb Callbacks) bool {
	var fn func()
	switch token.Kind {
	case SpecialHelp:
		fn = cb.OnHelp
	case SpecialQuickLaunch:
		fn = cb.OnQuickLaunch
	case SpecialInvert:
		fn = cb.OnInvertColors
	case SpecialKeys:
		fn = cb.OnToggleKeys
	case SpecialSettings:
		fn = cb.OnSettings
	case SpecialCategory:
		if cb.OnCategoryLaunch != nil {
			cb.OnCategoryLaunch(token.CategoryIndex())
			return true
		}
	}
	if fn == nil {
		return false
	}
	fn()
	return true
}
