// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// =============================================================================
// RESOLUTION KIND
// =============================================================================

// Kind identifies which rule produced a Resolution.
type Kind int

const (
	KindNone     Kind = iota // Nothing matched and no wildcard exists
	KindURL                  // Input is a literal URL or domain
	KindSpecial              // Input is a local action token
	KindExact                // Input equals a command key
	KindSearch               // "key<search delimiter>term"
	KindPath                 // "key<path delimiter>path"
	KindFallback             // Wildcard search with the whole input
)

var kindNames = [...]string{
	KindNone:     "none",
	KindURL:      "url",
	KindSpecial:  "special",
	KindExact:    "exact",
	KindSearch:   "search",
	KindPath:     "path",
	KindFallback: "fallback",
}

// String returns the lower-case tag name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// =============================================================================
// RESOLUTION VARIANTS
// =============================================================================

// Resolution is the outcome of resolving one input. The concrete type is
// one of URLMatch, SpecialMatch, ExactMatch, SearchMatch, PathMatch,
// FallbackMatch or NoMatch; each carries only the fields relevant to it.
type Resolution interface {
	Kind() Kind
	isResolution()
}

// URLMatch is a literal URL. Redirect always carries a scheme.
type URLMatch struct {
	Input    string
	Redirect string
}

// SpecialMatch is a local action token such as "?" or "2!".
type SpecialMatch struct {
	Token Special
}

// ExactMatch is a bare command key.
type ExactMatch struct {
	Command  Command
	Redirect string
}

// SearchMatch is a key followed by the search delimiter and a term.
// Term may be empty ("g:").
type SearchMatch struct {
	Command   Command
	Term      string
	Delimiter string
	Redirect  string
}

// PathMatch is a key followed by the path delimiter and a non-empty path.
type PathMatch struct {
	Command   Command
	Path      string
	Delimiter string
	Redirect  string
}

// FallbackMatch is the wildcard command searching for the whole input.
type FallbackMatch struct {
	Command  Command
	Term     string
	Redirect string
}

// NoMatch means nothing matched and no wildcard is configured.
type NoMatch struct {
	Input string
}

func (URLMatch) Kind() Kind      { return KindURL }
func (SpecialMatch) Kind() Kind  { return KindSpecial }
func (ExactMatch) Kind() Kind    { return KindExact }
func (SearchMatch) Kind() Kind   { return KindSearch }
func (PathMatch) Kind() Kind     { return KindPath }
func (FallbackMatch) Kind() Kind { return KindFallback }
func (NoMatch) Kind() Kind       { return KindNone }

func (URLMatch) isResolution()      {}
func (SpecialMatch) isResolution()  {}
func (ExactMatch) isResolution()    {}
func (SearchMatch) isResolution()   {}
func (PathMatch) isResolution()     {}
func (FallbackMatch) isResolution() {}
func (NoMatch) isResolution()       {}

// =============================================================================
// ACCESSORS
// =============================================================================

// RedirectOf returns the navigation target of r. Special and none results
// have no target.
func RedirectOf(r Resolution) (string, bool) {
	switch v := r.(type) {
	case URLMatch:
		return v.Redirect, true
	case ExactMatch:
		return v.Redirect, true
	case SearchMatch:
		return v.Redirect, true
	case PathMatch:
		return v.Redirect, true
	case FallbackMatch:
		return v.Redirect, true
	default:
		return "", false
	}
}

// CommandOf returns the matched command, if the variant carries one.
func CommandOf(r Resolution) (Command, bool) {
	switch v := r.(type) {
	case ExactMatch:
		return v.Command, true
	case SearchMatch:
		return v.Command, true
	case PathMatch:
		return v.Command, true
	case FallbackMatch:
		return v.Command, true
	default:
		return Command{}, false
	}
}

// Describe returns the short status line shown next to the input box.
func Describe(r Resolution) string {
	switch v := r.(type) {
	case SpecialMatch:
		return "⚡ Special command"
	case URLMatch:
		return "🌐 URL"
	case SearchMatch:
		return "🔍 Search " + v.Command.Name
	case PathMatch:
		return "📁 Go to " + v.Command.Name
	case ExactMatch:
		return "➡️ " + v.Command.Name
	default:
		return "🔍 Default search"
	}
}
