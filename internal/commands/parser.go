// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"regexp"
	"strings"
)

var (
	// urlPattern accepts bare domains, optional scheme, port and path.
	urlPattern = regexp.MustCompile(`(?i)^((https?://)?[\w-]+(\.[\w-]+)+\.?(:\d+)?(/\S*)?)$`)

	// schemePattern detects an explicit scheme on a URL literal.
	schemePattern = regexp.MustCompile(`(?i)^[a-z]+://`)
)

// =============================================================================
// DELIMITERS
// =============================================================================

// Delimiters separate a command key from its search term or path.
type Delimiters struct {
	Search string
	Path   string
}

// DefaultDelimiters returns ":" for searches and "/" for paths.
func DefaultDelimiters() Delimiters {
	return Delimiters{Search: ":", Path: "/"}
}

// defaultKeyPrefixed lists keys whose canonical path includes the key
// itself, e.g. "r/programming" -> reddit.com/r/programming.
var defaultKeyPrefixed = []string{"r", "u"}

// =============================================================================
// RESOLVER
// =============================================================================

// Resolver turns raw input into a Resolution. It holds no mutable state
// and is safe for concurrent use.
type Resolver struct {
	table       Table
	delims      Delimiters
	keyPrefixed map[string]bool
}

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithKeyPrefixedPaths replaces the keys whose path redirects keep the
// "key/" segment.
func WithKeyPrefixedPaths(keys ...string) ResolverOption {
	return func(r *Resolver) {
		r.keyPrefixed = make(map[string]bool, len(keys))
		for _, k := range keys {
			r.keyPrefixed[k] = true
		}
	}
}

// NewResolver creates a resolver over table. The table is not copied and
// must not be modified afterwards.
func NewResolver(table Table, delims Delimiters, opts ...ResolverOption) *Resolver {
	r := &Resolver{table: table, delims: delims}
	WithKeyPrefixedPaths(defaultKeyPrefixed...)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve is shorthand for NewResolver(table, delims).Resolve(input).
func Resolve(input string, table Table, delims Delimiters) Resolution {
	return NewResolver(table, delims).Resolve(input)
}

// Table returns the command table the resolver scans.
func (r *Resolver) Table() Table {
	return r.table
}

// Delimiters returns the configured delimiters.
func (r *Resolver) Delimiters() Delimiters {
	return r.delims
}

// Resolve applies the rules in precedence order: special token, URL
// literal, then the command scan (exact, search, path) with the wildcard
// as the last resort.
func (r *Resolver) Resolve(input string) Resolution {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return NoMatch{Input: input}
	}

	if token, ok := ParseSpecial(trimmed); ok {
		return SpecialMatch{Token: token}
	}

	if urlPattern.MatchString(trimmed) {
		redirect := trimmed
		if !schemePattern.MatchString(trimmed) {
			redirect = "http://" + trimmed
		}
		return URLMatch{Input: trimmed, Redirect: redirect}
	}

	searchHead, searchRest, hasSearch := splitFirst(trimmed, r.delims.Search)
	pathHead, pathRest, hasPath := splitFirst(trimmed, r.delims.Path)

	var fallback *FallbackMatch
	for _, cmd := range r.table {
		if input == cmd.Key {
			return ExactMatch{Command: cmd, Redirect: cmd.URL}
		}

		if hasSearch && searchHead == cmd.Key && cmd.SupportsSearch() {
			term := strings.TrimSpace(searchRest)
			return SearchMatch{
				Command:   cmd,
				Term:      term,
				Delimiter: r.delims.Search,
				Redirect:  prepSearch(cmd, term),
			}
		}

		if hasPath && pathHead == cmd.Key {
			if path := strings.TrimSpace(pathRest); path != "" {
				return PathMatch{
					Command:   cmd,
					Path:      path,
					Delimiter: r.delims.Path,
					Redirect:  r.prepPath(cmd, path),
				}
			}
		}

		if cmd.IsWildcard() && fallback == nil {
			fallback = &FallbackMatch{
				Command:  cmd,
				Term:     input,
				Redirect: prepSearch(cmd, input),
			}
		}
	}

	if fallback != nil {
		return *fallback
	}
	return NoMatch{Input: input}
}

// =============================================================================
// HELPERS
// =============================================================================

// splitFirst splits s at the first sep. An empty sep never splits.
func splitFirst(s, sep string) (head, rest string, found bool) {
	if sep == "" {
		return s, "", false
	}
	return strings.Cut(s, sep)
}

// prepSearch fills the first placeholder of the command's search template.
// A command without a template resolves to its base URL.
func prepSearch(cmd Command, term string) string {
	if !cmd.SupportsSearch() {
		return cmd.URL
	}
	return cmd.URL + strings.Replace(cmd.Search, SearchPlaceholder, EncodeQueryComponent(term), 1)
}

// prepPath joins the base URL and path with exactly one slash, keeping the
// "key/" segment for key-prefixed commands.
func (r *Resolver) prepPath(cmd Command, path string) string {
	base := cmd.URL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	if r.keyPrefixed[cmd.Key] {
		return base + cmd.Key + "/" + path
	}
	return base + path
}

// EncodeQueryComponent percent-encodes s the way browsers encode a URI
// component: only ASCII letters, digits and -_.!~*'() are left as is, and
// a space becomes %20 rather than "+".
func EncodeQueryComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&15])
	}
	return b.String()
}

func isUnreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
