// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands resolves typed startpage input into navigation targets
// and proposes completions for partially typed input.
//
// Both halves work off the same ordered command table and are pure: they
// never log, never touch the network and never mutate the table, so a
// single Resolver or Suggester can be shared across goroutines.
//
// # Key Types
//
//   - Command / Table: configured shortcuts (key, base URL, search template)
//   - Resolver: maps raw input to exactly one Resolution variant
//   - Resolution: URLMatch, SpecialMatch, ExactMatch, SearchMatch,
//     PathMatch, FallbackMatch or NoMatch
//   - Special / Callbacks: local actions such as "?", "q!" and "3!"
//   - Suggester: ranked, de-duplicated completion strings
//
// # Resolution Order
//
// Special tokens win over URL literals, which win over the command scan.
// Inside the scan an exact key beats a search suffix, which beats a path
// suffix. The wildcard command "*" is only used when nothing else matched.
//
// # Usage
//
//	r := commands.NewResolver(table, commands.DefaultDelimiters())
//	switch res := r.Resolve("g:react hooks").(type) {
//	case commands.SpecialMatch:
//	    commands.Dispatch(res.Token, callbacks)
//	default:
//	    if target, ok := commands.RedirectOf(res); ok {
//	        open(target)
//	    }
//	}
//
// Get suggestions:
//
//	s := commands.NewSuggester(table, commands.DefaultAuxiliary())
//	s.Suggest("gi", 5)
//	// ["g → GitHub", "github.com", ...]
package commands
