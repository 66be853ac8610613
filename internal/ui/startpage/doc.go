// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package startpage implements the sttp terminal startpage.

The page shows a clock, an input box with a live indicator of what the
current input resolves to, a suggestion list and, when the "keys!"
preference is on, the command table grouped by category.

# Keys

	Enter        submit the input or the selected suggestion
	Up/Down      move through suggestions (wraps)
	Tab          complete the selected (or first) suggestion
	Esc          clear the input, quit when it is already empty
	Ctrl+C       quit

Typing "?" and Enter opens the help overlay rendered with glamour. Special
tokens and redirects are carried out by app.App off the update loop.

# Instant Redirect

With navigation.instant_redirect enabled, typing a single character that
is exactly a command key submits it after a short delay unless the input
changes first.
*/
package startpage
