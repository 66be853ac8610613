// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// =============================================================================
// BUILT-IN COMMAND TABLE
// =============================================================================

// DefaultTable returns the built-in command table used when the
// configuration does not define one. The wildcard comes last.
func DefaultTable() Table {
	return Table{
		// General
		{Key: "g", Name: "GitHub", URL: "https://github.com", Search: "/search?q={}", Category: "General", Color: "#333", QuickLaunch: true},
		{Key: "gm", Name: "Gmail", URL: "https://mail.google.com", Category: "General", Color: "#EA4335"},
		{Key: "gd", Name: "Google Drive", URL: "https://drive.google.com", Category: "General", Color: "#4285F4"},
		{Key: "cal", Name: "Google Calendar", URL: "https://calendar.google.com", Category: "General", Color: "#4285F4"},

		// Programming
		{Key: "so", Name: "Stack Overflow", URL: "https://stackoverflow.com", Search: "/search?q={}", Category: "Programming", Color: "#F48024"},
		{Key: "mdn", Name: "MDN Web Docs", URL: "https://developer.mozilla.org", Search: "/en-US/search?q={}", Category: "Programming", Color: "#000"},
		{Key: "npm", Name: "NPM", URL: "https://npmjs.com", Search: "/search?q={}", Category: "Programming", Color: "#CB3837"},
		{Key: "gh", Name: "GitHub Issues", URL: "https://github.com/issues", Category: "Programming", Color: "#333"},

		// Social
		{Key: "r", Name: "Reddit", URL: "https://reddit.com", Search: "/search?q={}", Category: "Social", Color: "#FF4500", QuickLaunch: true},
		{Key: "tw", Name: "Twitter", URL: "https://twitter.com", Search: "/search?q={}", Category: "Social", Color: "#1DA1F2"},
		{Key: "li", Name: "LinkedIn", URL: "https://linkedin.com", Search: "/search/results/all/?keywords={}", Category: "Social", Color: "#0077B5"},

		// Entertainment
		{Key: "y", Name: "YouTube", URL: "https://youtube.com", Search: "/results?search_query={}", Category: "Entertainment", Color: "#FF0000", QuickLaunch: true},
		{Key: "n", Name: "Netflix", URL: "https://netflix.com", Search: "/search?q={}", Category: "Entertainment", Color: "#E50914"},
		{Key: "sp", Name: "Spotify", URL: "https://open.spotify.com", Search: "/search/{}", Category: "Entertainment", Color: "#1DB954"},

		// Default search
		{Key: WildcardKey, Name: "Google Search", URL: "https://google.com", Search: "/search?q={}", Category: "Search", Color: "#4285F4"},
	}
}

// =============================================================================
// BUILT-IN SUGGESTION DATA
// =============================================================================

// DefaultAuxiliary returns the built-in popular sites, curated deep links
// and search phrases.
func DefaultAuxiliary() Auxiliary {
	return Auxiliary{
		PopularSites: []string{
			"google.com", "youtube.com", "facebook.com", "twitter.com", "instagram.com",
			"linkedin.com", "github.com", "stackoverflow.com", "reddit.com", "netflix.com",
			"spotify.com", "twitch.tv", "discord.com", "whatsapp.com", "telegram.org",
			"gmail.com", "outlook.com", "drive.google.com", "dropbox.com", "notion.so",
			"trello.com", "slack.com", "zoom.us", "microsoft.com", "apple.com",
			"amazon.com", "ebay.com", "aliexpress.com", "mercadolivre.com.br", "shopee.com.br",
			"wikipedia.org", "medium.com", "dev.to", "hackernews.com", "producthunt.com",
			"figma.com", "canva.com", "adobe.com", "unsplash.com", "pexels.com",
		},
		KeyedHints: map[string][]string{
			"g":  {"github.com/issues", "github.com/pulls", "gist.github.com", "github.com/trending"},
			"r":  {"reddit.com/r/unixporn", "reddit.com/r/startpages", "reddit.com/r/webdev", "reddit.com/r/technology", "reddit.com/r/programming"},
			"y":  {"youtube.com/trending", "youtube.com/subscriptions", "youtube.com/watch?v=", "youtube.com/playlist"},
			"sp": {"open.spotify.com/search", "open.spotify.com/browse/featured", "open.spotify.com/browse/podcasts", "open.spotify.com/browse/charts"},
			"tw": {"twitter.com/home", "twitter.com/explore", "twitter.com/notifications", "twitter.com/messages"},
			"n":  {"netflix.com/browse", "netflix.com/latest", "netflix.com/my-list", "netflix.com/search"},
			"gm": {"mail.google.com/mail/u/0/#inbox", "mail.google.com/mail/u/0/#sent", "mail.google.com/mail/u/0/#drafts", "mail.google.com/mail/u/0/#starred"},
			"gd": {"drive.google.com/drive/my-drive", "drive.google.com/drive/shared-with-me", "drive.google.com/drive/recent"},
			"li": {"linkedin.com/feed", "linkedin.com/mynetwork", "linkedin.com/jobs", "linkedin.com/messaging"},
			"so": {"stackoverflow.com/questions", "stackoverflow.com/tags", "stackoverflow.com/users"},
		},
		SearchPhrases: []string{
			"how to", "what is", "best", "tutorial", "guide", "review", "vs", "free",
			"download", "online", "course", "learn", "tips", "tricks", "news", "update",
		},
	}
}
