// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package startpage

import (
	"fmt"
	"time"

	"github.com/jeranaias/sttp/internal/config"
)

// FormatClock renders the time of day according to the clock settings.
// 24h clocks pad the hour; 12h clocks do not and may carry AM/PM.
func FormatClock(t time.Time, ui config.UIConfig) string {
	delim := ui.ClockDelimiter
	if ui.TwentyFourHour {
		return fmt.Sprintf("%02d%s%02d", t.Hour(), delim, t.Minute())
	}

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	s := fmt.Sprintf("%d%s%02d", hour, delim, t.Minute())
	if ui.ShowClockIndicators {
		s += " " + t.Format("PM")
	}
	return s
}

// FormatDate renders the date line, or "" when the date is hidden.
func FormatDate(t time.Time, ui config.UIConfig) string {
	if !ui.ShowDate {
		return ""
	}
	return t.Format("Monday, January 2")
}
