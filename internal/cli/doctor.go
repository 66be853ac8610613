// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// doctor.go - "sttp doctor": setup health checks.
//
// Health Checks Performed:
//   1. Config Valid       - The config file parses and validates
//   2. Command Table      - Wildcard present, categories reachable by n!
//   3. URL Opener         - A browser opener command is on PATH
//   4. Database Writable  - The preference database opens
//   5. Terminal           - Whether the startpage or the prompt will run
//
// Exit Codes:
//   0   No check failed
//   1   One or more checks failed

package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jeranaias/sttp/internal/commands"
	"github.com/jeranaias/sttp/internal/launch"
)

// =============================================================================
// DOCTOR STYLES
// =============================================================================

var (
	checkPassStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	checkWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	checkFailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	fixStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true).
			PaddingLeft(2)
)

// =============================================================================
// HEALTH CHECK TYPES
// =============================================================================

// CheckStatus represents the status of a health check.
type CheckStatus int

const (
	// CheckPass indicates the check passed successfully.
	CheckPass CheckStatus = iota
	// CheckWarn indicates the check passed with warnings.
	CheckWarn
	// CheckFail indicates the check failed.
	CheckFail
)

// String returns the lower-case name used in JSON output.
func (s CheckStatus) String() string {
	switch s {
	case CheckPass:
		return "pass"
	case CheckWarn:
		return "warn"
	case CheckFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Symbol returns the styled marker for the check status.
func (s CheckStatus) Symbol() string {
	switch s {
	case CheckPass:
		return checkPassStyle.Render("[OK]")
	case CheckWarn:
		return checkWarnStyle.Render("[!!]")
	case CheckFail:
		return checkFailStyle.Render("[FAIL]")
	default:
		return "?"
	}
}

// HealthCheck represents a single health check result.
type HealthCheck struct {
	Name    string      `json:"name"`
	Status  CheckStatus `json:"-"`
	State   string      `json:"status"`
	Message string      `json:"message"`
	Fix     string      `json:"fix,omitempty"` // Suggested fix command or instruction
}

// Render returns a formatted string representation of the health check.
func (c *HealthCheck) Render() string {
	result := fmt.Sprintf("%s %s", c.Status.Symbol(), c.Message)
	if c.Status != CheckPass && c.Fix != "" {
		result += "\n" + fixStyle.Render("-> "+c.Fix)
	}
	return result
}

// DoctorSummary counts check results.
type DoctorSummary struct {
	Passed  int  `json:"passed"`
	Warned  int  `json:"warned"`
	Failed  int  `json:"failed"`
	Healthy bool `json:"healthy"`
}

// DoctorData is the --json form of "sttp doctor".
type DoctorData struct {
	Checks  []*HealthCheck `json:"checks"`
	Summary DoctorSummary  `json:"summary"`
}

// =============================================================================
// DOCTOR COMMAND
// =============================================================================

func newDoctorCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
		Aliases: []string{"diag"},
		Short:   "Check the configuration, opener and database",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := runAllChecks(e)

			var sum DoctorSummary
			for _, c := range checks {
				c.State = c.Status.String()
				switch c.Status {
				case CheckPass:
					sum.Passed++
				case CheckWarn:
					sum.Warned++
				case CheckFail:
					sum.Failed++
				}
			}
			sum.Healthy = sum.Failed == 0

			var failErr error
			if sum.Failed > 0 {
				failErr = fmt.Errorf("%d health check(s) failed", sum.Failed)
			}

			if e.opts.jsonOut {
				resp := NewJSONResponse("doctor", DoctorData{Checks: checks, Summary: sum})
				if failErr != nil {
					msg := failErr.Error()
					resp.Success = false
					resp.Error = &msg
				}
				if err := resp.Write(cmd.OutOrStdout()); err != nil {
					return err
				}
				if failErr != nil {
					return fmt.Errorf("%w: %w", ErrAlreadyReported, failErr)
				}
				return nil
			}

			if err := printDoctor(cmd.OutOrStdout(), checks, sum); err != nil {
				return err
			}
			return failErr
		},
	}
}

// printDoctor prints the checks and a summary line.
func printDoctor(w io.Writer, checks []*HealthCheck, sum DoctorSummary) error {
	fmt.Fprintln(w, TitleStyle.Render("sttp doctor"))
	fmt.Fprintln(w)
	for _, c := range checks {
		fmt.Fprintln(w, c.Render())
	}
	fmt.Fprintln(w)

	parts := []string{fmt.Sprintf("%d passed", sum.Passed)}
	if sum.Warned > 0 {
		parts = append(parts, checkWarnStyle.Render(fmt.Sprintf("%d warning", sum.Warned)))
	}
	if sum.Failed > 0 {
		parts = append(parts, checkFailStyle.Render(fmt.Sprintf("%d failed", sum.Failed)))
	}
	_, err := fmt.Fprintln(w, MutedStyle.Render(strings.Join(parts, ", ")))
	return err
}

// =============================================================================
// HEALTH CHECK FUNCTIONS
// =============================================================================

// runAllChecks runs all health checks and returns the results.
func runAllChecks(e *env) []*HealthCheck {
	return []*HealthCheck{
		checkConfigValid(e),
		checkCommandTable(e.cfg.Commands),
		checkOpener(e.cfg.Launch.Opener),
		checkDatabase(e),
		checkTerminal(),
	}
}

func checkConfigValid(e *env) *HealthCheck {
	check := &HealthCheck{Name: "Config Valid"}

	path, loaded, err := configFile(e)
	switch {
	case e.loadErr != nil:
		check.Status = CheckFail
		check.Message = fmt.Sprintf("Config invalid, using defaults: %s", e.loadErr)
		check.Fix = "Fix the file or run: sttp init --force"
	case err != nil:
		check.Status = CheckWarn
		check.Message = fmt.Sprintf("Could not determine config path: %s", err)
	case !loaded:
		check.Status = CheckPass
		check.Message = "Config valid (using defaults)"
	default:
		check.Status = CheckPass
		check.Message = "Config valid: " + path
	}
	return check
}

func checkCommandTable(table commands.Table) *HealthCheck {
	check := &HealthCheck{Name: "Command Table"}

	cats := table.Categories()
	switch _, ok := table.Wildcard(); {
	case !ok:
		check.Status = CheckWarn
		check.Message = fmt.Sprintf("%d commands but no %q command; unmatched input is an error", len(table), commands.WildcardKey)
		check.Fix = `Add a command with key "*" and a search template`
	case len(cats) > 9:
		check.Status = CheckWarn
		check.Message = fmt.Sprintf("%d categories; only the first 9 have a launch token", len(cats))
	default:
		check.Status = CheckPass
		check.Message = fmt.Sprintf("%d commands in %d categories", len(table), len(cats))
	}
	return check
}

func checkOpener(command string) *HealthCheck {
	check := &HealthCheck{Name: "URL Opener"}

	o, err := launch.NewCommandOpener(command)
	if err != nil {
		check.Status = CheckWarn
		check.Message = fmt.Sprintf("No URL opener: %s", err)
		check.Fix = `Set one, e.g.: sttp config set launch.opener "firefox --new-tab"`
		return check
	}
	check.Status = CheckPass
	check.Message = fmt.Sprintf("Opening URLs with %s (%s)", o.Name, runtime.GOOS)
	return check
}

func checkDatabase(e *env) *HealthCheck {
	check := &HealthCheck{Name: "Database Writable"}

	if e.opts.noStore {
		check.Status = CheckWarn
		check.Message = "Preference database disabled by --no-store"
		return check
	}
	path, _ := e.cfg.StoragePath()
	if _, err := e.openStore(); err != nil {
		check.Status = CheckFail
		check.Message = fmt.Sprintf("Could not open %s: %s", path, err)
		check.Fix = "Check permissions or set storage.path"
		return check
	}
	check.Status = CheckPass
	check.Message = "Preference database ready: " + path
	return check
}

func checkTerminal() *HealthCheck {
	check := &HealthCheck{Name: "Terminal"}

	if !IsInteractive() {
		check.Status = CheckWarn
		check.Message = "Not a terminal; sttp runs the line prompt instead of the startpage"
		return check
	}
	check.Status = CheckPass
	check.Message = fmt.Sprintf("Interactive terminal, %d columns", GetTerminalWidth())
	return check
}
