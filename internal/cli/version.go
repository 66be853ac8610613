// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// version.go - "sttp version".

package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// VersionInfo is the --json form of "sttp version".
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func newVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version:   Version,
				GitCommit: GitCommit,
				BuildDate: BuildDate,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			return writeResult(cmd, e, "version", info, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "sttp %s (commit %s, built %s, %s %s)\n",
					info.Version, info.GitCommit, info.BuildDate, info.GoVersion, info.Platform)
				return err
			})
		},
	}
}
