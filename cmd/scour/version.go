package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scour/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().String("format", "text", "output format (text|json)")
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
}

func runVersion(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	showHash, _ := cmd.Flags().GetBool("hash")
	showDate, _ := cmd.Flags().GetBool("date")

	if format == "json" {
		payload := versionPayload{Tool: "scour", Version: version.Version}
		if showHash {
			payload.GitCommit = version.GitCommit
		}
		if showDate {
			payload.BuildDate = version.BuildDate
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	fmt.Printf("scour %s\n", version.Version)
	if showHash && version.GitCommit != "" {
		fmt.Printf("commit: %s\n", version.GitCommit)
	}
	if showDate && version.BuildDate != "" {
		fmt.Printf("built:  %s\n", version.BuildDate)
	}
	return nil
}
