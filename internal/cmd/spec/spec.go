// Package spec implements the "spec" command tree for creating, inspecting,
// validating and matching device spec files.
package spec

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

const (
	JSONOutput = "json"
	TextOutput = "text"
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:              "spec",
		Short:            "Create, inspect and match device specs",
		SilenceUsage:     true,
		TraverseChildren: true,
	}

	cmd.AddCommand(
		CreateCommand(),
		ShowCommand(),
		ValidateCommand(),
		MatchCommand(),
	)

	return cmd
}

func renderJSON(val any) error {
	return json.NewEncoder(os.Stdout).Encode(val)
}
