package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// FullName returns the full command name by concatenating the command names of any parents,
// except the name of the CLI itself.
func FullName(cmd *cobra.Command) string {
	name := ""

	for cmd.Name() != "bundlectl" {
		// Prepending, because we are looking up names from the bottom up: create < spec < bundlectl
		// which ends up correctly as 'spec create' (sans bundlectl).
		name = fmt.Sprintf("%s %s", cmd.Name(), name)
		cmd = cmd.Parent()
	}

	return strings.TrimSpace(name)
}
