package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	root := &cobra.Command{Use: "bundlectl [OPTIONS] COMMAND [ARG...]"}
	parent := &cobra.Command{Use: "spec"}
	child := &cobra.Command{Use: "create"}
	root.AddCommand(parent)
	parent.AddCommand(child)

	assert.Equal(t, "spec create", FullName(child))
	assert.Equal(t, "spec", FullName(parent))
	assert.Equal(t, "", FullName(root))
}
