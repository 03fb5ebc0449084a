package spec

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/cobra"

	"github.com/bundlectl/bundlectl/internal/devicespec"
	"github.com/bundlectl/bundlectl/internal/msg"
)

func ValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "validate <spec-file>",
		Short:        "Validate a device spec file",
		SilenceUsage: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "" {
				return errors.New(msg.MissingSpecFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return validate(args[0])
		},
	}

	return cmd
}

func validate(path string) error {
	issues, err := devicespec.ValidateFileSchema(path)
	if err != nil {
		return err
	}
	if len(issues) > 0 {
		renderSchemaValidationIssues(path, issues)
		return errors.New(msg.InvalidSpecFile)
	}

	spec, err := devicespec.ReadFile(path)
	if err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf(msg.InvalidSpecFile+": %w", err)
	}

	fmt.Printf("%s is a valid device spec\n", path)
	return nil
}

func renderSchemaValidationIssues(path string, issues []*jsonschema.ValidationError) {
	errStr := "error"
	if len(issues) > 1 {
		errStr = "errors"
	}
	fmt.Println()
	color.Red("There is %d validation %s found in %s:\n", len(issues), errStr, path)
	for _, d := range issues {
		if d.InstanceLocation != "" {
			color.Red("- %s in %s\n", d.Message, d.InstanceLocation)
		} else {
			color.Red("- %s\n", d.Message)
		}
	}
	println()
}
