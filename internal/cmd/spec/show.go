package spec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bundlectl/bundlectl/internal/devicespec"
	"github.com/bundlectl/bundlectl/internal/msg"
	"github.com/bundlectl/bundlectl/internal/tables"
)

func ShowCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:          "show <spec-file>",
		Short:        "Display a device spec file",
		SilenceUsage: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "" {
				return errors.New(msg.MissingSpecFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != JSONOutput && out != TextOutput {
				return errors.New(msg.UnknownOutputFormat)
			}
			return show(args[0], out)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&out, "out", "o", "text", "Output format to the console. Options: text, json.")

	return cmd
}

func show(path, outputFormat string) error {
	spec, err := devicespec.ReadFile(path)
	if err != nil {
		return err
	}

	switch outputFormat {
	case JSONOutput:
		if err := renderJSON(spec); err != nil {
			return fmt.Errorf("failed to render output: %w", err)
		}
	case TextOutput:
		fmt.Println(specTable(spec))
	}

	return nil
}

func specTable(spec devicespec.DeviceSpec) string {
	t := table.NewWriter()
	t.SetStyle(tables.DefaultTableStyle)

	t.AppendHeader(table.Row{"Property", "Value"})
	t.AppendRow(table.Row{"SDK Version", spec.SdkVersion})
	t.AppendRow(table.Row{"ABIs", strings.Join(spec.SupportedAbis, ", ")})
	t.AppendRow(table.Row{"Screen Density", fmt.Sprintf("%d (%s)", spec.ScreenDensity, devicespec.DensityName(spec.ScreenDensity))})
	t.AppendRow(table.Row{"Locales", strings.Join(spec.SupportedLocales, ", ")})
	t.AppendRow(table.Row{"Device Features", strings.Join(spec.DeviceFeatures, "\n")})
	t.AppendRow(table.Row{"GL Extensions", strings.Join(spec.GlExtensions, "\n")})

	t.SuppressEmptyColumns()
	return t.Render()
}
