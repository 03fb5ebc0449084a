package spec

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bundlectl/bundlectl/internal/devicespec"
	"github.com/bundlectl/bundlectl/internal/msg"
)

func MatchCommand() *cobra.Command {
	var minSDK int
	var minDensity int
	var abis []string
	var locales []string

	cmd := &cobra.Command{
		Use:          "match <spec-file>",
		Short:        "Check a device spec against a set of requirements",
		SilenceUsage: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "" {
				return errors.New(msg.MissingSpecFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := devicespec.Requirements{
				MinSDKVersion:    minSDK,
				ABIs:             abis,
				Locales:          locales,
				MinScreenDensity: minDensity,
			}
			return match(args[0], req)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&minSDK, "min-sdk", 0, "Minimum required API level.")
	flags.IntVar(&minDensity, "min-density", 0, "Minimum required screen density in dpi.")
	flags.StringSliceVar(&abis, "abi", nil, "Required ABI. Repeat for multiple; one match suffices.")
	flags.StringSliceVar(&locales, "locale", nil, "Required locale. Repeat for multiple; one match suffices.")

	return cmd
}

func match(path string, req devicespec.Requirements) error {
	spec, err := devicespec.ReadFile(path)
	if err != nil {
		return err
	}

	reasons := devicespec.UnsupportedReasons(spec, req)
	if len(reasons) == 0 {
		fmt.Printf("%s satisfies all requirements\n", path)
		return nil
	}

	for _, reason := range reasons {
		fmt.Printf("- %s\n", reason)
	}
	return fmt.Errorf(msg.SpecUnsatisfied, path)
}
