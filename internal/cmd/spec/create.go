package spec

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bundlectl/bundlectl/internal/devicespec"
)

func CreateCommand() *cobra.Command {
	var out string
	var sdk int
	var density int
	var abis []string
	var locales []string
	var features []string
	var glExtensions []string

	cmd := &cobra.Command{
		Use:          "create",
		Short:        "Create a device spec file",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := devicespec.DeviceSpec{
				SupportedAbis:    abis,
				SupportedLocales: locales,
				DeviceFeatures:   features,
				GlExtensions:     glExtensions,
				ScreenDensity:    density,
				SdkVersion:       sdk,
			}

			if err := spec.Validate(); err != nil {
				return fmt.Errorf("invalid device spec: %w", err)
			}
			if err := devicespec.WriteFile(out, spec); err != nil {
				return fmt.Errorf("failed to write device spec: %w", err)
			}

			log.Info().Str("path", out).Msg("Device spec written")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&out, "out", "o", "device-spec.json", "Path of the device spec file to write.")
	flags.IntVar(&sdk, "sdk", 0, "Android API level of the device.")
	flags.IntVar(&density, "density", 0, "Screen density in dpi.")
	flags.StringSliceVar(&abis, "abi", nil, "Supported ABI. Repeat for multiple, ordered by preference.")
	flags.StringSliceVar(&locales, "locale", nil, "Supported locale tag. Repeat for multiple; the first is the primary locale.")
	flags.StringSliceVar(&features, "feature", nil, "Device feature. Repeat for multiple.")
	flags.StringSliceVar(&glExtensions, "gl-extension", nil, "OpenGL ES extension. Repeat for multiple.")

	return cmd
}
