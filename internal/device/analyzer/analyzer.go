// Package analyzer derives a declarative device spec from a connected
// device by querying its capabilities and system properties.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/bundlectl/bundlectl/internal/android"
	"github.com/bundlectl/bundlectl/internal/device"
	"github.com/bundlectl/bundlectl/internal/devicespec"
)

const listFeaturesCommand = "pm list features"

// Analyzer extracts a devicespec.DeviceSpec from a device.
type Analyzer struct {
	device device.Device
}

// New returns an Analyzer for the given device.
func New(d device.Device) *Analyzer {
	return &Analyzer{device: d}
}

// DeviceSpec queries the device and assembles its spec. The device must be
// online; devices in any other state cannot be queried and their reported
// capabilities must not be trusted.
func (a *Analyzer) DeviceSpec(ctx context.Context) (devicespec.DeviceSpec, error) {
	if state := a.device.State(); state != device.StateOnline {
		return devicespec.DeviceSpec{}, fmt.Errorf("unable to analyze device %s in state %s", a.device.Serial(), state)
	}

	log.Debug().Str("serial", a.device.Serial()).Msg("Analyzing device")

	abis := a.device.ABIs()
	if len(abis) == 0 {
		return devicespec.DeviceSpec{}, fmt.Errorf("device %s reported no supported ABIs", a.device.Serial())
	}

	density := a.device.Density()
	if density == device.DensityUnknown {
		return devicespec.DeviceSpec{}, fmt.Errorf("unable to determine screen density of device %s", a.device.Serial())
	}

	locale, err := a.locale()
	if err != nil {
		return devicespec.DeviceSpec{}, err
	}

	features, err := a.features(ctx)
	if err != nil {
		return devicespec.DeviceSpec{}, err
	}

	return devicespec.DeviceSpec{
		SupportedAbis:    abis,
		SupportedLocales: []string{locale},
		DeviceFeatures:   features,
		ScreenDensity:    density,
		SdkVersion:       a.device.SDKVersion(),
	}, nil
}

// locale reads the device locale, accounting for the property schema change
// at Marshmallow: older devices split the locale across two legacy
// properties, newer ones expose a single combined tag.
func (a *Analyzer) locale() (string, error) {
	if a.device.SDKVersion() < android.MarshmallowAPIVersion {
		lang, ok := a.device.Property(device.PropLocaleLanguage)
		if !ok {
			return "", a.missingProperty(device.PropLocaleLanguage)
		}
		// The region may legitimately be absent, e.g. for language-only
		// locales.
		region, _ := a.device.Property(device.PropLocaleRegion)
		return android.JoinLocaleTag(lang, region), nil
	}

	locale, ok := a.device.Property(device.PropLocale)
	if !ok {
		return "", a.missingProperty(device.PropLocale)
	}
	return locale, nil
}

func (a *Analyzer) missingProperty(name string) error {
	return fmt.Errorf("property %s not found on device %s", name, a.device.Serial())
}

// features lists the device features via the package manager. Output lines
// have the form "feature:android.hardware.camera".
func (a *Analyzer) features(ctx context.Context) ([]string, error) {
	var recv device.BufferReceiver
	if err := a.device.RunShellCommand(ctx, listFeaturesCommand, &recv); err != nil {
		return nil, fmt.Errorf("failed to list device features: %w", err)
	}
	if !recv.Flushed() {
		return nil, errors.New("device feature listing ended without completing")
	}

	var features []string
	for _, line := range strings.Split(recv.String(), "\n") {
		feature, ok := strings.CutPrefix(strings.TrimSpace(line), "feature:")
		if !ok || feature == "" {
			continue
		}
		features = append(features, feature)
	}
	return features, nil
}
