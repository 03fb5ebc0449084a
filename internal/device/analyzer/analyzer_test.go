package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundlectl/bundlectl/internal/device"
	"github.com/bundlectl/bundlectl/internal/device/fake"
	"github.com/bundlectl/bundlectl/internal/devicespec"
)

var testSpec = devicespec.DeviceSpec{
	SupportedAbis:    []string{"arm64-v8a", "armeabi-v7a"},
	SupportedLocales: []string{"en-US"},
	ScreenDensity:    480,
	SdkVersion:       28,
}

func noFeatures() (string, error) {
	return "", nil
}

func TestDeviceSpecRoundTrip(t *testing.T) {
	d := fake.FromDeviceSpec("emulator-5554", device.StateOnline, testSpec)
	d.InjectShellCommandOutput("pm list features", func() (string, error) {
		return "feature:android.hardware.camera\nfeature:android.hardware.wifi\n", nil
	})

	got, err := New(d).DeviceSpec(context.Background())
	require.NoError(t, err)

	want := testSpec
	want.DeviceFeatures = []string{"android.hardware.camera", "android.hardware.wifi"}
	assert.Equal(t, want, got)
}

func TestDeviceSpecLegacyLocaleProperties(t *testing.T) {
	spec := testSpec
	spec.SdkVersion = 21

	d := fake.FromDeviceSpec("serial", device.StateOnline, spec)
	d.InjectShellCommandOutput("pm list features", noFeatures)

	got, err := New(d).DeviceSpec(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"en-US"}, got.SupportedLocales)
}

func TestDeviceSpecLanguageOnlyLocale(t *testing.T) {
	d := fake.NewDevice("serial", device.StateOnline, 21,
		[]string{"armeabi-v7a"}, 320,
		map[string]string{device.PropLocaleLanguage: "fr"})
	d.InjectShellCommandOutput("pm list features", noFeatures)

	got, err := New(d).DeviceSpec(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"fr"}, got.SupportedLocales)
}

func TestDeviceSpecRequiresOnlineDevice(t *testing.T) {
	testCases := []struct {
		name  string
		state device.State
	}{
		{name: "disconnected", state: device.StateDisconnected},
		{name: "offline", state: device.StateOffline},
		{name: "unauthorized", state: device.StateUnauthorized},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := fake.InDisconnectedState("serial", tc.state)

			_, err := New(d).DeviceSpec(context.Background())
			assert.ErrorContains(t, err, "unable to analyze device")
		})
	}
}

func TestDeviceSpecMissingLocaleProperty(t *testing.T) {
	d := fake.NewDevice("serial", device.StateOnline, 28,
		[]string{"arm64-v8a"}, 480, nil)

	_, err := New(d).DeviceSpec(context.Background())
	assert.ErrorContains(t, err, "property ro.product.locale not found")
}

func TestDeviceSpecUnknownDensity(t *testing.T) {
	d := fake.NewDevice("serial", device.StateOnline, 28,
		[]string{"arm64-v8a"}, device.DensityUnknown,
		map[string]string{device.PropLocale: "en-US"})

	_, err := New(d).DeviceSpec(context.Background())
	assert.ErrorContains(t, err, "screen density")
}

func TestDeviceSpecNoABIs(t *testing.T) {
	d := fake.NewDevice("serial", device.StateOnline, 28, nil, 480,
		map[string]string{device.PropLocale: "en-US"})

	_, err := New(d).DeviceSpec(context.Background())
	assert.ErrorContains(t, err, "no supported ABIs")
}

func TestDeviceSpecPropagatesShellFailures(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{name: "timeout", err: device.ErrCommandTimeout},
		{name: "rejected", err: device.ErrCommandRejected},
		{name: "shell unresponsive", err: device.ErrShellUnresponsive},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := fake.FromDeviceSpec("serial", device.StateOnline, testSpec)
			d.InjectShellCommandOutput("pm list features", func() (string, error) {
				return "", tc.err
			})

			_, err := New(d).DeviceSpec(context.Background())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
