// Package fake provides an in-memory device.Device implementation for
// tests. Shell command outputs are injected per exact command string and
// package installs can be observed through a configurable side effect; no
// adb connection or process execution is involved.
package fake

import (
	"context"
	"fmt"
	"math"

	"github.com/bundlectl/bundlectl/internal/android"
	"github.com/bundlectl/bundlectl/internal/device"
	"github.com/bundlectl/bundlectl/internal/devicespec"
)

// ShellCommandAction produces the output of an injected shell command. It
// may fail with one of the device shell error kinds or a plain I/O error;
// such failures are propagated to the caller unchanged.
type ShellCommandAction func() (string, error)

// InstallSideEffect observes an InstallAPKs call. It receives the exact
// APK paths and reinstall flag passed by the code under test.
type InstallSideEffect func(paths []string, reinstall bool) error

// Device is a fake device. Identity and capabilities are fixed at
// construction; only the injected shell outputs and the install side effect
// can change afterwards. It is meant for single-threaded test use and does
// no locking.
type Device struct {
	serial     string
	state      device.State
	sdkVersion int
	abis       []string
	density    int
	properties map[string]string

	commandInjections map[string]ShellCommandAction
	installSideEffect InstallSideEffect
}

var _ device.Device = (*Device)(nil)

// NewDevice constructs a fake device from explicit fields.
func NewDevice(serial string, state device.State, sdkVersion int, abis []string, density int, properties map[string]string) *Device {
	d := &Device{
		serial:            serial,
		state:             state,
		sdkVersion:        sdkVersion,
		abis:              append([]string(nil), abis...),
		density:           density,
		properties:        make(map[string]string, len(properties)),
		commandInjections: make(map[string]ShellCommandAction),
	}
	for k, v := range properties {
		d.properties[k] = v
	}
	return d
}

// FromDeviceSpecWithProperties constructs a fake device whose SDK version,
// ABIs and density are copied from the spec, with the given system
// properties.
func FromDeviceSpecWithProperties(serial string, state device.State, spec devicespec.DeviceSpec, properties map[string]string) *Device {
	return NewDevice(serial, state, spec.SdkVersion, spec.SupportedAbis, spec.ScreenDensity, properties)
}

// FromDeviceSpec constructs a fake device from the spec, deriving the locale
// system properties from the spec's primary locale. Devices below
// Marshmallow expose the locale through the two legacy language/region
// properties; Marshmallow and later expose a single combined property.
func FromDeviceSpec(serial string, state device.State, spec devicespec.DeviceSpec) *Device {
	locale, ok := spec.PrimaryLocale()
	if !ok {
		panic(fmt.Sprintf("fake device %s: device spec has no supported locales", serial))
	}

	if spec.SdkVersion < android.MarshmallowAPIVersion {
		lang, region, err := android.SplitLocaleTag(locale)
		if err != nil {
			panic(fmt.Sprintf("fake device %s: %v", serial, err))
		}
		return FromDeviceSpecWithProperties(serial, state, spec, map[string]string{
			device.PropLocaleLanguage: lang,
			device.PropLocaleRegion:   region,
		})
	}

	return FromDeviceSpecWithProperties(serial, state, spec, map[string]string{
		device.PropLocale: locale,
	})
}

// InDisconnectedState constructs a fake device that is not connected.
// Querying such a device does not work, so it carries no ABIs, no
// properties, an unknown density and an out-of-range SDK version.
// Panics if state is StateOnline.
func InDisconnectedState(serial string, state device.State) *Device {
	if state == device.StateOnline {
		panic(fmt.Sprintf("fake device %s: a disconnected device cannot be online", serial))
	}
	return NewDevice(serial, state, math.MaxInt32, nil, device.DensityUnknown, nil)
}

func (d *Device) Serial() string {
	return d.serial
}

func (d *Device) State() device.State {
	return d.state
}

func (d *Device) SDKVersion() int {
	return d.sdkVersion
}

func (d *Device) ABIs() []string {
	return append([]string(nil), d.abis...)
}

func (d *Device) Density() int {
	return d.density
}

func (d *Device) Property(name string) (string, bool) {
	value, ok := d.properties[name]
	return value, ok
}

// RunShellCommand looks up the exact command string among the injected
// outputs, writes the action's result to recv and flushes it. It panics if
// no output was injected for the command. Action failures are returned
// unchanged.
func (d *Device) RunShellCommand(_ context.Context, command string, recv device.ShellOutputReceiver) error {
	action, ok := d.commandInjections[command]
	if !ok {
		panic(fmt.Sprintf("fake device %s: no output injected for shell command %q", d.serial, command))
	}

	out, err := action()
	if err != nil {
		return err
	}
	if _, err := recv.Write([]byte(out)); err != nil {
		return err
	}
	return recv.Flush()
}

// InstallAPKs invokes the configured side effect, if any. Without a side
// effect it does nothing and never fails.
func (d *Device) InstallAPKs(_ context.Context, paths []string, reinstall bool) error {
	if d.installSideEffect == nil {
		return nil
	}
	return d.installSideEffect(paths, reinstall)
}

// InjectShellCommandOutput registers the action to run when command is
// executed. Each command may be injected only once per device; injecting a
// duplicate panics to catch silent overwrites in test setup.
func (d *Device) InjectShellCommandOutput(command string, action ShellCommandAction) {
	if _, ok := d.commandInjections[command]; ok {
		panic(fmt.Sprintf("fake device %s: output for shell command %q already injected", d.serial, command))
	}
	d.commandInjections[command] = action
}

// SetInstallAPKsSideEffect replaces the install side effect. At most one
// side effect is active at a time.
func (d *Device) SetInstallAPKsSideEffect(sideEffect InstallSideEffect) {
	d.installSideEffect = sideEffect
}

// ClearInstallAPKsSideEffect removes the install side effect.
func (d *Device) ClearInstallAPKsSideEffect() {
	d.installSideEffect = nil
}
