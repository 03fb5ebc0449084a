// Package device defines the capability set that the bundle tooling relies
// on to interact with an Android device: identity, system properties, shell
// execution and package installation.
package device

import (
	"context"
	"errors"
	"io"
)

// DensityUnknown is reported by devices whose screen density could not be
// determined, e.g. devices that are not online.
const DensityUnknown = -1

// Well-known system property names.
//
// Up to and including Lollipop, the device locale is split across the two
// legacy language/region properties. Marshmallow and later expose a single
// combined locale property.
const (
	PropLocale         = "ro.product.locale"
	PropLocaleLanguage = "ro.product.locale.language"
	PropLocaleRegion   = "ro.product.locale.region"
)

// Shell command failure kinds. Implementations raise these (or plain I/O
// errors) from RunShellCommand; callers match them with errors.Is.
var (
	// ErrCommandTimeout indicates the command did not produce output in time.
	ErrCommandTimeout = errors.New("shell command timed out")
	// ErrCommandRejected indicates the device refused to run the command.
	ErrCommandRejected = errors.New("shell command rejected by device")
	// ErrShellUnresponsive indicates the device shell stopped responding.
	ErrShellUnresponsive = errors.New("device shell unresponsive")
)

// ShellOutputReceiver consumes the output stream of a shell command. Flush
// is called exactly once, after the last byte of output has been written.
type ShellOutputReceiver interface {
	io.Writer
	Flush() error
}

// Device is the capability set of a physical or emulated Android device.
type Device interface {
	// Serial returns the device serial number, unique per device.
	Serial() string

	// State returns the connection state. The state is fixed for the
	// lifetime of a Device value; it never transitions.
	State() State

	// SDKVersion returns the Android API level of the device.
	SDKVersion() int

	// ABIs returns the instruction set architectures supported by the
	// device, ordered by preference.
	ABIs() []string

	// Density returns the screen density in dpi, or DensityUnknown.
	Density() int

	// Property returns the value of the named system property. The second
	// return value is false if the device does not expose the property.
	Property(name string) (string, bool)

	// RunShellCommand executes a shell command on the device, streaming its
	// output to recv. The receiver is flushed once the command completes.
	RunShellCommand(ctx context.Context, command string, recv ShellOutputReceiver) error

	// InstallAPKs installs the given APK files on the device. If reinstall
	// is true, an existing installation is replaced.
	InstallAPKs(ctx context.Context, paths []string, reinstall bool) error
}
