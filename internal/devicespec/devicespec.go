// Package devicespec implements the declarative device spec format: a
// serializable description of a device's capabilities (API level, ABIs,
// screen density, locales, features) that bundle tooling matches APKs
// against without needing a live device.
package devicespec

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/bundlectl/bundlectl/internal/android"
	"github.com/bundlectl/bundlectl/internal/msg"
)

// DeviceSpec describes the capabilities of a device.
type DeviceSpec struct {
	SupportedAbis    []string `json:"supportedAbis" yaml:"supportedAbis"`
	SupportedLocales []string `json:"supportedLocales" yaml:"supportedLocales"`
	DeviceFeatures   []string `json:"deviceFeatures,omitempty" yaml:"deviceFeatures,omitempty"`
	GlExtensions     []string `json:"glExtensions,omitempty" yaml:"glExtensions,omitempty"`
	ScreenDensity    int      `json:"screenDensity" yaml:"screenDensity"`
	SdkVersion       int      `json:"sdkVersion" yaml:"sdkVersion"`
}

// PrimaryLocale returns the first supported locale tag.
func (s DeviceSpec) PrimaryLocale() (string, bool) {
	if len(s.SupportedLocales) == 0 {
		return "", false
	}
	return s.SupportedLocales[0], true
}

// Validate checks the spec for values no real device would report.
func (s DeviceSpec) Validate() error {
	if s.SdkVersion <= 0 {
		return fmt.Errorf("sdkVersion must be positive, got %d", s.SdkVersion)
	}
	if s.ScreenDensity <= 0 {
		return fmt.Errorf("screenDensity must be positive, got %d", s.ScreenDensity)
	}
	if len(s.SupportedAbis) == 0 {
		return errors.New("supportedAbis must not be empty")
	}
	if len(s.SupportedLocales) == 0 {
		return errors.New("supportedLocales must not be empty")
	}
	for _, locale := range s.SupportedLocales {
		if _, _, err := android.SplitLocaleTag(locale); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile loads a device spec from a JSON or YAML file, chosen by the file
// extension.
func ReadFile(path string) (DeviceSpec, error) {
	if path == "" {
		return DeviceSpec{}, errors.New(msg.MissingSpecFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DeviceSpec{}, fmt.Errorf("failed to read device spec: %w", err)
	}

	var spec DeviceSpec
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &spec)
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(data, &spec)
	default:
		return DeviceSpec{}, fmt.Errorf("unsupported device spec format %q, expected .json, .yaml or .yml", filepath.Ext(path))
	}
	if err != nil {
		return DeviceSpec{}, fmt.Errorf("failed to parse device spec %s: %w", path, err)
	}

	return spec, nil
}

// WriteFile saves the spec to path as indented JSON.
func WriteFile(path string, spec DeviceSpec) error {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
