package devicespec

import (
	"fmt"
	"strings"

	"github.com/bundlectl/bundlectl/internal/android"
)

// Requirements describes the capabilities an APK set demands from a device.
// Zero-valued fields are not enforced.
type Requirements struct {
	// MinSDKVersion is the lowest acceptable API level.
	MinSDKVersion int
	// ABIs lists acceptable architectures; the device must support at
	// least one of them.
	ABIs []string
	// Locales lists acceptable locales; the device must support at least
	// one of them. Matching is done on the language subtag only, so an
	// "en" requirement is satisfied by an "en-US" device.
	Locales []string
	// MinScreenDensity is the lowest acceptable screen density in dpi.
	MinScreenDensity int
}

// UnsupportedReasons checks the spec against the requirements and returns a
// human-readable reason for every requirement the spec fails to meet. An
// empty result means the spec satisfies all requirements.
func UnsupportedReasons(spec DeviceSpec, req Requirements) []string {
	var reasons []string

	if req.MinSDKVersion > 0 && spec.SdkVersion < req.MinSDKVersion {
		reasons = append(reasons, fmt.Sprintf("SDK version %d is below the required minimum %d", spec.SdkVersion, req.MinSDKVersion))
	}

	if len(req.ABIs) > 0 && !anyABISupported(spec.SupportedAbis, req.ABIs) {
		reasons = append(reasons, fmt.Sprintf("none of the required ABIs [%s] are supported (device supports [%s])",
			strings.Join(req.ABIs, ", "), strings.Join(spec.SupportedAbis, ", ")))
	}

	if len(req.Locales) > 0 && !anyLocaleSupported(spec.SupportedLocales, req.Locales) {
		reasons = append(reasons, fmt.Sprintf("none of the required locales [%s] are supported (device supports [%s])",
			strings.Join(req.Locales, ", "), strings.Join(spec.SupportedLocales, ", ")))
	}

	if req.MinScreenDensity > 0 && spec.ScreenDensity < req.MinScreenDensity {
		reasons = append(reasons, fmt.Sprintf("screen density %d is below the required minimum %d", spec.ScreenDensity, req.MinScreenDensity))
	}

	return reasons
}

func anyABISupported(supported, required []string) bool {
	for _, abi := range supported {
		for _, want := range required {
			if abi == want {
				return true
			}
		}
	}
	return false
}

func anyLocaleSupported(supported, required []string) bool {
	for _, tag := range supported {
		lang, _, err := android.SplitLocaleTag(tag)
		if err != nil {
			continue
		}
		for _, want := range required {
			wantLang, _, err := android.SplitLocaleTag(want)
			if err != nil {
				continue
			}
			if lang == wantLang {
				return true
			}
		}
	}
	return false
}
