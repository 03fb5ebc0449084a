package devicespec

import "fmt"

// Screen density buckets as defined by the Android framework, in dpi.
const (
	DensityLow     = 120
	DensityMedium  = 160
	DensityTV      = 213
	DensityHigh    = 240
	DensityXHigh   = 320
	DensityXXHigh  = 480
	DensityXXXHigh = 640
)

var densityNames = map[int]string{
	DensityLow:     "ldpi",
	DensityMedium:  "mdpi",
	DensityTV:      "tvdpi",
	DensityHigh:    "hdpi",
	DensityXHigh:   "xhdpi",
	DensityXXHigh:  "xxhdpi",
	DensityXXXHigh: "xxxhdpi",
}

// DensityName returns the bucket alias for a density ("xxhdpi"), or the raw
// dpi value for densities that fall between buckets.
func DensityName(dpi int) string {
	if name, ok := densityNames[dpi]; ok {
		return name
	}
	return fmt.Sprintf("%ddpi", dpi)
}
