// Package android holds Android platform version constants and locale tag
// helpers shared across the device layer.
package android

// Android API levels relevant to bundle processing.
const (
	KitKatAPIVersion      = 19
	LollipopAPIVersion    = 21
	MarshmallowAPIVersion = 23
	NougatAPIVersion      = 24
	OreoAPIVersion        = 26
	PieAPIVersion         = 28
	QAPIVersion           = 29
)
