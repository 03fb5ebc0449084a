package msg

// device spec handling
const (
	// MissingSpecFile indicates no device spec file
	MissingSpecFile = "no device spec file specified"
	// InvalidSpecFile indicates the device spec failed validation
	InvalidSpecFile = "device spec is invalid"
	// UnknownOutputFormat indicates an unsupported console output format
	UnknownOutputFormat = "unknown output format"
	// SpecUnsatisfied indicates a device spec failed the matching requirements
	SpecUnsatisfied = "%s does not satisfy the requirements"
)
