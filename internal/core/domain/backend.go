package domain

// BackendClass tags an extraction backend's speed/reliability tier.
// Classes order the fallback ladder: faster tiers are tried first and the
// pure fallback is always compiled in as the backstop.
type BackendClass int

const (
	// ClassFastNative is an in-process native renderer, the fastest
	// profile available.
	ClassFastNative BackendClass = iota

	// ClassMidNative is a solid native renderer, typically an external
	// tool invoked per file.
	ClassMidNative

	// ClassCompatNative is a compatibility converter suite, slower but
	// tolerant of malformed files.
	ClassCompatNative

	// ClassPureFallback is the pure Go backstop, always available even
	// when no optional backend is compiled in.
	ClassPureFallback
)

// Priority bands per class; lower values are tried first. A backend's
// Priority() must fall inside its class band.
const (
	PriorityFastNative   = 1  // band 1-9
	PriorityMidNative    = 10 // band 10-49
	PriorityCompatNative = 50 // band 50-89
	PriorityPureFallback = 90 // band 90-99
)

// String returns the class name.
func (c BackendClass) String() string {
	switch c {
	case ClassFastNative:
		return "fast-native"
	case ClassMidNative:
		return "mid-native"
	case ClassCompatNative:
		return "compat-native"
	case ClassPureFallback:
		return "pure-fallback"
	default:
		return "unknown"
	}
}
