package ctscaseload

// version is stamped at release time via -ldflags "-X stanm/ctscaseload.version=...".
var version string

// fallbackVersion is reported by builds that carry no stamped version.
const fallbackVersion = "999"

// Version reports the package version. It is never empty: unstamped
// builds report fallbackVersion.
func Version() string {
	if version != "" {
		return version
	}
	return fallbackVersion
}
