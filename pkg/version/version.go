// Package version exposes the build version of the promptline CLI.
package version

// Version is the build version. Release builds override it at link time:
//
//	go build -ldflags "-X github.com/rshade/promptline/pkg/version.Version=v1.0.0"
var Version = "dev"

// GetVersion returns the current build version string.
func GetVersion() string {
	return Version
}
