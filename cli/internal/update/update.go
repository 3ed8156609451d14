package update

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-version"

	"github.com/attrlang/asl-go/cli/internal/ui"
)

// latestKnownVersion is the newest release the binary knows about. A release
// pipeline stamps this at build time; until then the check compares against
// the baked-in value.
var latestKnownVersion = "0.1.0"

// CheckForUpdates compares the running version against the latest known
// release and notifies the user when a newer one exists.
func CheckForUpdates(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}

	latest, err := version.NewVersion(latestKnownVersion)
	if err != nil {
		return fmt.Errorf("invalid latest version format: %w", err)
	}

	if current.LessThan(latest) {
		ui.PrintWarning("A new version is available!")
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Latest version:  %s\n", latestKnownVersion)
		fmt.Printf("\nUpdate with: go install github.com/attrlang/asl-go/cli@latest\n")
		return nil
	}

	return nil
}

// GetDownloadURL returns the download URL for the current platform
func GetDownloadURL(release string) string {
	os := runtime.GOOS
	arch := runtime.GOARCH
	return fmt.Sprintf("https://github.com/attrlang/asl-go/releases/download/v%s/asl-%s-%s", release, os, arch)
}
