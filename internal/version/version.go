// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Live view, JSON snapshots, viper configuration
// 0.2.0 - Night events, planets, barycentric corrections
// 0.1.0 - Initial release: site catalog, target sky position, sun and moon
