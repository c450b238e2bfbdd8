// internal/version/version.go
package version

// Version is stamped at build time via -ldflags "-X".
var Version = "0.0.0-dev"
