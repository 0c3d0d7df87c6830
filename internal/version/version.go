// Package version carries the build version stamped in by the
// release workflow via -ldflags.
package version

var Version = "dev"
