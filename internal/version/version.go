// Package version carries the build version, overridable at link time:
//
//	go build -ldflags "-X meshborder/internal/version.Version=1.2.0" ./cmd/meshborder
package version

var Version = "0.3.0-dev"
