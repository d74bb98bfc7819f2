//go:build !windows

package platform

import "errors"

// ErrNoDPIAPI is returned where the OS has no first-class DPI API.
var ErrNoDPIAPI = errors.New("no system DPI API on this platform")

func systemDPI() (uint32, error) {
	return 0, ErrNoDPIAPI
}

func setProcessDPIAware() error {
	return ErrNoDPIAPI
}
