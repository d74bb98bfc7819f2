//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procGetDpiForSystem    = user32.NewProc("GetDpiForSystem")
	procSetProcessDPIAware = user32.NewProc("SetProcessDPIAware")
)

// systemDPI asks user32 for the system DPI. GetDpiForSystem is missing before
// Windows 10 1607, in which case the proc lookup fails.
func systemDPI() (uint32, error) {
	if err := procGetDpiForSystem.Find(); err != nil {
		return 0, err
	}
	r, _, _ := procGetDpiForSystem.Call()
	return uint32(r), nil
}

func setProcessDPIAware() error {
	if err := procSetProcessDPIAware.Find(); err != nil {
		return err
	}
	r, _, err := procSetProcessDPIAware.Call()
	if r == 0 {
		return err
	}
	return nil
}
