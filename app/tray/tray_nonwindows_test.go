//go:build !windows

package tray

import (
	"testing"
)

func TestInitPlatformTray_ErrorReturned(t *testing.T) {
	icon := []byte{0x01, 0x02, 0x03}

	tray, err := InitPlatformTray(icon)

	if tray != nil {
		t.Errorf("Expected tray to be nil, got %v", tray)
	}

	if err == nil {
		t.Errorf("Expected an error, but got nil")
	} else if err.Error() != "not implemented" {
		t.Errorf("Expected error message 'not implemented', but got '%v'", err.Error())
	}
}
