//go:build windows

package wintray

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"
)

// iconBytesToFilePath writes icon bytes to a content-addressed temp file
// so repeated loads of the same image reuse one path.
func iconBytesToFilePath(iconBytes []byte) (string, error) {
	bh := md5.Sum(iconBytes)
	dataHash := hex.EncodeToString(bh[:])
	iconFilePath := filepath.Join(os.TempDir(), "eartrumpet_temp_icon_"+dataHash)

	if _, err := os.Stat(iconFilePath); os.IsNotExist(err) {
		if err := os.WriteFile(iconFilePath, iconBytes, 0o644); err != nil {
			return "", err
		}
	}
	return iconFilePath, nil
}

// Loads an image from file to be shown in the tray.
// LoadImage: https://msdn.microsoft.com/en-us/library/windows/desktop/ms648045(v=vs.85).aspx
func loadIconFrom(src string) (windows.Handle, error) {
	srcPtr, err := windows.UTF16PtrFromString(src)
	if err != nil {
		return 0, err
	}
	res, _, err := pLoadImage.Call(
		0,
		uintptr(unsafe.Pointer(srcPtr)),
		IMAGE_ICON,
		0,
		0,
		LR_LOADFROMFILE|LR_DEFAULTSIZE,
	)
	if res == 0 {
		return 0, err
	}
	return windows.Handle(res), nil
}

// loadIcon turns .ico bytes into an HICON the shell can render. The caller
// owns the returned handle.
func loadIcon(iconBytes []byte) (windows.Handle, error) {
	iconFilePath, err := iconBytesToFilePath(iconBytes)
	if err != nil {
		return 0, fmt.Errorf("unable to write icon data to temp file: %w", err)
	}
	return loadIconFrom(iconFilePath)
}

func destroyIcon(h uintptr) {
	res, _, err := pDestroyIcon.Call(h)
	if res == 0 {
		slog.Warn(fmt.Sprintf("failed to destroy icon handle: %s", err))
	}
}
