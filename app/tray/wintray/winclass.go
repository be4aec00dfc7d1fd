//go:build windows

package wintray

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Contains window class information.
// https://msdn.microsoft.com/en-us/library/windows/desktop/ms633577(v=vs.85).aspx
type wndClassEx struct {
	Size, Style                        uint32
	WndProc                            uintptr
	ClsExtra, WndExtra                 int32
	Instance, Icon, Cursor, Background windows.Handle
	MenuName, ClassName                *uint16
	IconSm                             windows.Handle
}

// Registers a window class for subsequent use in calls to CreateWindowEx.
// https://msdn.microsoft.com/en-us/library/windows/desktop/ms633587(v=vs.85).aspx
func (w *wndClassEx) register() error {
	w.Size = uint32(unsafe.Sizeof(*w))
	res, _, err := pRegisterClass.Call(uintptr(unsafe.Pointer(w)))
	if res == 0 {
		return err
	}
	return nil
}

// Unregisters the window class registered by register.
// https://msdn.microsoft.com/en-us/library/windows/desktop/ms644899(v=vs.85).aspx
func (w *wndClassEx) unregister() error {
	res, _, err := pUnregisterClass.Call(
		uintptr(unsafe.Pointer(w.ClassName)),
		uintptr(w.Instance),
	)
	if res == 0 {
		return err
	}
	return nil
}
