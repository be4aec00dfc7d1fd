//go:build windows

package wintray

import (
	"fmt"
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"
)

const className = "EarTrumpetTrayClass"

// msgHandler receives every message dispatched to the hidden window that
// the window does not consume itself.
type msgHandler func(message uint32, wParam, lParam uintptr)

// messageWindow is the invisible top-level window that receives the icon's
// callback messages, raw input and shell broadcasts, serializing them onto
// the pump thread.
type messageWindow struct {
	instance,
	icon,
	cursor,
	handle windows.Handle

	wcex *wndClassEx

	// Message id the shell broadcasts to every top level window when
	// explorer.exe (re)starts.
	taskbarCreated uint32

	handler msgHandler
}

func newMessageWindow() (*messageWindow, error) {
	const windowName = ""

	w := &messageWindow{}

	taskbarEventNamePtr, _ := windows.UTF16PtrFromString("TaskbarCreated")
	// https://msdn.microsoft.com/en-us/library/windows/desktop/ms644947
	res, _, err := pRegisterWindowMessage.Call(
		uintptr(unsafe.Pointer(taskbarEventNamePtr)),
	)
	if res == 0 { // success 0xc000-0xfff
		return nil, fmt.Errorf("failed to register taskbar created message: %w", err)
	}
	w.taskbarCreated = uint32(res)

	instanceHandle, _, err := pGetModuleHandle.Call(0)
	if instanceHandle == 0 {
		return nil, err
	}
	w.instance = windows.Handle(instanceHandle)

	// https://msdn.microsoft.com/en-us/library/windows/desktop/ms648072(v=vs.85).aspx
	iconHandle, _, err := pLoadIcon.Call(0, uintptr(IDI_APPLICATION))
	if iconHandle == 0 {
		return nil, err
	}
	w.icon = windows.Handle(iconHandle)

	// https://msdn.microsoft.com/en-us/library/windows/desktop/ms648391(v=vs.85).aspx
	cursorHandle, _, err := pLoadCursor.Call(0, uintptr(IDC_ARROW))
	if cursorHandle == 0 {
		return nil, err
	}
	w.cursor = windows.Handle(cursorHandle)

	classNamePtr, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return nil, err
	}

	windowNamePtr, err := windows.UTF16PtrFromString(windowName)
	if err != nil {
		return nil, err
	}

	w.wcex = &wndClassEx{
		Style:      CS_HREDRAW | CS_VREDRAW,
		WndProc:    windows.NewCallback(w.wndProc),
		Instance:   w.instance,
		Icon:       w.icon,
		Cursor:     w.cursor,
		Background: windows.Handle(6), // (COLOR_WINDOW + 1)
		ClassName:  classNamePtr,
		IconSm:     w.icon,
	}
	if err := w.wcex.register(); err != nil {
		return nil, err
	}

	windowHandle, _, err := pCreateWindowEx.Call(
		uintptr(0),
		uintptr(unsafe.Pointer(classNamePtr)),
		uintptr(unsafe.Pointer(windowNamePtr)),
		uintptr(WS_OVERLAPPEDWINDOW),
		uintptr(CW_USEDEFAULT),
		uintptr(CW_USEDEFAULT),
		uintptr(CW_USEDEFAULT),
		uintptr(CW_USEDEFAULT),
		uintptr(0),
		uintptr(0),
		uintptr(w.instance),
		uintptr(0),
	)
	if windowHandle == 0 {
		return nil, err
	}
	w.handle = windows.Handle(windowHandle)

	pShowWindow.Call(uintptr(w.handle), uintptr(SW_HIDE)) //nolint:errcheck

	boolRet, _, err := pUpdateWindow.Call(uintptr(w.handle))
	if boolRet == 0 {
		slog.Error(fmt.Sprintf("failed to update window: %s", err))
	}

	return w, nil
}

func (w *messageWindow) Handle() uintptr {
	return uintptr(w.handle)
}

// SetHandler installs the message consumer. Must happen before the pump
// starts; there is no locking around the field.
func (w *messageWindow) SetHandler(h msgHandler) {
	w.handler = h
}

// Dispose destroys the window and unregisters its class. Safe to call from
// inside the window procedure; the WM_DESTROY handler stops the pump.
// Calling it twice is a no-op.
func (w *messageWindow) Dispose() error {
	if w.handle == 0 {
		return nil
	}
	handle := w.handle
	w.handle = 0
	boolRet, _, err := pDestroyWindow.Call(uintptr(handle))
	if boolRet == 0 {
		return fmt.Errorf("failed to destroy window: %w", err)
	}
	return w.wcex.unregister()
}

// WindowProc callback that processes messages sent to the hidden window.
// https://msdn.microsoft.com/en-us/library/windows/desktop/ms633573(v=vs.85).aspx
func (w *messageWindow) wndProc(hWnd windows.Handle, message uint32, wParam, lParam uintptr) (lResult uintptr) {
	if message == WM_DESTROY {
		// same as WM_ENDSESSION, but throws 0 exit code after all
		pPostQuitMessage.Call(uintptr(int32(0))) //nolint:errcheck
		return 0
	}

	if w.handler != nil {
		w.handler(message, wParam, lParam)
	}

	if message == WM_CLOSE {
		// The handler's teardown destroys the window; mop up here in case
		// no handler was ever installed.
		if err := w.Dispose(); err != nil {
			slog.Error(fmt.Sprintf("failed to dispose message window: %s", err))
		}
		return 0
	}

	// Default processing for any message the handler does not consume.
	// https://msdn.microsoft.com/en-us/library/windows/desktop/ms633572(v=vs.85).aspx
	lResult, _, _ = pDefWindowProc.Call(
		uintptr(hWnd),
		uintptr(message),
		wParam,
		lParam,
	)
	return
}

// Run pumps messages until the window is destroyed. Must be called from
// the thread that created the window.
func (w *messageWindow) Run() {
	slog.Debug("starting event handling loop")
	m := &struct {
		WindowHandle windows.Handle
		Message      uint32
		Wparam       uintptr
		Lparam       uintptr
		Time         uint32
		Pt           point
		LPrivate     uint32
	}{}
	for {
		ret, _, err := pGetMessage.Call(uintptr(unsafe.Pointer(m)), 0, 0, 0)

		// If the function retrieves a message other than WM_QUIT, the return value is nonzero.
		// If the function retrieves the WM_QUIT message, the return value is zero.
		// If there is an error, the return value is -1
		// https://msdn.microsoft.com/en-us/library/windows/desktop/ms644936(v=vs.85).aspx
		switch int32(ret) {
		case -1:
			slog.Error(fmt.Sprintf("get message failure: %v", err))
			return
		case 0:
			return
		default:
			pTranslateMessage.Call(uintptr(unsafe.Pointer(m))) //nolint:errcheck
			pDispatchMessage.Call(uintptr(unsafe.Pointer(m)))  //nolint:errcheck
		}
	}
}
