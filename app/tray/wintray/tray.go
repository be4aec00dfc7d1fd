//go:build windows

package wintray

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/shuaxinkong/EarTrumpet/app/tray/commontray"
	"github.com/shuaxinkong/EarTrumpet/app/tray/notifyicon"
	"golang.org/x/sys/windows"
)

// Private message id the shell posts to the message window for every icon
// notification.
const wmTrayCallback = WM_USER + 1

// winTray implements commontray.Tray on top of the notifyicon state
// machine and the Win32 collaborators in this package.
type winTray struct {
	window *messageWindow
	icon   *notifyicon.Icon

	// Current HICON, owned by the state machine until replaced.
	image windows.Handle

	callbacks commontray.Callbacks
	quitOnce  sync.Once
}

// InitTray creates the hidden message window, loads the icon image and
// shows the icon. Must be called from the main thread; Run must follow on
// the same thread.
func InitTray(iconData []byte) (commontray.Tray, error) {
	window, err := newMessageWindow()
	if err != nil {
		return nil, fmt.Errorf("unable to init message window: %w", err)
	}

	imageHandle, err := loadIcon(iconData)
	if err != nil {
		return nil, fmt.Errorf("unable to load tray icon: %w", err)
	}

	t := &winTray{
		window: window,
		image:  imageHandle,
		callbacks: commontray.Callbacks{
			Click: make(chan notifyicon.MouseButton, 16),
			Wheel: make(chan int32, 16),
		},
	}
	t.icon = notifyicon.New(notifyicon.Config{
		Window:          window,
		Shell:           shellAPI{},
		Identity:        newGUIDSource(),
		Feed:            mouseInputFeed{},
		Cursor:          cursorProbe{},
		CallbackMessage: wmTrayCallback,
		RestartMessage:  window.taskbarCreated,
		ReleaseImage:    destroyIcon,
		OnClick:         t.emitClick,
		OnWheel:         t.emitWheel,
	})
	window.SetHandler(t.handleMessage)

	t.icon.SetImage(uintptr(imageHandle))
	t.icon.SetTooltip(commontray.ToolTip)
	t.icon.SetVisible(true)

	return t, nil
}

func (t *winTray) handleMessage(message uint32, wParam, lParam uintptr) {
	if message == WM_CLOSE {
		t.icon.Dispose()
		return
	}
	t.icon.HandleMessage(message, wParam, lParam)
}

// Events are dropped rather than blocking the pump thread when the app
// falls behind.
func (t *winTray) emitClick(button notifyicon.MouseButton) {
	select {
	case t.callbacks.Click <- button:
	default:
		slog.Debug("dropping tray click, channel full", "button", button)
	}
}

func (t *winTray) emitWheel(delta int32) {
	select {
	case t.callbacks.Wheel <- delta:
	default:
		slog.Debug("dropping tray wheel event, channel full", "delta", delta)
	}
}

func (t *winTray) GetCallbacks() commontray.Callbacks {
	return t.callbacks
}

func (t *winTray) Run() {
	t.window.Run()
}

// Quit posts a close to the message window; the ensuing WM_CLOSE tears the
// icon down on the pump thread and stops the loop.
func (t *winTray) Quit() {
	t.quitOnce.Do(func() {
		boolRet, _, err := pPostMessage.Call(
			t.window.Handle(),
			WM_CLOSE,
			0,
			0,
		)
		if boolRet == 0 {
			slog.Error(fmt.Sprintf("failed to post close message on shutdown %s", err))
		}
	})
}

func (t *winTray) SetTooltip(text string) {
	t.icon.SetTooltip(text)
}

func (t *winTray) SetVisible(visible bool) {
	t.icon.SetVisible(visible)
}

func (t *winTray) RequestFocus() {
	t.icon.RequestFocus()
}

// SetIcon replaces the tray image with freshly loaded .ico bytes. The
// previous handle is destroyed after the shell has been handed the new
// one.
func (t *winTray) SetIcon(iconData []byte) error {
	h, err := loadIcon(iconData)
	if err != nil {
		return fmt.Errorf("unable to load tray icon: %w", err)
	}
	prev := t.image
	t.image = h
	t.icon.SetImage(uintptr(h))
	if prev != 0 {
		destroyIcon(uintptr(prev))
	}
	return nil
}
