//go:build windows

package wintray

import (
	"fmt"
	"unsafe"

	"github.com/google/uuid"
	"github.com/shuaxinkong/EarTrumpet/app/tray/notifyicon"
	"golang.org/x/sys/windows"
)

// Contains information that the system needs to display notifications in
// the notification area. Used by Shell_NotifyIcon.
// https://msdn.microsoft.com/en-us/library/windows/desktop/bb773352(v=vs.85).aspx
// https://msdn.microsoft.com/en-us/library/windows/desktop/bb762159
type notifyIconData struct {
	Size                       uint32
	Wnd                        windows.Handle
	ID, Flags, CallbackMessage uint32
	Icon                       windows.Handle
	Tip                        [128]uint16
	State, StateMask           uint32
	Info                       [256]uint16
	// Union with uVersion; NIM_SETVERSION reads the protocol version from
	// here.
	Timeout uint32

	InfoTitle   [64]uint16
	InfoFlags   uint32
	GuidItem    windows.GUID
	BalloonIcon windows.Handle
}

// Used by Shell_NotifyIconGetRect to name the icon being queried.
// https://learn.microsoft.com/en-us/windows/win32/api/shellapi/ns-shellapi-notifyiconidentifier
type notifyIconIdentifier struct {
	Size     uint32
	Wnd      windows.Handle
	ID       uint32
	GuidItem windows.GUID
}

// shellAPI implements notifyicon.Shell over Shell_NotifyIconW. The icon is
// addressed by GUID on every call so the shell can match repeated calls to
// the same logical icon.
type shellAPI struct{}

func newNotifyIconData(d notifyicon.Descriptor) *notifyIconData {
	nid := &notifyIconData{
		Wnd:             windows.Handle(d.Window),
		Flags:           NIF_MESSAGE | NIF_GUID,
		CallbackMessage: d.Callback,
		GuidItem:        guidFromUUID(d.Identity),
	}
	if d.Image != 0 {
		nid.Icon = windows.Handle(d.Image)
		nid.Flags |= NIF_ICON
	}
	if d.Tooltip != "" {
		if tip, err := windows.UTF16FromString(d.Tooltip); err == nil {
			copy(nid.Tip[:], tip)
			nid.Flags |= NIF_TIP | NIF_SHOWTIP
		}
	}
	nid.Size = uint32(unsafe.Sizeof(*nid))
	return nid
}

func notify(action uintptr, nid *notifyIconData) error {
	res, _, err := pShellNotifyIcon.Call(
		action,
		uintptr(unsafe.Pointer(nid)),
	)
	if res == 0 {
		return err
	}
	return nil
}

func (shellAPI) Add(d notifyicon.Descriptor) error {
	return notify(NIM_ADD, newNotifyIconData(d))
}

func (shellAPI) Modify(d notifyicon.Descriptor) error {
	return notify(NIM_MODIFY, newNotifyIconData(d))
}

func (shellAPI) Delete(d notifyicon.Descriptor) error {
	return notify(NIM_DELETE, newNotifyIconData(d))
}

func (shellAPI) SetVersion(d notifyicon.Descriptor) error {
	nid := newNotifyIconData(d)
	nid.Timeout = NOTIFYICON_VERSION_4
	return notify(NIM_SETVERSION, nid)
}

func (shellAPI) SetFocus(d notifyicon.Descriptor) error {
	return notify(NIM_SETFOCUS, newNotifyIconData(d))
}

func (shellAPI) IconRect(window uintptr, id uuid.UUID) (notifyicon.Rect, error) {
	ident := notifyIconIdentifier{
		Wnd:      windows.Handle(window),
		GuidItem: guidFromUUID(id),
	}
	ident.Size = uint32(unsafe.Sizeof(ident))

	var rc rect
	// Returns an HRESULT, zero on success.
	res, _, _ := pShellNotifyIconGetRect.Call(
		uintptr(unsafe.Pointer(&ident)),
		uintptr(unsafe.Pointer(&rc)),
	)
	if res != 0 {
		return notifyicon.Rect{}, fmt.Errorf("shell rejected the icon rect query: hresult 0x%x", res)
	}
	return notifyicon.Rect{Left: rc.Left, Top: rc.Top, Right: rc.Right, Bottom: rc.Bottom}, nil
}
