//go:build windows

package wintray

import (
	"unsafe"

	"github.com/shuaxinkong/EarTrumpet/app/tray/notifyicon"
	"golang.org/x/sys/windows"
)

const (
	hidUsagePageGeneric = 0x01
	hidUsageMouse       = 0x02
)

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/ns-winuser-rawinputdevice
type rawInputDevice struct {
	UsagePage uint16
	Usage     uint16
	Flags     uint32
	Target    windows.Handle
}

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/ns-winuser-rawinputheader
type rawInputHeader struct {
	Type   uint32
	Size   uint32
	Device windows.Handle
	WParam uintptr
}

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/ns-winuser-rawmouse
// ButtonFlags and ButtonData are the low and high words of the button
// union; the wheel delta rides in ButtonData as a signed 16-bit value.
type rawMouse struct {
	Flags            uint16
	_                uint16
	ButtonFlags      uint16
	ButtonData       uint16
	RawButtons       uint32
	LastX            int32
	LastY            int32
	ExtraInformation uint32
}

type rawInput struct {
	Header rawInputHeader
	Mouse  rawMouse
}

// mouseInputFeed implements notifyicon.WheelFeed. RIDEV_INPUTSINK makes
// wheel frames reach the hidden message window even though it never has
// focus; the registration is process global, which is why the state
// machine keeps it armed only while the cursor sits over the icon.
type mouseInputFeed struct{}

func registerRawInput(dev rawInputDevice) error {
	res, _, err := pRegisterRawInputDevices.Call(
		uintptr(unsafe.Pointer(&dev)),
		1,
		unsafe.Sizeof(dev),
	)
	if res == 0 {
		return err
	}
	return nil
}

func (mouseInputFeed) Register(window uintptr) error {
	return registerRawInput(rawInputDevice{
		UsagePage: hidUsagePageGeneric,
		Usage:     hidUsageMouse,
		Flags:     RIDEV_INPUTSINK,
		Target:    windows.Handle(window),
	})
}

func (mouseInputFeed) Unregister() error {
	return registerRawInput(rawInputDevice{
		UsagePage: hidUsagePageGeneric,
		Usage:     hidUsageMouse,
		Flags:     RIDEV_REMOVE,
	})
}

// Decode reads the WM_INPUT payload behind lparam. Mouse frames carry
// relative motion only, so the cursor position is sampled separately to
// give the hit test an absolute point.
func (mouseInputFeed) Decode(lparam uintptr) (notifyicon.MouseSample, bool) {
	var ri rawInput
	size := uint32(unsafe.Sizeof(ri))
	res, _, _ := pGetRawInputData.Call(
		lparam,
		RID_INPUT,
		uintptr(unsafe.Pointer(&ri)),
		uintptr(unsafe.Pointer(&size)),
		unsafe.Sizeof(ri.Header),
	)
	if res == ^uintptr(0) || ri.Header.Type != RIM_TYPEMOUSE {
		return notifyicon.MouseSample{}, false
	}

	var sample notifyicon.MouseSample
	if ri.Mouse.ButtonFlags&RI_MOUSE_WHEEL != 0 {
		sample.Wheel = int32(int16(ri.Mouse.ButtonData))
	}

	var p point
	if boolRet, _, _ := pGetCursorPos.Call(uintptr(unsafe.Pointer(&p))); boolRet == 0 {
		return notifyicon.MouseSample{}, false
	}
	sample.Pos = notifyicon.Point{X: p.X, Y: p.Y}
	return sample, true
}
