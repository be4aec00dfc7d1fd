//go:build windows

package wintray

import (
	"unsafe"

	"github.com/shuaxinkong/EarTrumpet/app/tray/notifyicon"
)

// cursorProbe implements notifyicon.CursorProbe over GetCursorPos.
type cursorProbe struct{}

func (cursorProbe) Pos() (notifyicon.Point, error) {
	var p point
	boolRet, _, err := pGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if boolRet == 0 {
		return notifyicon.Point{}, err
	}
	return notifyicon.Point{X: p.X, Y: p.Y}, nil
}
