package commontray

import (
	"github.com/shuaxinkong/EarTrumpet/app/tray/notifyicon"
)

var (
	Title   = "EarTrumpet"
	ToolTip = "EarTrumpet"

	IconName = "tray"
)

// Callbacks deliver icon input events to the app. The channels are
// buffered; events are dropped rather than blocking the message pump.
type Callbacks struct {
	Click chan notifyicon.MouseButton
	Wheel chan int32
}

// Tray is the app-facing surface of the notification-area icon. Mutators
// must run on the thread that owns the message pump, either before Run or
// from inside an event callback.
type Tray interface {
	GetCallbacks() Callbacks
	Run()
	Quit()
	SetTooltip(text string)
	SetIcon(icon []byte) error
	SetVisible(visible bool)
	RequestFocus()
}
