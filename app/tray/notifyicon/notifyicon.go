// Package notifyicon implements the notification-area icon state machine:
// the add/modify/delete protocol against the shell, recovery after explorer
// restarts and stale-identity rejections, and translation of the icon's
// callback messages into click and wheel events.
//
// The package is platform neutral. Every shell and input dependency is
// injected through the interfaces in this file; the Windows implementations
// live in the wintray package. All methods must be called from the thread
// that owns the message pump. The pump serializes every notification, so
// the type does no locking of its own.
package notifyicon

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Notification codes carried in the low word of the callback message's
// lParam once NOTIFYICON_VERSION_4 is selected.
// https://learn.microsoft.com/en-us/windows/win32/api/shellapi/nf-shellapi-shell_notifyiconw
const (
	wmMouseMove   = 0x0200
	wmLButtonUp   = 0x0202
	wmRButtonUp   = 0x0205
	wmMButtonUp   = 0x0208
	wmContextMenu = 0x007B
	wmInput       = 0x00FF

	ninSelect    = 0x0400 // WM_USER + 0
	ninKeySelect = 0x0401
)

// MouseButton identifies which semantic button a click event came from.
type MouseButton int

const (
	LeftButton MouseButton = iota
	MiddleButton
	RightButton
)

func (b MouseButton) String() string {
	switch b {
	case LeftButton:
		return "left"
	case MiddleButton:
		return "middle"
	case RightButton:
		return "right"
	}
	return fmt.Sprintf("button(%d)", int(b))
}

// MouseSample is one decoded raw-input mouse frame: the global cursor
// position at the time of the frame plus the signed wheel delta, 0 if the
// frame carried none.
type MouseSample struct {
	Pos   Point
	Wheel int32
}

// Descriptor carries everything the shell needs to locate and render the
// icon. It is rebuilt from current state before every shell call so the
// shell always sees current values.
type Descriptor struct {
	Window   uintptr
	Callback uint32 // application-private callback message id
	Image    uintptr
	Tooltip  string
	Identity uuid.UUID
}

// Shell is the native notification-area API. Calls report only success or
// failure; a failure carries the platform error for logging.
type Shell interface {
	Add(Descriptor) error
	Modify(Descriptor) error
	Delete(Descriptor) error
	SetVersion(Descriptor) error
	SetFocus(Descriptor) error
	IconRect(window uintptr, id uuid.UUID) (Rect, error)
}

// IdentitySource resolves the icon's stable 128-bit identity. Invalidate
// forces the next Resolve to return a fresh identity; the state machine
// invokes it when the shell rejects an add for the current identity.
type IdentitySource interface {
	Resolve() uuid.UUID
	Invalidate()
}

// WheelFeed is the opt-in raw-input stream that supplies wheel deltas,
// which the icon callback channel does not carry. Registration is global
// shared state, so the icon keeps it armed only while the cursor is over
// its own bounds.
type WheelFeed interface {
	Register(window uintptr) error
	Unregister() error
	Decode(lparam uintptr) (MouseSample, bool)
}

// CursorProbe reports the global cursor position.
type CursorProbe interface {
	Pos() (Point, error)
}

// MessageWindow is the hidden window whose procedure forwards messages to
// HandleMessage. The icon disposes it when it is itself disposed.
type MessageWindow interface {
	Handle() uintptr
	Dispose() error
}

// Config wires an Icon to its collaborators. Window, Shell, Identity, Feed
// and Cursor are required.
type Config struct {
	Window   MessageWindow
	Shell    Shell
	Identity IdentitySource
	Feed     WheelFeed
	Cursor   CursorProbe

	// CallbackMessage is the private message id the shell uses for every
	// icon notification. RestartMessage is the registered "TaskbarCreated"
	// broadcast id.
	CallbackMessage uint32
	RestartMessage  uint32

	// ReleaseImage frees the owned image handle on Dispose.
	ReleaseImage func(uintptr)

	// Event subscribers. A nil subscriber turns the event into a no-op.
	OnClick func(MouseButton)
	OnWheel func(delta int32)
}

// attachState tracks whether the shell currently holds a live icon object
// for our identity.
type attachState int

const (
	detached attachState = iota
	attached
)

// Icon is a single notification-area icon.
type Icon struct {
	window   MessageWindow
	shell    Shell
	identity IdentitySource
	feed     WheelFeed
	cursor   CursorProbe

	callbackMsg  uint32
	restartMsg   uint32
	releaseImage func(uintptr)

	onClick func(MouseButton)
	onWheel func(delta int32)

	image   uintptr
	tooltip string
	visible bool
	state   attachState

	listening  bool
	lastRect   Rect
	lastSample MouseSample
}

// New returns an icon in the hidden state. Nothing is sent to the shell
// until the first SetVisible(true).
func New(cfg Config) *Icon {
	return &Icon{
		window:       cfg.Window,
		shell:        cfg.Shell,
		identity:     cfg.Identity,
		feed:         cfg.Feed,
		cursor:       cfg.Cursor,
		callbackMsg:  cfg.CallbackMessage,
		restartMsg:   cfg.RestartMessage,
		releaseImage: cfg.ReleaseImage,
		onClick:      cfg.OnClick,
		onWheel:      cfg.OnWheel,
	}
}

// SetImage replaces the icon image handle and pushes it to the shell if the
// icon is showing. The icon owns the new handle from here on; a replaced
// handle goes back to the caller.
func (icon *Icon) SetImage(h uintptr) {
	if icon.image == h {
		return
	}
	icon.image = h
	icon.apply(false)
}

// SetTooltip replaces the hover text and pushes it to the shell if the
// icon is showing.
func (icon *Icon) SetTooltip(text string) {
	if icon.tooltip == text {
		return
	}
	icon.tooltip = text
	icon.apply(false)
}

// SetVisible shows or hides the icon.
func (icon *Icon) SetVisible(visible bool) {
	if icon.visible == visible {
		return
	}
	icon.visible = visible
	icon.apply(false)
}

// RequestFocus asks the shell to return keyboard focus to the icon, e.g.
// after a flyout spawned from it closes.
func (icon *Icon) RequestFocus() {
	if err := icon.shell.SetFocus(icon.descriptor()); err != nil {
		slog.Warn(fmt.Sprintf("failed to give focus to the tray icon: %s", err))
	}
}

// Dispose tears the icon down: hides it (driving a delete against the
// shell), drops the raw-input registration, destroys the message window
// and releases the owned image handle. The instance must not be used
// afterward.
func (icon *Icon) Dispose() {
	if icon.visible {
		icon.SetVisible(false)
	}
	if icon.listening {
		icon.stopListening()
	}
	if err := icon.window.Dispose(); err != nil {
		slog.Warn(fmt.Sprintf("failed to tear down the message window: %s", err))
	}
	if icon.image != 0 && icon.releaseImage != nil {
		icon.releaseImage(icon.image)
		icon.image = 0
	}
}

// HandleMessage is the single entry point for the message pump. It handles
// the icon's private callback message, raw input, and the shell restart
// broadcast; everything else is ignored.
func (icon *Icon) HandleMessage(msg uint32, wparam, lparam uintptr) {
	switch {
	case msg == icon.callbackMsg:
		icon.handleCallback(uint32(lparam) & 0xffff)
	case msg == wmInput:
		icon.handleRawInput(lparam)
	case msg == icon.restartMsg && icon.restartMsg != 0:
		slog.Info("shell restarted, restoring the tray icon")
		icon.apply(true)
	}
}

// apply runs the transition rule from the current desired state.
// withVersion re-issues the protocol version selection on the modify path;
// shell restart recovery needs that because a recreated shell has forgotten
// which callback protocol we speak.
func (icon *Icon) apply(withVersion bool) {
	switch {
	case icon.visible && icon.state == detached:
		icon.attach()
	case icon.visible && icon.state == attached:
		if err := icon.shell.Modify(icon.descriptor()); err != nil {
			slog.Warn(fmt.Sprintf("failed to modify the tray icon: %s", err))
		}
		if withVersion {
			icon.selectVersion()
		}
	case !icon.visible && icon.state == attached:
		if err := icon.shell.Delete(icon.descriptor()); err != nil {
			slog.Warn(fmt.Sprintf("failed to delete the tray icon: %s", err))
		}
		icon.state = detached
	}
}

// attach adds the icon to the shell. A rejected add usually means a ghost
// entry from a previous process is squatting on our identity, so the
// identity is regenerated and the add retried exactly once. The icon is
// considered attached afterward either way; looping against a broken shell
// would gain nothing.
func (icon *Icon) attach() {
	if err := icon.shell.Add(icon.descriptor()); err != nil {
		slog.Warn(fmt.Sprintf("shell rejected the tray icon, regenerating its identity: %s", err))
		icon.identity.Invalidate()
		if err := icon.shell.Add(icon.descriptor()); err != nil {
			slog.Error(fmt.Sprintf("failed to add the tray icon after identity reset: %s", err))
		}
	}
	icon.state = attached
	icon.selectVersion()
}

// selectVersion opts in to NOTIFYICON_VERSION_4 message semantics so
// select and hover notifications arrive as NIN_* codes.
func (icon *Icon) selectVersion() {
	if err := icon.shell.SetVersion(icon.descriptor()); err != nil {
		slog.Warn(fmt.Sprintf("failed to select the tray icon protocol version: %s", err))
	}
}

// descriptor builds a fresh shell descriptor from current state.
func (icon *Icon) descriptor() Descriptor {
	return Descriptor{
		Window:   icon.window.Handle(),
		Callback: icon.callbackMsg,
		Image:    icon.image,
		Tooltip:  icon.tooltip,
		Identity: icon.identity.Resolve(),
	}
}

func (icon *Icon) handleCallback(code uint32) {
	switch code {
	case ninSelect, ninKeySelect, wmLButtonUp:
		icon.click(LeftButton)
	case wmMButtonUp:
		icon.click(MiddleButton)
	case wmContextMenu, wmRButtonUp:
		icon.click(RightButton)
	case wmMouseMove:
		icon.trackBounds()
	}
}

func (icon *Icon) click(button MouseButton) {
	if icon.onClick == nil {
		slog.Debug("dropping tray click, no subscriber", "button", button)
		return
	}
	icon.onClick(button)
}

// trackBounds re-evaluates the cursor-vs-icon hit test. It runs on every
// move notification: the tray can be resized or reflowed at any time, so
// the rectangle is re-queried each time instead of cached indefinitely.
func (icon *Icon) trackBounds() {
	rect, err := icon.shell.IconRect(icon.window.Handle(), icon.identity.Resolve())
	if err != nil {
		slog.Debug(fmt.Sprintf("tray icon rect query failed: %s", err))
		rect = Rect{}
	}
	icon.lastRect = rect

	inside := false
	if pos, err := icon.cursor.Pos(); err == nil {
		inside = rect.Contains(pos)
	}

	switch {
	case inside && !icon.listening:
		if err := icon.feed.Register(icon.window.Handle()); err != nil {
			slog.Warn(fmt.Sprintf("failed to register for raw mouse input: %s", err))
		}
		icon.listening = true
	case !inside && icon.listening:
		icon.stopListening()
	}
}

func (icon *Icon) stopListening() {
	if err := icon.feed.Unregister(); err != nil {
		slog.Warn(fmt.Sprintf("failed to unregister from raw mouse input: %s", err))
	}
	icon.listening = false
}

// handleRawInput decodes a generic input message and raises the wheel
// event. This path is latency sensitive, so the hit test reuses the
// rectangle from the last move notification instead of asking the shell
// again.
func (icon *Icon) handleRawInput(lparam uintptr) {
	if !icon.listening {
		return
	}
	sample, ok := icon.feed.Decode(lparam)
	if !ok {
		return
	}
	icon.lastSample = sample
	if sample.Wheel == 0 || !icon.lastRect.Contains(sample.Pos) {
		return
	}
	if icon.onWheel == nil {
		slog.Debug("dropping tray wheel event, no subscriber", "delta", sample.Wheel)
		return
	}
	icon.onWheel(sample.Wheel)
}
