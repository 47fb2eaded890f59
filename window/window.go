package window

import (
	"fmt"
	"runtime"

	"github.com/Nub/screenfx/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// MouseButton identifies which mouse button generated a press or release event.
type MouseButton int

const (
	// MouseButtonLeft is the primary mouse button.
	MouseButtonLeft MouseButton = iota

	// MouseButtonRight is the secondary mouse button.
	MouseButtonRight

	// MouseButtonMiddle is the scroll wheel button.
	MouseButtonMiddle
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetMouseDownCallback sets the callback for mouse button press events.
	//
	// Parameters:
	//   - callback: function receiving the button and cursor x, y position
	SetMouseDownCallback(callback func(button MouseButton, x, y int32))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// effectWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type effectWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)

	// onKeyDown is called when a key is pressed.
	onKeyDown func(keyCode uint32)

	// onMouseDown is called when a mouse button is pressed.
	onMouseDown func(button MouseButton, x, y int32)
}

var _ Window = &effectWindow{}

// NewWindow creates a new Window with the specified options.
// Applies each option in order, then fills unset fields with defaults.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &effectWindow{}
	for _, opt := range options {
		opt(w)
	}
	w.applyDefaults()
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

// applyDefaults fills any field the options left at its zero value.
func (w *effectWindow) applyDefaults() {
	w.title = common.Coalesce(w.title, "Default Window Title")
	w.width = common.Coalesce(w.width, 1280)
	w.height = common.Coalesce(w.height, 720)
}

func (w *effectWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *effectWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *effectWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *effectWindow) SetMouseDownCallback(callback func(button MouseButton, x, y int32)) {
	w.onMouseDown = callback
}

func (w *effectWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *effectWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *effectWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *effectWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *effectWindow) Width() int {
	return w.width
}

func (w *effectWindow) Height() int {
	return w.height
}
