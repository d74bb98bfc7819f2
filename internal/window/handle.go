package window

// Handle is a non-owning reference to the process window. Only the Owner that
// created it may destroy it; after destruction every operation is a no-op.
type Handle struct {
	native    NativeWindow
	width     int
	height    int
	destroyed bool
}

// Show makes the window visible.
func (h *Handle) Show() {
	if h.alive() {
		h.native.Show()
	}
}

// SetTitle updates the window title.
func (h *Handle) SetTitle(title string) {
	if h.alive() {
		h.native.SetTitle(title)
	}
}

// Size returns the current window size, or the creation size once destroyed.
func (h *Handle) Size() (int, int) {
	if h.alive() {
		return h.native.Size()
	}
	return h.width, h.height
}

// InitialSize returns the size the window was created with.
func (h *Handle) InitialSize() (int, int) {
	return h.width, h.height
}

// Native returns the backend window, or nil once destroyed.
func (h *Handle) Native() NativeWindow {
	if !h.alive() {
		return nil
	}
	return h.native
}

// Destroyed reports whether the owner has released the window.
func (h *Handle) Destroyed() bool {
	return h == nil || h.destroyed
}

func (h *Handle) alive() bool {
	return h != nil && !h.destroyed && h.native != nil
}

// release destroys the native window once and reports whether it did.
func (h *Handle) release() bool {
	if h.destroyed {
		return false
	}
	h.destroyed = true
	if h.native != nil {
		h.native.Destroy()
	}
	return true
}
