package window

import (
	"errors"
	"image"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var _ Backend = (*GLFWBackend)(nil)

// ErrNoPrimaryMonitor is returned when GLFW reports no connected monitor.
var ErrNoPrimaryMonitor = errors.New("no primary monitor")

// GLFWBackend drives windows through GLFW 3.3. All methods must be called
// from the main OS thread.
type GLFWBackend struct{}

// NewGLFWBackend returns a GLFW backed display subsystem.
func NewGLFWBackend() *GLFWBackend {
	return &GLFWBackend{}
}

func (b *GLFWBackend) Init() error {
	return glfw.Init()
}

// SetHint reports false for both host hints: GLFW 3.3 exposes neither a
// compositor-bypass nor a click-through focus control.
func (b *GLFWBackend) SetHint(Hint, bool) bool {
	return false
}

func (b *GLFWBackend) PrimaryVideoMode() (VideoMode, error) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return VideoMode{}, ErrNoPrimaryMonitor
	}
	mode := monitor.GetVideoMode()
	if mode == nil {
		return VideoMode{}, ErrNoPrimaryMonitor
	}
	return VideoMode{Width: mode.Width, Height: mode.Height}, nil
}

func (b *GLFWBackend) CreateWindow(spec CreateSpec) (NativeWindow, error) {
	glfw.DefaultWindowHints()

	// GL 3.3 core profile for the render surface; macOS requires forward compatibility.
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	glfw.WindowHint(glfw.Resizable, glfwBool(spec.Resizable))
	glfw.WindowHint(glfw.Visible, glfwBool(!spec.Hidden))
	glfw.WindowHint(glfw.ScaleToMonitor, glfwBool(spec.HighDPI))
	glfw.WindowHint(glfw.CocoaRetinaFramebuffer, glfwBool(spec.HighDPI))

	w, err := glfw.CreateWindow(spec.Width, spec.Height, spec.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &glfwWindow{w: w}, nil
}

func (b *GLFWBackend) Terminate() {
	glfw.Terminate()
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// glfwWindow adapts *glfw.Window to NativeWindow and exposes the GL context
// to the render surface binding.
type glfwWindow struct {
	w *glfw.Window
}

func (g *glfwWindow) Show()                        { g.w.Show() }
func (g *glfwWindow) SetTitle(title string)        { g.w.SetTitle(title) }
func (g *glfwWindow) SetIcon(images []image.Image) { g.w.SetIcon(images) }
func (g *glfwWindow) Size() (int, int)             { return g.w.GetSize() }
func (g *glfwWindow) Destroy()                     { g.w.Destroy() }

// MakeContextCurrent makes the window's GL context current on the calling thread.
func (g *glfwWindow) MakeContextCurrent() { g.w.MakeContextCurrent() }
