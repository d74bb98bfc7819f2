// Package mocks provides testify mocks for the window backend.
package mocks

import (
	"image"

	"github.com/stretchr/testify/mock"

	"github.com/atlanticdynamic/litehost/internal/window"
)

var (
	_ window.Backend      = (*MockBackend)(nil)
	_ window.NativeWindow = (*MockNativeWindow)(nil)
)

// MockBackend is a mock implementation of window.Backend.
type MockBackend struct {
	mock.Mock
}

// NewMockBackend returns a backend that reports the given display mode,
// supports no hints, and creates native.
func NewMockBackend(mode window.VideoMode, native window.NativeWindow) *MockBackend {
	m := &MockBackend{}
	m.On("Init").Return(nil)
	m.On("SetHint", mock.Anything, mock.Anything).Return(false)
	m.On("PrimaryVideoMode").Return(mode, nil)
	m.On("CreateWindow", mock.Anything).Return(native, nil)
	m.On("Terminate").Return()
	return m
}

func (m *MockBackend) Init() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockBackend) SetHint(hint window.Hint, enabled bool) bool {
	args := m.Called(hint, enabled)
	return args.Bool(0)
}

func (m *MockBackend) PrimaryVideoMode() (window.VideoMode, error) {
	args := m.Called()
	return args.Get(0).(window.VideoMode), args.Error(1)
}

func (m *MockBackend) CreateWindow(spec window.CreateSpec) (window.NativeWindow, error) {
	args := m.Called(spec)
	native, _ := args.Get(0).(window.NativeWindow)
	return native, args.Error(1)
}

func (m *MockBackend) Terminate() {
	m.Called()
}

// MockNativeWindow is a mock implementation of window.NativeWindow.
type MockNativeWindow struct {
	mock.Mock
}

// NewMockNativeWindow returns a native window accepting every call, reporting
// width x height as its size.
func NewMockNativeWindow(width, height int) *MockNativeWindow {
	m := &MockNativeWindow{}
	m.On("Show").Return()
	m.On("SetTitle", mock.Anything).Return()
	m.On("SetIcon", mock.Anything).Return()
	m.On("Size").Return(width, height)
	m.On("Destroy").Return()
	return m
}

func (m *MockNativeWindow) Show() {
	m.Called()
}

func (m *MockNativeWindow) SetTitle(title string) {
	m.Called(title)
}

func (m *MockNativeWindow) SetIcon(images []image.Image) {
	m.Called(images)
}

func (m *MockNativeWindow) Size() (int, int) {
	args := m.Called()
	return args.Int(0), args.Int(1)
}

func (m *MockNativeWindow) Destroy() {
	m.Called()
}
