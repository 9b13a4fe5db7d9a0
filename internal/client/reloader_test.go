package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloadTarget(t *testing.T) {
	now := time.UnixMilli(1760572800123)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "Nested index.html", path: "/foo/index.html", expected: "/foo/?_=1760572800123"},
		{name: "Root index.html", path: "/index.html", expected: "/?_=1760572800123"},
		{name: "Root", path: "/", expected: "/?_=1760572800123"},
		{name: "Empty path", path: "", expected: "/?_=1760572800123"},
		{name: "Bare index.html", path: "index.html", expected: "/?_=1760572800123"},
		{name: "Other file", path: "/foo/about.html", expected: "/foo/about.html?_=1760572800123"},
		{name: "Directory", path: "/foo/", expected: "/foo/?_=1760572800123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReloadTarget(tt.path, now))
		})
	}
}

// TestReload_ReplacesHistory проверяет замену записи истории вместо добавления
func TestReload_ReplacesHistory(t *testing.T) {
	// Arrange
	navigator := &fakeNavigator{path: "/foo/index.html"}
	reloader := NewReloader(navigator)
	reloader.now = func() time.Time { return time.UnixMilli(42) }
	event := &fakeEvent{}

	// Act
	reloader.Reload(event)

	// Assert
	assert.True(t, event.prevented)
	require.Len(t, navigator.replaced, 1)
	assert.Equal(t, "/foo/?_=42", navigator.replaced[0])
	assert.Empty(t, navigator.pushed)
}

func TestReload_WithoutEvent(t *testing.T) {
	navigator := &fakeNavigator{path: "/"}
	reloader := NewReloader(navigator)

	assert.NotPanics(t, func() { reloader.Reload(nil) })
	require.Len(t, navigator.replaced, 1)
	assert.Regexp(t, `^/\?_=\d+$`, navigator.replaced[0])
}

func TestReload_FreshParameterEachTime(t *testing.T) {
	navigator := &fakeNavigator{path: "/"}
	reloader := NewReloader(navigator)
	tick := int64(0)
	reloader.now = func() time.Time {
		tick++
		return time.UnixMilli(tick)
	}

	reloader.Reload(nil)
	reloader.Reload(nil)

	require.Len(t, navigator.replaced, 2)
	assert.NotEqual(t, navigator.replaced[0], navigator.replaced[1])
}
