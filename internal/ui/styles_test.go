package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainStylesPassThrough(t *testing.T) {
	s := Plain()
	assert.Equal(t, "Enter a command: ", s.Prompt("Enter a command: "))
	assert.Equal(t, "Invalid command.", s.Error("Invalid command."))

	var nilStyles *Styles
	assert.Equal(t, "x", nilStyles.Reply("x"))
	assert.Equal(t, "x", nilStyles.Banner("x"))
	assert.Equal(t, "x", nilStyles.Prompt("x"))
	assert.Equal(t, "x", nilStyles.Error("x"))
}

func TestStylesKeepTextOnNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyles(&buf, LightTheme())
	assert.Contains(t, s.Banner("Welcome to the assistant bot!"), "Welcome to the assistant bot!")
	assert.Contains(t, s.Error("Invalid command."), "Invalid command.")
}

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "")
	assert.False(t, DetectTheme().IsDark)
}

func TestThemeNamed(t *testing.T) {
	assert.True(t, ThemeNamed("dark").IsDark)
	assert.False(t, ThemeNamed("LIGHT").IsDark)
}
