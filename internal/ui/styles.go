// Package ui provides the visual styling for the addressbook interactive CLI.
package ui

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the current color scheme
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Error   lipgloss.Color
	IsDark  bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Primary: lipgloss.Color("#101F38"),
		Accent:  lipgloss.Color("#2E7D32"),
		Error:   lipgloss.Color("#e53935"),
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Primary: lipgloss.Color("#8BC34A"),
		Accent:  lipgloss.Color("#4db6ac"),
		Error:   lipgloss.Color("#ff8a65"),
		IsDark:  true,
	}
}

// ThemeNamed returns the light or dark theme by name and detects one otherwise.
func ThemeNamed(name string) Theme {
	switch strings.ToLower(name) {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	}
	return DetectTheme()
}

// DetectTheme reads COLORFGBG ("fg;bg"); ANSI backgrounds 0-6 and 8 are dark.
func DetectTheme() Theme {
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	if len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}
	return LightTheme()
}

// Styles renders session text. A plain Styles returns text unchanged.
type Styles struct {
	plain bool

	banner lipgloss.Style
	prompt lipgloss.Style
	reply  lipgloss.Style
	err    lipgloss.Style
}

// NewStyles binds styles to w, so color is dropped automatically when w is
// not a terminal.
func NewStyles(w io.Writer, theme Theme) *Styles {
	r := lipgloss.NewRenderer(w)
	return &Styles{
		banner: r.NewStyle().Foreground(theme.Primary).Bold(true),
		prompt: r.NewStyle().Foreground(theme.Accent).Bold(true),
		reply:  r.NewStyle(),
		err:    r.NewStyle().Foreground(theme.Error),
	}
}

// Plain returns styles that never emit escape sequences.
func Plain() *Styles {
	return &Styles{plain: true}
}

type role int

const (
	roleBanner role = iota
	rolePrompt
	roleReply
	roleError
)

// render is safe on a nil receiver; fields are only read after the check.
func (s *Styles) render(r role, text string) string {
	if s == nil || s.plain {
		return text
	}
	var st lipgloss.Style
	switch r {
	case roleBanner:
		st = s.banner
	case rolePrompt:
		st = s.prompt
	case roleError:
		st = s.err
	default:
		st = s.reply
	}
	return st.Render(text)
}

func (s *Styles) Banner(text string) string { return s.render(roleBanner, text) }
func (s *Styles) Prompt(text string) string { return s.render(rolePrompt, text) }
func (s *Styles) Reply(text string) string  { return s.render(roleReply, text) }
func (s *Styles) Error(text string) string  { return s.render(roleError, text) }
