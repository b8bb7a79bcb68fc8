// Package tui provides the terminal user interface for Stockroom.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stockroom/stockroom/internal/config"
)

// Theme contains the style definitions for the TUI.
type Theme struct {
	PrimaryColor    lipgloss.Color
	SecondaryColor  lipgloss.Color
	AccentColor     lipgloss.Color
	BackgroundColor lipgloss.Color
	MutedColor      lipgloss.Color
	ErrorColor      lipgloss.Color
	WarningColor    lipgloss.Color
	SuccessColor    lipgloss.Color

	Base      lipgloss.Style
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Box      lipgloss.Style
	Selected lipgloss.Style
	Focused  lipgloss.Style

	NoticeInfo lipgloss.Style
	NoticeWarn lipgloss.Style
	NoticeCrit lipgloss.Style

	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableRowAlt lipgloss.Style

	StatusDivider lipgloss.Style
}

// NewTheme creates a theme for the configured color scheme.
func NewTheme(scheme config.ColorScheme) *Theme {
	switch scheme {
	case config.ColorSchemeAmber:
		return buildTheme(palette{
			primary:   "#FFAA00",
			secondary: "#AA7700",
			accent:    "#FFCC66",
			muted:     "#664400",
			warning:   "#FFFF00",
			success:   "#FFAA00",
		})
	case config.ColorSchemeWhite:
		return buildTheme(palette{
			primary:   "#FFFFFF",
			secondary: "#AAAAAA",
			accent:    "#FFFFFF",
			muted:     "#666666",
			warning:   "#FFAA00",
			success:   "#00FF00",
		})
	default:
		// Classic green phosphor.
		return buildTheme(palette{
			primary:   "#00FF00",
			secondary: "#00AA00",
			accent:    "#66FF66",
			muted:     "#006600",
			warning:   "#FFAA00",
			success:   "#00FF00",
		})
	}
}

type palette struct {
	primary   string
	secondary string
	accent    string
	muted     string
	warning   string
	success   string
}

func buildTheme(p palette) *Theme {
	primary := lipgloss.Color(p.primary)
	secondary := lipgloss.Color(p.secondary)
	accent := lipgloss.Color(p.accent)
	background := lipgloss.Color("#000000")
	muted := lipgloss.Color(p.muted)
	errorColor := lipgloss.Color("#FF4444")
	warningColor := lipgloss.Color(p.warning)
	successColor := lipgloss.Color(p.success)

	t := &Theme{
		PrimaryColor:    primary,
		SecondaryColor:  secondary,
		AccentColor:     accent,
		BackgroundColor: background,
		MutedColor:      muted,
		ErrorColor:      errorColor,
		WarningColor:    warningColor,
		SuccessColor:    successColor,
	}

	t.Base = lipgloss.NewStyle().Foreground(primary)
	t.Primary = lipgloss.NewStyle().Foreground(primary)
	t.Secondary = lipgloss.NewStyle().Foreground(secondary)
	t.Accent = lipgloss.NewStyle().Foreground(accent)
	t.Error = lipgloss.NewStyle().Foreground(errorColor)
	t.Warning = lipgloss.NewStyle().Foreground(warningColor)
	t.Success = lipgloss.NewStyle().Foreground(successColor)
	t.Muted = lipgloss.NewStyle().Foreground(muted)

	t.Header = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true).
		Padding(0, 1)

	t.Footer = lipgloss.NewStyle().
		Foreground(secondary).
		Padding(0, 1)

	t.Title = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 1)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(primary).
		Padding(0, 1)

	t.Label = lipgloss.NewStyle().Foreground(secondary)
	t.Value = lipgloss.NewStyle().Foreground(primary)

	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondary).
		Padding(0, 1)

	t.Selected = lipgloss.NewStyle().
		Foreground(background).
		Background(primary).
		Bold(true)

	t.Focused = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.NoticeInfo = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)

	t.NoticeWarn = lipgloss.NewStyle().
		Foreground(warningColor).
		Bold(true)

	t.NoticeCrit = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true).
		Blink(true)

	t.TableHeader = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 1)

	t.TableRow = lipgloss.NewStyle().
		Foreground(primary).
		Padding(0, 1)

	t.TableRowAlt = lipgloss.NewStyle().
		Foreground(secondary).
		Padding(0, 1)

	t.StatusDivider = lipgloss.NewStyle().
		Foreground(muted).
		SetString(" │ ")

	return t
}

// DrawHorizontalLine draws a single horizontal rule.
func (t *Theme) DrawHorizontalLine(width int) string {
	return t.Secondary.Render(strings.Repeat("─", width))
}

// DrawDoubleLine draws a double horizontal rule.
func (t *Theme) DrawDoubleLine(width int) string {
	return t.Primary.Render(strings.Repeat("═", width))
}
