package styles

import "github.com/charmbracelet/lipgloss"

// Common border styles
var (
	// BorderNormal is the standard border for most UI elements
	BorderNormal = lipgloss.NormalBorder()

	// BorderRounded is used for panels and dialogs
	BorderRounded = lipgloss.RoundedBorder()
)

// Buffer view styles
var (
	// BufferStyle wraps the simulated text buffer
	BufferStyle = lipgloss.NewStyle().
			Border(BorderRounded).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// LineNumberStyle is for the gutter
	LineNumberStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// CurrentLineNumberStyle is for the gutter of the cursor row
	CurrentLineNumberStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	// CursorStyle highlights the character under the cursor
	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorCursorFg).
			Background(ColorCursorBg)

	// MarkerStyle is for the above-top / below-bottom cursor markers
	MarkerStyle = lipgloss.NewStyle().
			Foreground(ColorHint).
			Italic(true)
)

// Question banner styles
var (
	// BannerStyle wraps the current prompt
	BannerStyle = lipgloss.NewStyle().
			Border(BorderRounded).
			BorderForeground(ColorAccent).
			Padding(0, 2)

	// PromptStyle is for the question text
	PromptStyle = lipgloss.NewStyle().
			Bold(true)

	// CounterStyle is for "Question 3/19"
	CounterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Input styles
var (
	// InputStyle wraps the command input line
	InputStyle = lipgloss.NewStyle().
			Border(BorderNormal).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// InputPromptStyle is for the ":" prompt
	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)
)

// Table styles
var (
	// TableBorderStyle wraps the leaderboard table
	TableBorderStyle = lipgloss.NewStyle().
				Border(BorderNormal).
				BorderForeground(ColorBorder)

	// TableHeaderStyle is for table column headers
	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(BorderNormal).
				BorderForeground(ColorBorder).
				BorderBottom(true).
				Bold(false)

	// TableSelectedStyle is for the selected row
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorSelectedFg).
				Background(ColorSelectedBg).
				Bold(false)
)

// Status bar styles
var (
	// StatusBarStyle wraps the status bar
	StatusBarStyle = lipgloss.NewStyle().
			Border(BorderNormal).
			BorderForeground(ColorBorder)

	// StatusTitleStyle is for the player name
	StatusTitleStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	// StatusValueStyle is for score and timer values
	StatusValueStyle = lipgloss.NewStyle().
				Bold(true)
)

// Footer styles
var (
	// FooterStyle wraps the footer
	FooterStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// FooterHintStyle is for keyboard hints
	FooterHintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Dialog styles
var (
	// DialogStyle wraps the game over and welcome dialogs
	DialogStyle = lipgloss.NewStyle().
			Border(BorderRounded).
			BorderForeground(ColorAccent).
			Padding(1, 2)

	// DialogTitleStyle is for dialog titles
	DialogTitleStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true).
				Align(lipgloss.Center)
)

// Message styles
var (
	// SuccessStyle is for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// WarningStyle is for warning messages
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Help overlay styles
var (
	// HelpStyle wraps the help overlay
	HelpStyle = lipgloss.NewStyle().
			Border(BorderRounded).
			BorderForeground(ColorAccent).
			Padding(1, 2)

	// HelpKeyStyle is for keyboard shortcuts
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	// HelpDescStyle is for shortcut descriptions
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Common UI styles
var (
	// TitleStyle is for section titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// HeaderStyle is for section headers
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginTop(1)

	// AccentStyle is for accented text
	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	// MutedStyle is for muted/secondary text
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
