// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal   = lipgloss.Color("#14B8A6")
	Slate  = lipgloss.Color("#667085")
	Ink    = lipgloss.Color("#0B0F19")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Shared styles for the capability listing and daemon status output.
var (
	// Header renders artifact paths and section headers.
	Header = lipgloss.NewStyle().Bold(true).Foreground(Teal)

	// MacroName renders a capability name.
	MacroName = lipgloss.NewStyle().Bold(true)

	// MacroKind renders a capability kind tag.
	MacroKind = lipgloss.NewStyle().Foreground(Slate)

	// StatusGood renders healthy status values.
	StatusGood = lipgloss.NewStyle().Foreground(Green)

	// StatusBad renders unhealthy status values.
	StatusBad = lipgloss.NewStyle().Foreground(Red)
)
