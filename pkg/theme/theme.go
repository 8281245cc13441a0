// Package theme provides the minimal set of visual tokens the toolkit
// renders with. It deliberately stays small: headless widgets carry
// behavior, not appearance.
package theme

import "github.com/yuta-ike/headlessui/pkg/backend"

// Theme defines the visual tokens widgets render with.
type Theme struct {
	Background backend.Style // Base canvas
	Surface    backend.Style // Elevated surfaces (dialogs, panels)

	TextPrimary backend.Style // Main content
	TextMuted   backend.Style // Hints, placeholders

	Accent backend.Style // Focused/active elements

	Border      backend.Style
	BorderFocus backend.Style

	Success backend.Style
	Error   backend.Style
}

// Default returns the default theme.
func Default() *Theme {
	return &Theme{
		Background:  backend.DefaultStyle(),
		Surface:     backend.DefaultStyle().Background(backend.ColorBlack),
		TextPrimary: backend.DefaultStyle(),
		TextMuted:   backend.DefaultStyle().Dim(true),
		Accent:      backend.DefaultStyle().Foreground(backend.ColorCyan).Bold(true),
		Border:      backend.DefaultStyle().Foreground(backend.ColorBrightBlack),
		BorderFocus: backend.DefaultStyle().Foreground(backend.ColorCyan),
		Success:     backend.DefaultStyle().Foreground(backend.ColorGreen),
		Error:       backend.DefaultStyle().Foreground(backend.ColorRed),
	}
}
