package tui

// Color constants for the coursereg TUI theme
const (
	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#B1B8C7" // Secondary text - subtle purple-tinted grey
	ColorPlaceholder   = "#B1B8C7" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Titles, active borders
	ColorAccentBright = "#A78BFA" // Highlights, focused field

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
)
