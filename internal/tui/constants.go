package tui

// UI Layout Constants

const (
	// Modal Dimensions
	ModalHeightMarginSmall = 2 // Small vertical margin (m.height - 2)

	// Viewport Padding and Borders
	ViewportPaddingHorizontal = 4 // Horizontal padding (left + right)

	// Modal Content Calculations
	ModalOverheadLines   = 6 // Title (2) + padding (2) + border (2)
	ModalOverheadMinimal = 4 // Border + title for minimal modals

	// Main view
	HeaderLines    = 2 // Title + blank line
	StatusBarLines = 1
	TableBorder    = 4 // Top, header separator, bottom and header row

	// Split View Ratios
	BCCListWidthRatio = 0.6 // Test list gets 60%, details 40%

	// Text input
	EditModalWidth  = 64
	EditModalHeight = 12
)
