// Package branding holds the product's fixed identity strings and colors.
package branding

// AppName is the display name used in titles and the footer.
const AppName = "Innovasmart"

// Wordmark halves; the accent half is rendered in AccentColor.
const (
	WordmarkLead   = "INNOVA"
	WordmarkAccent = "SMART"
)

const (
	// AccentColor is the brand yellow.
	AccentColor = "#FFD700"
	// BaseColor is the page background.
	BaseColor = "#0A0A0A"
)

// CopyrightYear is printed in the footer.
const CopyrightYear = 2026
