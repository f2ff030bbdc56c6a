// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for the showcase screen, top to bottom.
const (
	// HeaderHeight is the title line plus the position counter line.
	HeaderHeight = 2

	// DotsHeight is the indicator row under the track.
	DotsHeight = 1

	// CaptionHeight is the product title, subtitle and price block.
	CaptionHeight = 3

	// HelpHeight is the key help line.
	HelpHeight = 1

	// Chrome is the vertical space taken by everything but the cards.
	Chrome = HeaderHeight + DotsHeight + CaptionHeight + HelpHeight + 2

	// TrackMargin is the horizontal space left on each side of the track.
	TrackMargin = 1

	// MaxDots is the most indicators drawn before switching to a counter.
	MaxDots = 24
)

// TrackWidth returns the width available to the carousel track.
func TrackWidth(windowWidth int) int {
	return max(windowWidth-2*TrackMargin, 0)
}
