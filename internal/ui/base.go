package ui

// Base provides size management for components that lay themselves out
// inside the terminal window. Embed it in component models.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    carousel carousel.Model[catalog.Product]
//	}
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Narrow reports whether the component is narrower than threshold.
func (b Base) Narrow(threshold int) bool {
	return b.width < threshold
}
