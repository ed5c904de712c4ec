package component

// Scrollable marks world content translated by the scroll lock.
type Scrollable struct{}

var ScrollableComponent = NewComponent[Scrollable]()

// Background is the tiled backdrop. TileOffsetX moves opposite to the
// scrolled content.
type Background struct {
	Key         string
	TileOffsetX float64
}

var BackgroundComponent = NewComponent[Background]()
