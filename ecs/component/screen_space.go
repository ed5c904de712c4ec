package component

// ScreenSpace marks HUD entities drawn after the world layers.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
