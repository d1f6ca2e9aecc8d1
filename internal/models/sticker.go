package models

// Position is a point expressed as percentages of the scene's bounding box
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is the on-screen rectangle of a scene, in pixels
type Bounds struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Percent converts an absolute pointer location into a position relative to b.
// Points outside the rectangle produce values below 0 or above 100.
func (b Bounds) Percent(pointer Position) (Position, bool) {
	if b.Width <= 0 || b.Height <= 0 {
		return Position{}, false
	}
	return Position{
		X: (pointer.X - b.Left) / b.Width * 100,
		Y: (pointer.Y - b.Top) / b.Height * 100,
	}, true
}

// PlacedSticker is one instance of a sticker template placed into a scene.
// ID names the template; Key identifies this placement.
type PlacedSticker struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Image string  `json:"image"`
	Scale float64 `json:"scale"`
	Key   string  `json:"key"`
}

// SceneMap holds the placed stickers of every unit, in z-order
type SceneMap map[string][]PlacedSticker

// Clone returns a deep copy of the map
func (m SceneMap) Clone() SceneMap {
	out := make(SceneMap, len(m))
	for unit, stickers := range m {
		copied := make([]PlacedSticker, len(stickers))
		copy(copied, stickers)
		out[unit] = copied
	}
	return out
}

// StickerTemplate is a catalog sticker that can be placed once unlocked
type StickerTemplate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Chapter string `json:"chapter"`
	Image   string `json:"image"`
}
