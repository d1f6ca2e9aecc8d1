package scene

import "earthwords/internal/models"

// BookEntry is one template in the sticker book
type BookEntry struct {
	models.StickerTemplate
	Unlocked bool `json:"unlocked"`
	Armed    bool `json:"armed"`
}

// View is the render state of the scene and the sticker book below it
type View struct {
	Unit      string                 `json:"unit"`
	Units     []string               `json:"units"`
	Armed     string                 `json:"armed,omitempty"`
	Editing   string                 `json:"editing,omitempty"`
	Dragging  bool                   `json:"dragging"`
	Stickers  []models.PlacedSticker `json:"stickers"`
	Book      []BookEntry            `json:"book"`
	Collected int                    `json:"collected"`
	Total     int                    `json:"total"`
}

// View builds the render state for the active unit
func (m *Model) View() View {
	v := View{
		Unit:     m.unit,
		Units:    m.catalog.Units(),
		Armed:    m.armed,
		Editing:  m.editing,
		Dragging: m.dragging != "",
		Stickers: m.Stickers(),
		Book:     []BookEntry{},
	}

	for _, tmpl := range m.catalog.Stickers(m.unit) {
		v.Book = append(v.Book, BookEntry{
			StickerTemplate: tmpl,
			Unlocked:        m.unlocks.IsUnlocked(tmpl.ID),
			Armed:           tmpl.ID == m.armed,
		})
	}
	v.Collected, v.Total = Collected(m.catalog, m.unlocks)
	return v
}

// Collected counts unlocked templates across all units
func Collected(cat Catalog, unlocks Unlocks) (collected, total int) {
	for _, unit := range cat.Units() {
		for _, tmpl := range cat.Stickers(unit) {
			total++
			if unlocks.IsUnlocked(tmpl.ID) {
				collected++
			}
		}
	}
	return collected, total
}
