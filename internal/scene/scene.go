// Package scene implements the sticker scene: placing unlocked stickers into a
// unit's scene and moving, scaling, duplicating and removing them.
//
// Every operation is total. Unknown keys, nothing armed, or pointer events
// outside a drag leave the state unchanged. Mutations are persisted as one
// blob holding the scenes of all units.
package scene

import (
	"errors"
	"fmt"
	"log"
	"math"
	"slices"

	"earthwords/internal/models"
	"earthwords/internal/notify"
	"earthwords/internal/storage"

	"github.com/google/uuid"
)

// ErrUnknownUnit is returned for a unit that is not in the sticker book
var ErrUnknownUnit = errors.New("unknown sticker unit")

const (
	MinScale        = 0.5
	MaxScale        = 3.0
	DefaultPosition = 50.0
	DuplicateOffset = 5.0
)

// Catalog is the sticker book the scene draws templates from
type Catalog interface {
	Units() []string
	HasUnit(unit string) bool
	Stickers(unit string) []models.StickerTemplate
	Sticker(unit, id string) (models.StickerTemplate, bool)
}

// Unlocks reports which templates the learner may place
type Unlocks interface {
	IsUnlocked(id string) bool
}

// Model is one learner's sticker scene. It is not safe for concurrent use.
type Model struct {
	store   storage.Store
	catalog Catalog
	unlocks Unlocks
	sink    notify.Sink
	newKey  func(templateID string) string

	unit     string
	scenes   models.SceneMap
	armed    string
	editing  string
	dragging string
	moved    bool
}

// New loads the persisted scenes and opens unit. An unknown unit falls back
// to the first unit of the catalog.
func New(store storage.Store, cat Catalog, unlocks Unlocks, sink notify.Sink, unit string) *Model {
	if sink == nil {
		sink = notify.Discard
	}
	m := &Model{
		store:   store,
		catalog: cat,
		unlocks: unlocks,
		sink:    sink,
		newKey:  func(id string) string { return fmt.Sprintf("%s-%s", id, uuid.NewString()) },
	}

	scenes := models.SceneMap{}
	if !storage.Load(store, storage.KeyPlacedStickers, &scenes) || scenes == nil {
		scenes = models.SceneMap{}
	}
	for _, u := range cat.Units() {
		if _, ok := scenes[u]; !ok {
			scenes[u] = []models.PlacedSticker{}
		}
	}
	m.scenes = scenes

	if !cat.HasUnit(unit) {
		if units := cat.Units(); len(units) > 0 {
			unit = units[0]
		}
	}
	m.unit = unit
	return m
}

// Unit returns the active unit
func (m *Model) Unit() string { return m.unit }

// Armed returns the template armed for placement, or ""
func (m *Model) Armed() string { return m.armed }

// Editing returns the key of the sticker being edited, or ""
func (m *Model) Editing() string { return m.editing }

// Dragging returns the key of the drag target, or ""
func (m *Model) Dragging() string { return m.dragging }

// SelectUnit switches the active unit, clearing selection and edit state.
// It returns false for an unknown unit.
func (m *Model) SelectUnit(unit string) bool {
	if !m.catalog.HasUnit(unit) {
		return false
	}
	if unit != m.unit {
		m.unit = unit
		m.armed = ""
		m.editing = ""
		m.dragging = ""
		m.moved = false
	}
	return true
}

// SelectTemplate toggles which unlocked template is armed for placement
func (m *Model) SelectTemplate(templateID string) {
	if _, ok := m.catalog.Sticker(m.unit, templateID); !ok {
		return
	}
	if !m.unlocks.IsUnlocked(templateID) {
		return
	}
	if m.armed == templateID {
		m.armed = ""
		return
	}
	m.armed = templateID
}

// PlaceSelected adds the armed template to the centre of the scene
func (m *Model) PlaceSelected() (models.PlacedSticker, bool) {
	if m.armed == "" {
		return models.PlacedSticker{}, false
	}
	tmpl, ok := m.catalog.Sticker(m.unit, m.armed)
	if !ok || !m.unlocks.IsUnlocked(tmpl.ID) {
		return models.PlacedSticker{}, false
	}

	placed := models.PlacedSticker{
		ID:    tmpl.ID,
		X:     DefaultPosition,
		Y:     DefaultPosition,
		Image: tmpl.Image,
		Scale: 1,
		Key:   m.uniqueKey(tmpl.ID),
	}
	m.scenes[m.unit] = append(m.scenes[m.unit], placed)

	m.sink.Notify(notify.Notification{
		Kind:        notify.KindSuccess,
		Title:       "Sticker placed!",
		Description: fmt.Sprintf("%s sticker has been added to your scene.", tmpl.Name),
	})
	m.persist()
	return placed, true
}

// BeginDrag makes key the sticker being edited and the target of the drag
func (m *Model) BeginDrag(key string) {
	if m.index(key) < 0 {
		return
	}
	m.editing = key
	m.dragging = key
	m.moved = false
}

// ContinueDrag moves the drag target to the pointer, expressed as a
// percentage of bounds. Events for any other sticker are ignored.
func (m *Model) ContinueDrag(key string, pointer models.Position, bounds models.Bounds) {
	if m.dragging == "" || key != m.dragging {
		return
	}
	i := m.index(key)
	if i < 0 {
		return
	}
	pos, ok := bounds.Percent(pointer)
	if !ok {
		return
	}
	stickers := m.scenes[m.unit]
	stickers[i].X = pos.X
	stickers[i].Y = pos.Y
	m.moved = true
}

// EndDrag finishes the gesture and persists the final position.
// The sticker stays in edit mode.
func (m *Model) EndDrag() {
	if m.dragging == "" {
		return
	}
	m.dragging = ""
	if m.moved {
		m.moved = false
		m.persist()
	}
}

// Edit puts key into edit mode without starting a drag
func (m *Model) Edit(key string) {
	if m.index(key) >= 0 {
		m.editing = key
	}
}

// Deselect leaves edit mode
func (m *Model) Deselect() {
	m.editing = ""
	m.dragging = ""
	m.moved = false
}

// Scale adds delta to the sticker's scale, clamped to [MinScale, MaxScale]
func (m *Model) Scale(key string, delta float64) {
	i := m.index(key)
	if i < 0 {
		return
	}
	stickers := m.scenes[m.unit]
	stickers[i].Scale = clampScale(stickers[i].Scale + delta)
	m.persist()
}

// Duplicate places a copy of key offset down and to the right
func (m *Model) Duplicate(key string) (models.PlacedSticker, bool) {
	i := m.index(key)
	if i < 0 {
		return models.PlacedSticker{}, false
	}
	source := m.scenes[m.unit][i]
	dup := source
	dup.X += DuplicateOffset
	dup.Y += DuplicateOffset
	dup.Key = m.uniqueKey(source.ID)
	m.scenes[m.unit] = append(m.scenes[m.unit], dup)

	m.sink.Notify(notify.Notification{
		Kind:        notify.KindSuccess,
		Title:       "Sticker duplicated",
		Description: "A copy of the sticker has been created.",
	})
	m.persist()
	return dup, true
}

// Remove deletes key from the scene
func (m *Model) Remove(key string) {
	i := m.index(key)
	if i < 0 {
		return
	}
	m.scenes[m.unit] = slices.Delete(m.scenes[m.unit], i, i+1)
	if m.editing == key {
		m.editing = ""
	}
	if m.dragging == key {
		m.dragging = ""
		m.moved = false
	}
	m.persist()
}

// Save writes every unit's scene to storage
func (m *Model) Save() error {
	if err := storage.Save(m.store, storage.KeyPlacedStickers, m.scenes); err != nil {
		return err
	}
	m.sink.Notify(notify.Notification{
		Kind:        notify.KindSuccess,
		Title:       "Scene saved!",
		Description: "Your sticker scene has been saved successfully.",
	})
	return nil
}

// Stickers returns the active unit's stickers in drawing order. The sticker
// being edited is always drawn last.
func (m *Model) Stickers() []models.PlacedSticker {
	current := m.scenes[m.unit]
	out := make([]models.PlacedSticker, 0, len(current))
	var editing *models.PlacedSticker
	for i := range current {
		if current[i].Key == m.editing {
			editing = &current[i]
			continue
		}
		out = append(out, current[i])
	}
	if editing != nil {
		out = append(out, *editing)
	}
	return out
}

// Scenes returns a copy of all units' stickers in insertion order
func (m *Model) Scenes() models.SceneMap {
	return m.scenes.Clone()
}

func (m *Model) index(key string) int {
	if key == "" {
		return -1
	}
	return slices.IndexFunc(m.scenes[m.unit], func(p models.PlacedSticker) bool { return p.Key == key })
}

// uniqueKey retries until the generated key is unused in every unit
func (m *Model) uniqueKey(templateID string) string {
	for {
		key := m.newKey(templateID)
		if !m.keyInUse(key) {
			return key
		}
	}
}

func (m *Model) keyInUse(key string) bool {
	for _, stickers := range m.scenes {
		for _, p := range stickers {
			if p.Key == key {
				return true
			}
		}
	}
	return false
}

func (m *Model) persist() {
	if err := storage.Save(m.store, storage.KeyPlacedStickers, m.scenes); err != nil {
		log.Printf("Failed to persist sticker scene: %v", err)
	}
}

func clampScale(s float64) float64 {
	return math.Max(MinScale, math.Min(MaxScale, s))
}
