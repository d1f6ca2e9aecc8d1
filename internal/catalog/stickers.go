package catalog

import "earthwords/internal/models"

type stickerUnit struct {
	ID       string
	Stickers []models.StickerTemplate
}

var defaultStickerUnits = []stickerUnit{
	{
		ID: "earth-unit",
		Stickers: []models.StickerTemplate{
			{ID: "crust", Name: "Crust", Chapter: "earth-layers", Image: "🪨"},
			{ID: "mantle", Name: "Mantle", Chapter: "earth-layers", Image: "🔥"},
			{ID: "core", Name: "Core", Chapter: "earth-layers", Image: "⚪"},
			{ID: "magma", Name: "Magma", Chapter: "earth-layers", Image: "🌡️"},
			{ID: "volcano", Name: "Volcano", Chapter: "earth-layers", Image: "🌋"},
			{ID: "erupt", Name: "Eruption", Chapter: "earth-layers", Image: "💥"},

			{ID: "hydrosphere", Name: "Hydrosphere", Chapter: "earth-geography", Image: "💧"},
			{ID: "atmosphere", Name: "Atmosphere", Chapter: "earth-geography", Image: "☁️"},
			{ID: "lithosphere", Name: "Lithosphere", Chapter: "earth-geography", Image: "🏞️"},
			{ID: "longitude", Name: "Longitude", Chapter: "earth-geography", Image: "🧭"},
			{ID: "latitude", Name: "Latitude", Chapter: "earth-geography", Image: "🌐"},
			{ID: "horizon", Name: "Horizon", Chapter: "earth-geography", Image: "🌅"},
			{ID: "altitude", Name: "Altitude", Chapter: "earth-geography", Image: "⛰️"},
		},
	},
	{
		ID: "animals-unit",
		Stickers: []models.StickerTemplate{
			{ID: "mammal", Name: "Mammal", Chapter: "animals", Image: "🐘"},
			{ID: "reptile", Name: "Reptile", Chapter: "animals", Image: "🦎"},
			{ID: "bird", Name: "Bird", Chapter: "animals", Image: "🦜"},
			{ID: "fish", Name: "Fish", Chapter: "animals", Image: "🐠"},
		},
	},
}
