package catalog

import "earthwords/internal/models"

var defaultStages = []models.Stage{
	{Title: "Recognition", Description: "Learn the meaning and pronunciation"},
	{Title: "Understanding", Description: "Understand the word in context"},
	{Title: "Practice", Description: "Practice using the word"},
	{Title: "Mastery", Description: "Master complex expressions"},
}

var defaultChapterWords = map[Chapter][]string{
	ChapterEarthLayers: {
		"crust", "mantle", "core", "magma", "tectonic plates", "volcano", "erupt",
	},
	ChapterEarthGeography: {
		"hydrosphere", "atmosphere", "lithosphere", "longitude", "latitude", "horizon", "altitude",
	},
}

var defaultWords = []models.Word{
	{
		Word:         "crust",
		Translation:  "地壳",
		PartOfSpeech: "noun",
		Phonetic:     "/krʌst/",
		Meaning:      "The outermost layer of the Earth.",
		Example:      "The Earth's crust is the outermost layer.",
		Image:        "🪨",
		RelatedWords: []string{"mantle", "core", "lithosphere"},
		Sentences: []string{
			"The Earth's crust varies in thickness.",
			"Continental crust is thicker than oceanic crust.",
			"Earthquakes occur when there's movement in the crust.",
		},
		MediaExamples: []models.MediaExample{
			{Type: "video", Source: "National Geographic", Description: "Clip from 'Inside Earth' documentary", URL: "https://example.com/earth-crust-video"},
			{Type: "audio", Source: "Earth Science Audiobook", Description: "Chapter on Earth's Structure", URL: "https://example.com/earth-layers-audio"},
		},
	},
	{
		Word:         "mantle",
		Translation:  "地幔",
		PartOfSpeech: "noun",
		Phonetic:     "/ˈmæn.təl/",
		Meaning:      "The layer of the Earth between the crust and the core.",
		Example:      "The mantle makes up about 84% of Earth's volume.",
		Image:        "🔥",
		RelatedWords: []string{"crust", "core", "magma"},
		Sentences: []string{
			"The mantle is mostly solid rock.",
			"Heat from the mantle causes plate movement.",
			"Scientists study the mantle to understand Earth's formation.",
		},
		MediaExamples: []models.MediaExample{
			{Type: "video", Source: "Discovery Channel", Description: "From 'Planet Earth' series", URL: "https://example.com/earth-mantle-video"},
			{Type: "audio", Source: "Geology Podcast", Description: "Episode on Earth's Interior", URL: "https://example.com/mantle-podcast"},
		},
	},
	{
		Word:         "core",
		Translation:  "地核",
		PartOfSpeech: "noun",
		Phonetic:     "/kɔːr/",
		Meaning:      "The central part of the Earth, beneath the mantle.",
		Example:      "The Earth's core is divided into an outer liquid core and an inner solid core.",
		Image:        "⚪",
		RelatedWords: []string{"crust", "mantle", "iron"},
		Sentences: []string{
			"The core is mainly composed of iron and nickel.",
			"The Earth's magnetic field is generated in the core.",
			"The temperature at the core is as hot as the surface of the Sun.",
		},
	},
	{
		Word:         "magma",
		Translation:  "岩浆",
		PartOfSpeech: "noun",
		Phonetic:     "/ˈmæɡ.mə/",
		Meaning:      "Hot fluid or semi-fluid material below or within the earth's crust from which lava is formed.",
		Example:      "Magma forms deep within the Earth.",
		Image:        "🌡️",
		RelatedWords: []string{"volcano", "lava", "erupt"},
		Sentences: []string{
			"Magma comes from deep inside the Earth.",
			"When magma reaches the surface, it becomes lava.",
			"The composition of magma affects the type of eruption.",
		},
	},
	{
		Word:         "tectonic plates",
		Translation:  "构造板块",
		PartOfSpeech: "noun",
		Phonetic:     "/tekˈtɒn.ɪk pleɪts/",
		Meaning:      "The large slabs of rock that make up the Earth's crust and upper mantle and move slowly over time.",
		Example:      "Earthquakes happen where tectonic plates meet.",
		Image:        "🧩",
		RelatedWords: []string{"crust", "mantle", "volcano"},
		Sentences: []string{
			"Tectonic plates move a few centimetres every year.",
			"Mountains form when tectonic plates collide.",
			"Many volcanoes sit on the edges of tectonic plates.",
		},
	},
	{
		Word:         "volcano",
		Translation:  "火山",
		PartOfSpeech: "noun",
		Phonetic:     "/vɒlˈkeɪnoʊ/",
		Meaning:      "A mountain or hill with a crater or vent through which lava, rock fragments, hot vapor, and gas are or have been erupted from the earth's crust.",
		Example:      "Mount Vesuvius is an active volcano.",
		Image:        "🌋",
		RelatedWords: []string{"erupt", "lava", "magma"},
		Sentences: []string{
			"There are over 1,500 active volcanoes worldwide.",
			"The volcano has been dormant for centuries.",
			"Living near an active volcano can be dangerous.",
		},
		MediaExamples: []models.MediaExample{
			{Type: "video", Source: "National Geographic", Description: "Eruption footage from Kilauea", URL: "https://example.com/volcano-video"},
			{Type: "audio", Source: "Volcanic Activity Podcast", Description: "Episode on Famous Eruptions", URL: "https://example.com/volcano-podcast"},
		},
	},
	{
		Word:         "erupt",
		Translation:  "爆发",
		PartOfSpeech: "verb",
		Phonetic:     "/ɪˈrʌpt/",
		Meaning:      "To suddenly burst out or break open, especially of a volcano sending out rocks, ash, lava, etc.",
		Example:      "The volcano could erupt at any moment.",
		Image:        "💥",
		RelatedWords: []string{"volcano", "lava", "magma"},
		Sentences: []string{
			"The volcano erupted violently last year.",
			"Scientists can predict when some volcanoes might erupt.",
			"When tensions erupt, conflict may follow.",
		},
	},
	{
		Word:         "hydrosphere",
		Translation:  "水圈",
		PartOfSpeech: "noun",
		Phonetic:     "/ˈhaɪ.drə.sfɪər/",
		Meaning:      "All the water on the Earth's surface, including oceans, lakes, rivers and ice.",
		Example:      "Most of the hydrosphere is salt water in the oceans.",
		Image:        "💧",
		RelatedWords: []string{"atmosphere", "lithosphere", "ocean"},
		Sentences: []string{
			"The hydrosphere covers about 71% of the planet.",
			"Glaciers are a frozen part of the hydrosphere.",
			"Water moves between the hydrosphere and the atmosphere.",
		},
	},
	{
		Word:         "atmosphere",
		Translation:  "大气层",
		PartOfSpeech: "noun",
		Phonetic:     "/ˈæt.mə.sfɪər/",
		Meaning:      "The layer of gases that surrounds the Earth.",
		Example:      "The atmosphere protects us from harmful radiation.",
		Image:        "☁️",
		RelatedWords: []string{"hydrosphere", "altitude", "climate"},
		Sentences: []string{
			"The atmosphere is mostly nitrogen and oxygen.",
			"Air becomes thinner higher up in the atmosphere.",
			"Clouds form in the lowest layer of the atmosphere.",
		},
	},
	{
		Word:         "lithosphere",
		Translation:  "岩石圈",
		PartOfSpeech: "noun",
		Phonetic:     "/ˈlɪθ.ə.sfɪər/",
		Meaning:      "The rigid outer part of the Earth, made of the crust and the upper mantle.",
		Example:      "The lithosphere is broken into tectonic plates.",
		Image:        "🏞️",
		RelatedWords: []string{"crust", "mantle", "hydrosphere"},
		Sentences: []string{
			"The lithosphere floats on a softer layer below it.",
			"Oceanic lithosphere is thinner than continental lithosphere.",
			"Soil forms at the top of the lithosphere.",
		},
	},
	{
		Word:         "longitude",
		Translation:  "经度",
		PartOfSpeech: "noun",
		Phonetic:     "/ˈlɒŋ.ɡɪ.tjuːd/",
		Meaning:      "The distance of a place east or west of the Prime Meridian, measured in degrees.",
		Example:      "Greenwich has a longitude of zero degrees.",
		Image:        "🧭",
		RelatedWords: []string{"latitude", "meridian", "map"},
		Sentences: []string{
			"Lines of longitude run from pole to pole.",
			"Sailors once struggled to measure longitude at sea.",
			"Time zones are roughly based on longitude.",
		},
	},
	{
		Word:         "latitude",
		Translation:  "纬度",
		PartOfSpeech: "noun",
		Phonetic:     "/ˈlæt.ɪ.tjuːd/",
		Meaning:      "The distance of a place north or south of the equator, measured in degrees.",
		Example:      "The equator has a latitude of zero degrees.",
		Image:        "🌐",
		RelatedWords: []string{"longitude", "equator", "climate"},
		Sentences: []string{
			"Places at high latitudes have cold winters.",
			"Lines of latitude are parallel to the equator.",
			"The city lies at a latitude of 40 degrees north.",
		},
	},
	{
		Word:         "horizon",
		Translation:  "地平线",
		PartOfSpeech: "noun",
		Phonetic:     "/həˈraɪ.zən/",
		Meaning:      "The line where the Earth's surface and the sky appear to meet.",
		Example:      "The sun slowly sank below the horizon.",
		Image:        "🌅",
		RelatedWords: []string{"altitude", "sky", "sunset"},
		Sentences: []string{
			"A ship appeared on the horizon.",
			"From the mountain top the horizon seemed endless.",
			"The horizon is farther away when you stand higher.",
		},
	},
	{
		Word:         "altitude",
		Translation:  "海拔",
		PartOfSpeech: "noun",
		Phonetic:     "/ˈæl.tɪ.tjuːd/",
		Meaning:      "The height of something above sea level.",
		Example:      "The plane flew at an altitude of 10,000 metres.",
		Image:        "⛰️",
		RelatedWords: []string{"atmosphere", "horizon", "mountain"},
		Sentences: []string{
			"Water boils at a lower temperature at high altitude.",
			"Some climbers feel ill at high altitude.",
			"The village sits at an altitude of 2,000 metres.",
		},
	},
}
