package catalog

import "earthwords/internal/models"

// Quiz ids
const (
	QuizEarthLayers    = "earth-layers-quiz"
	QuizEarthGeography = "earth-geography-quiz"
)

func defaultQuizzes() []*models.Quiz {
	return []*models.Quiz{earthLayersQuiz(), earthGeographyQuiz()}
}

func earthLayersQuiz() *models.Quiz {
	return &models.Quiz{
		ID:            QuizEarthLayers,
		Title:         "Earth Layers Quiz",
		Chapter:       string(ChapterEarthLayers),
		CompletionKey: "earthLayersQuizCompleted",
		Sections: []models.QuizSection{
			{
				Title:       "Part 1: Basic Recognition",
				Description: "Test your knowledge of word meanings",
				Questions: []models.Question{
					{
						ID:            1,
						Type:          models.QuestionMultipleChoice,
						Prompt:        "What does the word 'erupt' mean?",
						Options:       []string{"to freeze", "to explode", "to fall", "to shine"},
						CorrectOption: 1,
						RelatedWord:   "erupt",
					},
					{
						ID:            2,
						Type:          models.QuestionMultipleChoice,
						Prompt:        "What is the Earth's crust?",
						Options:       []string{"The inner core", "The molten layer", "The outermost layer", "The atmosphere"},
						CorrectOption: 2,
						RelatedWord:   "crust",
					},
				},
			},
			{
				Title:       "Part 2: Contextual Understanding",
				Description: "Choose the sentence that uses the word correctly",
				Questions: []models.Question{
					{
						ID:     3,
						Type:   models.QuestionSentenceSelection,
						Prompt: "Which sentence uses the word 'magma' correctly?",
						Options: []string{
							"The magma is falling from the sky.",
							"Magma is the gas in the atmosphere.",
							"Magma flows under the Earth's crust.",
							"Magma is a type of cloud.",
						},
						CorrectOption: 2,
						RelatedWord:   "magma",
					},
					{
						ID:     4,
						Type:   models.QuestionSentenceSelection,
						Prompt: "Which sentence uses the word 'core' correctly?",
						Options: []string{
							"The core is the outermost layer of the Earth.",
							"The Earth's core is mainly composed of iron and nickel.",
							"Core is another name for a volcano.",
							"The core is made of water and ice.",
						},
						CorrectOption: 1,
						RelatedWord:   "core",
					},
				},
			},
			{
				Title:       "Part 3: Grammar Structure",
				Description: "Identify the correct sentence structure",
				Questions: []models.Question{
					{
						ID:     5,
						Type:   models.QuestionGrammar,
						Prompt: "Choose the correct sentence structure:",
						Options: []string{
							"The volcano erupts → Simple Present",
							"Erupt volcano the → Incorrect",
							"Volcanos to erupted → Incorrect",
						},
						CorrectOption: 0,
						RelatedWord:   "erupt",
					},
					{
						ID:     6,
						Type:   models.QuestionGrammar,
						Prompt: "Which is the correct structure?",
						Options: []string{
							"The mantle surrounds the core → Correct",
							"The mantle surrounding core the → Incorrect",
							"Mantle the surrounds → Incorrect",
						},
						CorrectOption: 0,
						RelatedWord:   "mantle",
					},
				},
			},
			{
				Title:       "Part 4: Sentence Completion",
				Description: "Complete sentences with the correct word forms",
				Questions: []models.Question{
					{
						ID:          7,
						Type:        models.QuestionFillBlank,
						Prompt:      "Complete the sentence: After the volcano ______, the village was covered in ash.",
						CorrectText: "erupted",
						RelatedWord: "erupt",
					},
					{
						ID:     8,
						Type:   models.QuestionRelativeClause,
						Prompt: "Choose the correct sentence with a relative clause:",
						Options: []string{
							"The volcano, which had not erupted in years, suddenly exploded.",
							"The volcano exploded had not erupted years.",
							"Which volcano exploded?",
						},
						CorrectOption: 0,
						RelatedWord:   "volcano",
					},
				},
			},
			{
				Title:       "Part 5: Expression Practice",
				Description: "Demonstrate your ability to use these words",
				Questions: []models.Question{
					{
						ID:          9,
						Type:        models.QuestionSpeaking,
						Prompt:      "Say a sentence using the word 'volcano'.",
						RelatedWord: "volcano",
					},
					{
						ID:          10,
						Type:        models.QuestionWriting,
						Prompt:      "Write 1-2 sentences about Earth's layers. Use at least two words from the lesson.",
						RelatedWord: "crust",
					},
				},
			},
		},
	}
}

func earthGeographyQuiz() *models.Quiz {
	return &models.Quiz{
		ID:                  QuizEarthGeography,
		Title:               "Earth Geography Quiz",
		Chapter:             string(ChapterEarthGeography),
		CompletionKey:       "earthGeographyQuizCompleted",
		RequirePerfectScore: true,
		Sections: []models.QuizSection{
			{
				Title:       "Part 1: Basic Recognition",
				Description: "Test your knowledge of word meanings",
				Questions: []models.Question{
					{
						ID:            1,
						Type:          models.QuestionMultipleChoice,
						Prompt:        "What is the hydrosphere?",
						Options:       []string{"All the water on Earth", "The layer of gases", "The rocky outer layer", "The centre of the Earth"},
						CorrectOption: 0,
						RelatedWord:   "hydrosphere",
					},
					{
						ID:            2,
						Type:          models.QuestionMultipleChoice,
						Prompt:        "What does 'altitude' measure?",
						Options:       []string{"Distance from the equator", "Height above sea level", "Depth of the ocean", "Temperature of the air"},
						CorrectOption: 1,
						RelatedWord:   "altitude",
					},
				},
			},
			{
				Title:       "Part 2: Contextual Understanding",
				Description: "Choose the sentence that uses the word correctly",
				Questions: []models.Question{
					{
						ID:     3,
						Type:   models.QuestionSentenceSelection,
						Prompt: "Which sentence uses the word 'latitude' correctly?",
						Options: []string{
							"The latitude of the mountain is 3,000 metres.",
							"Places at high latitudes have long, cold winters.",
							"Latitude is the water in the oceans.",
						},
						CorrectOption: 1,
						RelatedWord:   "latitude",
					},
					{
						ID:     4,
						Type:   models.QuestionSentenceSelection,
						Prompt: "Which sentence uses the word 'horizon' correctly?",
						Options: []string{
							"The sun disappeared below the horizon.",
							"We drank water from the horizon.",
							"The horizon is made of iron and nickel.",
						},
						CorrectOption: 0,
						RelatedWord:   "horizon",
					},
				},
			},
			{
				Title:       "Part 3: Sentence Completion",
				Description: "Complete sentences with the correct word",
				Questions: []models.Question{
					{
						ID:          5,
						Type:        models.QuestionFillBlank,
						Prompt:      "Complete the sentence: Greenwich has a ______ of zero degrees.",
						CorrectText: "longitude",
						RelatedWord: "longitude",
					},
					{
						ID:          6,
						Type:        models.QuestionFillBlank,
						Prompt:      "Complete the sentence: The ______ is the layer of gases that surrounds the Earth.",
						CorrectText: "atmosphere",
						RelatedWord: "atmosphere",
					},
				},
			},
		},
	}
}
