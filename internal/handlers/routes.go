package handlers

import "net/http"

// Handlers groups the API handlers registered by RegisterAPI
type Handlers struct {
	Scenes   *SceneHandler
	Lessons  *LessonHandler
	Quizzes  *QuizHandler
	Profiles *ProfileHandler
	Media    *MediaHandler
}

// RegisterAPI mounts the JSON API on mux
func RegisterAPI(mux *http.ServeMux, m *Middleware, h Handlers) {
	learner := func(next http.HandlerFunc) http.HandlerFunc {
		return ValidatePath(m.RequireLearner(next))
	}
	mutate := func(next http.HandlerFunc) http.HandlerFunc {
		return ValidatePath(m.RequireLearner(m.RateLimit(next)))
	}

	// Progress and content
	mux.HandleFunc("GET /api/profile", learner(h.Profiles.Profile))
	mux.HandleFunc("POST /api/profile/reset", h.Profiles.Reset)
	mux.HandleFunc("GET /api/chapters/{chapter}", learner(h.Profiles.Chapter))
	mux.HandleFunc("GET /api/words/{wordId}", learner(h.Profiles.Word))

	// Lessons
	mux.HandleFunc("GET /api/lessons/{wordId}", learner(h.Lessons.Open))
	mux.HandleFunc("POST /api/lessons/{wordId}/next", mutate(h.Lessons.Next))
	mux.HandleFunc("POST /api/lessons/{wordId}/previous", mutate(h.Lessons.Previous))
	mux.HandleFunc("POST /api/lessons/{wordId}/exit", mutate(h.Lessons.Exit))

	// Quizzes
	mux.HandleFunc("GET /api/quizzes/{quizId}", learner(h.Quizzes.Open))
	mux.HandleFunc("POST /api/quizzes/{quizId}/answer", mutate(h.Quizzes.Answer))
	mux.HandleFunc("POST /api/quizzes/{quizId}/next", mutate(h.Quizzes.Next))
	mux.HandleFunc("POST /api/quizzes/{quizId}/previous", mutate(h.Quizzes.Previous))

	// Sticker scenes
	mux.HandleFunc("GET /api/scenes/{unit}", learner(h.Scenes.View))
	mux.HandleFunc("POST /api/scenes/{unit}/select", mutate(h.Scenes.Select))
	mux.HandleFunc("POST /api/scenes/{unit}/place", mutate(h.Scenes.Place))
	mux.HandleFunc("POST /api/scenes/{unit}/deselect", mutate(h.Scenes.Deselect))
	mux.HandleFunc("POST /api/scenes/{unit}/stickers/{key}/edit", mutate(h.Scenes.Edit))
	mux.HandleFunc("POST /api/scenes/{unit}/stickers/{key}/drag/start", mutate(h.Scenes.DragStart))
	// A drag sends one move per frame, so the gesture is not rate limited
	mux.HandleFunc("POST /api/scenes/{unit}/stickers/{key}/drag/move", learner(h.Scenes.DragMove))
	mux.HandleFunc("POST /api/scenes/{unit}/drag/end", learner(h.Scenes.DragEnd))
	mux.HandleFunc("POST /api/scenes/{unit}/stickers/{key}/scale", mutate(h.Scenes.Scale))
	mux.HandleFunc("POST /api/scenes/{unit}/stickers/{key}/duplicate", mutate(h.Scenes.Duplicate))
	mux.HandleFunc("POST /api/scenes/{unit}/stickers/{key}/remove", mutate(h.Scenes.Remove))
	mux.HandleFunc("POST /api/scenes/{unit}/save", mutate(h.Scenes.Save))

	// Media
	mux.HandleFunc("GET /api/words/{wordId}/pronunciation", learner(h.Media.Pronunciation))
	mux.HandleFunc("POST /api/words/{wordId}/image", mutate(h.Media.GenerateImage))
	mux.HandleFunc("GET /api/words/{wordId}/image", learner(h.Media.Image))
	mux.HandleFunc("POST /api/words/{wordId}/speech", mutate(h.Media.StartSpeech))
	mux.HandleFunc("GET /api/words/{wordId}/speech", learner(h.Media.Speech))
}
