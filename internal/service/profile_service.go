package service

import (
	"earthwords/internal/catalog"
	"earthwords/internal/lesson"
	"earthwords/internal/models"
	"earthwords/internal/scene"
)

// WordStatus is one entry of a chapter's word grid
type WordStatus struct {
	ID        string `json:"id"`
	Image     string `json:"image,omitempty"`
	Completed bool   `json:"completed"`
}

// QuizStatus reports whether a quiz has been completed
type QuizStatus struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Questions int    `json:"questions"`
	Completed bool   `json:"completed"`
}

// ChapterOverview is the progress of one chapter
type ChapterOverview struct {
	Chapter      string       `json:"chapter"`
	Title        string       `json:"title"`
	Path         string       `json:"path"`
	Words        []WordStatus `json:"words"`
	Completed    int          `json:"completed"`
	Total        int          `json:"total"`
	AllCompleted bool         `json:"allCompleted"`
	Quizzes      []QuizStatus `json:"quizzes"`
}

// Profile summarises a learner's progress
type Profile struct {
	LearnerID         string            `json:"learnerId"`
	StreakDays        int               `json:"streakDays"`
	StreakDates       []string          `json:"streakDates"`
	WordsLearned      int               `json:"wordsLearned"`
	StickersCollected int               `json:"stickersCollected"`
	StickersTotal     int               `json:"stickersTotal"`
	Chapters          []ChapterOverview `json:"chapters"`
}

// WordDetail is the full lesson content of a word
type WordDetail struct {
	models.Word
	Chapter string         `json:"chapter,omitempty"`
	Stages  []models.Stage `json:"stages"`
}

// ProfileService reports learner progress and catalog content
type ProfileService struct {
	workspaces *Workspaces
	catalog    *catalog.Catalog
}

// NewProfileService creates a new profile service
func NewProfileService(workspaces *Workspaces, cat *catalog.Catalog) *ProfileService {
	return &ProfileService{workspaces: workspaces, catalog: cat}
}

// Profile builds the learner's summary
func (s *ProfileService) Profile(learnerID string) (*Profile, error) {
	p := &Profile{LearnerID: learnerID}
	_, err := s.workspaces.With(learnerID, func(ws *Workspace) error {
		tracker := ws.Progress()
		p.StreakDays = tracker.StreakDays()
		p.StreakDates = tracker.StreakDates()
		p.WordsLearned = tracker.WordsLearned()
		p.StickersCollected, p.StickersTotal = scene.Collected(s.catalog, tracker)
		for _, ch := range catalog.Chapters {
			p.Chapters = append(p.Chapters, s.overview(ws, ch))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Chapter builds the overview of one chapter
func (s *ProfileService) Chapter(learnerID, name string) (*ChapterOverview, error) {
	ch, err := catalog.ParseChapter(name)
	if err != nil {
		return nil, err
	}
	var overview ChapterOverview
	_, err = s.workspaces.With(learnerID, func(ws *Workspace) error {
		overview = s.overview(ws, ch)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &overview, nil
}

// Word returns the lesson content of a word
func (s *ProfileService) Word(wordID string) (*WordDetail, error) {
	w, ok := s.catalog.Word(wordID)
	if !ok {
		return nil, lesson.ErrSubjectNotFound
	}
	detail := &WordDetail{Word: w, Stages: s.catalog.Stages()}
	if ch, ok := s.catalog.ChapterOf(wordID); ok {
		detail.Chapter = string(ch)
	}
	return detail, nil
}

func (s *ProfileService) overview(ws *Workspace, ch catalog.Chapter) ChapterOverview {
	tracker := ws.Progress()
	o := ChapterOverview{
		Chapter: string(ch),
		Title:   ch.Title(),
		Path:    ch.Path(),
		Words:   []WordStatus{},
		Quizzes: []QuizStatus{},
	}
	for _, id := range s.catalog.ChapterWords(ch) {
		status := WordStatus{ID: id, Completed: tracker.IsCompleted(ch, id)}
		if w, ok := s.catalog.Word(id); ok {
			status.Image = w.Image
		}
		if status.Completed {
			o.Completed++
		}
		o.Words = append(o.Words, status)
	}
	o.Total = len(o.Words)
	o.AllCompleted = o.Total > 0 && o.Completed == o.Total

	for _, q := range s.catalog.Quizzes(ch) {
		o.Quizzes = append(o.Quizzes, QuizStatus{
			ID:        q.ID,
			Title:     q.Title,
			Questions: len(q.Questions()),
			Completed: tracker.QuizCompleted(q.CompletionKey),
		})
	}
	return o
}
