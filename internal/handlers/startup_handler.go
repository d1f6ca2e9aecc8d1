package handlers

import (
	"net/http"
	"sync"
)

// StartupStatus tracks the initialization progress
type StartupStatus struct {
	mu       sync.RWMutex
	Ready    bool          `json:"ready"`
	Current  string        `json:"current"`
	Progress int           `json:"progress"`
	Steps    []StartupStep `json:"steps"`
}

type StartupStep struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Startup step names
const (
	StepDatabase   = "Database connection"
	StepMigrations = "Running migrations"
	StepCatalog    = "Loading word catalog"
	StepServices   = "Initializing services"
	StepScheduler  = "Starting scheduler"
)

// NewStartupStatus creates a tracker for the given steps
func NewStartupStatus(steps ...string) *StartupStatus {
	s := &StartupStatus{Current: "Initializing..."}
	for _, name := range steps {
		s.Steps = append(s.Steps, StartupStep{Name: name})
	}
	return s
}

var startupStatus = NewStartupStatus(StepDatabase, StepMigrations, StepCatalog, StepServices, StepScheduler)

// SetCurrentStep updates the current initialization step
func (s *StartupStatus) SetCurrentStep(step string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Current = step
}

// CompleteStep marks a step as completed and updates progress
func (s *StartupStatus) CompleteStep(stepName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	completed := 0
	for i := range s.Steps {
		if s.Steps[i].Name == stepName {
			s.Steps[i].Completed = true
		}
		if s.Steps[i].Completed {
			completed++
		}
	}
	if len(s.Steps) > 0 {
		s.Progress = (completed * 100) / len(s.Steps)
	}
}

// MarkReady marks the server as fully initialized
func (s *StartupStatus) MarkReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ready = true
	s.Current = "Server ready"
	s.Progress = 100
}

// IsReady returns whether the server is fully initialized
func (s *StartupStatus) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Ready
}

// ServeHTTP reports the startup state; 503 until the server is ready
func (s *StartupStatus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	snapshot := struct {
		Ready    bool          `json:"ready"`
		Current  string        `json:"current"`
		Progress int           `json:"progress"`
		Steps    []StartupStep `json:"steps"`
	}{s.Ready, s.Current, s.Progress, append([]StartupStep(nil), s.Steps...)}
	s.mu.RUnlock()

	status := http.StatusOK
	if !snapshot.Ready {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, snapshot)
}

// SetCurrentStep updates the process-wide startup status
func SetCurrentStep(step string) { startupStatus.SetCurrentStep(step) }

// CompleteStep completes a step of the process-wide startup status
func CompleteStep(stepName string) { startupStatus.CompleteStep(stepName) }

// MarkReady marks the process-wide startup status ready
func MarkReady() { startupStatus.MarkReady() }

// Startup returns the process-wide startup status
func Startup() *StartupStatus { return startupStatus }
