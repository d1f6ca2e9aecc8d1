package storage

// BlobRepository is the subset of the learner_blobs repository used here
type BlobRepository interface {
	GetBlob(learnerID, key string) ([]byte, bool, error)
	SetBlob(learnerID, key string, value []byte) error
}

// LearnerStore scopes a blob repository to a single learner
type LearnerStore struct {
	repo      BlobRepository
	learnerID string
}

// NewLearnerStore creates a Store that reads and writes one learner's blobs
func NewLearnerStore(repo BlobRepository, learnerID string) *LearnerStore {
	return &LearnerStore{repo: repo, learnerID: learnerID}
}

func (s *LearnerStore) GetBlob(key string) ([]byte, bool, error) {
	return s.repo.GetBlob(s.learnerID, key)
}

func (s *LearnerStore) SetBlob(key string, value []byte) error {
	return s.repo.SetBlob(s.learnerID, key, value)
}
