package batch

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// JobStatus represents the state of an extraction job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusExtracting JobStatus = "extracting"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Job tracks the extraction of a single document.
type Job struct {
	mu sync.Mutex

	ID       string    `json:"job_id"`
	Filename string    `json:"filename"`
	Status   JobStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	result   *outline.Result
	errMsg   string
}

// NewJob creates a queued job for an uploaded document.
func NewJob(filename string, data []byte) *Job {
	now := time.Now()
	seed := fmt.Sprintf("%s-%d", filename, now.UnixNano())
	return &Job{
		ID:        ContentHashHex([]byte(seed))[:20],
		Filename:  filename,
		Status:    StatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
		fileData:  data,
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.UpdatedAt = time.Now()
}

// SetResult records the extraction outcome and marks the job completed.
func (j *Job) SetResult(res outline.Result) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = &res
	j.Status = StatusCompleted
	j.UpdatedAt = time.Now()
}

// Fail records an error message and marks the job failed.
func (j *Job) Fail(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errMsg = msg
	j.Status = StatusFailed
	j.UpdatedAt = time.Now()
}

// FileData returns the raw document bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string          `json:"job_id"`
	Filename string          `json:"filename"`
	Status   JobStatus       `json:"status"`
	Error    string          `json:"error,omitempty"`
	Result   *outline.Result `json:"result,omitempty"`
}

// Snapshot returns a JSON-safe copy of the job state. The result is only
// populated once the job has completed.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	snap := JobSnapshot{
		ID:       j.ID,
		Filename: j.Filename,
		Status:   j.Status,
		Error:    j.errMsg,
	}
	if j.result != nil {
		r := *j.result
		snap.Result = &r
	}
	return snap
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		job.mu.Lock()
		expired := now.Sub(job.UpdatedAt) > s.ttl
		job.mu.Unlock()
		if expired {
			delete(s.jobs, id)
		}
	}
}

// ContentHashHex computes SHA-256 of content and returns a hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
