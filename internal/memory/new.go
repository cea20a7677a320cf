package memory

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"logsense/internal/model"
)

// DefaultSize is the number of analyses kept when no size is configured.
const DefaultSize = 500

// Entry is one completed analysis kept in memory. Entries are process-local
// and evicted oldest-first; nothing is persisted.
type Entry struct {
	ID          string         `json:"id"`
	TaskType    model.TaskType `json:"task_type"`
	Severity    model.Severity `json:"severity"`
	Model       string         `json:"model"`
	TextExcerpt string         `json:"text_excerpt"`
	Analysis    string         `json:"analysis"`
	TotalTokens int            `json:"total_tokens"`
	CreatedAt   string         `json:"created_at"` // RFC3339
}

// Store is a fixed-capacity LRU of recent analyses.
type Store struct {
	cache *lru.Cache[string, Entry]
}

// New creates a Store. A non-positive size selects DefaultSize.
func New(size int) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, Entry](size)
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache}, nil
}
