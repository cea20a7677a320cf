package memory

import (
	"logsense/internal/model"
)

// Stats aggregates the stored entries by task type and severity.
type Stats struct {
	Count      int                    `json:"count"`
	ByTaskType map[model.TaskType]int `json:"by_task_type"`
	BySeverity map[model.Severity]int `json:"by_severity"`
}

// Record stores an analysis, evicting the oldest entry when full.
func (s *Store) Record(e Entry) {
	s.cache.Add(e.ID, e)
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (Entry, bool) {
	return s.cache.Peek(id)
}

// Recent returns up to limit entries, newest first. Peek is used so reads
// do not disturb eviction order.
func (s *Store) Recent(limit int) []Entry {
	keys := s.cache.Keys() // oldest first
	if limit <= 0 || limit > len(keys) {
		limit = len(keys)
	}

	out := make([]Entry, 0, limit)
	for i := len(keys) - 1; i >= 0 && len(out) < limit; i-- {
		if e, ok := s.cache.Peek(keys[i]); ok {
			out = append(out, e)
		}
	}
	return out
}

// Len reports the number of stored entries.
func (s *Store) Len() int {
	return s.cache.Len()
}

// Stats aggregates stored entries.
func (s *Store) Stats() Stats {
	st := Stats{
		ByTaskType: make(map[model.TaskType]int),
		BySeverity: make(map[model.Severity]int),
	}
	for _, key := range s.cache.Keys() {
		e, ok := s.cache.Peek(key)
		if !ok {
			continue
		}
		st.Count++
		st.ByTaskType[e.TaskType]++
		st.BySeverity[e.Severity]++
	}
	return st
}
