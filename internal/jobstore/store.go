package jobstore

import (
	"sync"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
	"github.com/pterm/pterm"
)

// Store owns the session state and applies one action at a time.
// Subscribers are called after each successful action while the store is
// still locked, so they must not call back into the Store.
type Store struct {
	mu          sync.Mutex
	state       State
	subscribers []func(State)
	logger      *pterm.Logger
}

// New creates an empty store. A nil logger disables logging.
func New(logger *pterm.Logger) *Store {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &Store{
		state:  Empty(),
		logger: logger,
	}
}

// Subscribe registers fn to receive the new state after every change
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// State returns a copy of the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// View returns a copy of the active view
func (s *Store) View() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyJobs(s.state.View)
}

// Import replaces the collection with the jobs in raw
func (s *Store) Import(raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Import(s.state, raw)
	if err != nil {
		s.logger.Warn("Import rejected", s.logger.Args("error", err))
		return err
	}

	s.logger.Info("Imported jobs", s.logger.Args(
		"count", len(next.Collection),
		"levels", len(next.Options.Levels)-1,
		"types", len(next.Options.Types)-1,
		"skills", len(next.Options.Skills)-1,
	))
	s.commit(next)
	return nil
}

// Filter rebuilds the view from the whole collection
func (s *Store) Filter(sel models.Selection) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Filter(s.state, sel)
	s.logger.Debug("Filtered jobs", s.logger.Args(
		"level", next.Selection.Level,
		"type", next.Selection.Type,
		"skill", next.Selection.Skill,
		"matches", len(next.View),
	))
	s.commit(next)
	return copyJobs(next.View)
}

// Sort reorders the active view
func (s *Store) Sort(key models.SortKey) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Sort(s.state, key)
	if err != nil {
		return nil, err
	}

	for _, id := range next.Unparsed {
		if job, ok := Lookup(next, id); ok {
			s.logger.Warn("Unrecognised posted time, sorting last", s.logger.Args(
				"id", job.ID,
				"title", job.Title,
				"posted", job.Posted,
			))
		}
	}
	s.logger.Debug("Sorted jobs", s.logger.Args("key", string(key), "count", len(next.View)))
	s.commit(next)
	return copyJobs(next.View), nil
}

// Reset restores the unfiltered, unsorted collection
func (s *Store) Reset() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Reset(s.state)
	s.logger.Debug("Reset view", s.logger.Args("count", len(next.View)))
	s.commit(next)
	return copyJobs(next.View)
}

// Lookup finds a job in the collection by ID
func (s *Store) Lookup(id int) (models.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Lookup(s.state, id)
}

// Find returns collection jobs whose title fuzzily matches query
func (s *Store) Find(query string) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Find(s.state.Collection, query)
}

// Summary counts the values of the active view
func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(s.state.View)
}

func (s *Store) commit(next State) {
	s.state = next
	for _, fn := range s.subscribers {
		fn(next.clone())
	}
}
