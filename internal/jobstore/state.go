package jobstore

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
)

// ErrUnknownSortKey is returned when Sort is asked for an ordering it does not support
var ErrUnknownSortKey = errors.New("unknown sort key")

// State is one snapshot of the session. Actions never modify a State in place;
// they return a new one that may share the immutable Collection.
type State struct {
	Collection []models.Job     `json:"collection"`
	View       []models.Job     `json:"view"`
	Selection  models.Selection `json:"selection"`
	Options    Options          `json:"options"`
	SortKey    models.SortKey   `json:"sort_key,omitempty"`
	Unparsed   []int            `json:"unparsed,omitempty"`
}

// Empty returns the state of a session before anything is imported
func Empty() State {
	return State{
		Selection: models.AllSelection(),
		Options:   DeriveOptions(nil),
	}
}

// Import replaces the collection with the jobs in raw. On error the
// previous state is returned unchanged.
func Import(s State, raw []byte) (State, error) {
	jobs, err := DecodeJobs(raw)
	if err != nil {
		return s, err
	}

	return State{
		Collection: jobs,
		View:       copyJobs(jobs),
		Selection:  models.AllSelection(),
		Options:    DeriveOptions(jobs),
	}, nil
}

// Filter rebuilds the view from the full collection using sel. Earlier
// filters have no effect on the result.
func Filter(s State, sel models.Selection) State {
	sel = sel.Normalize()

	view := make([]models.Job, 0, len(s.Collection))
	for _, job := range s.Collection {
		if sel.Matches(job) {
			view = append(view, job)
		}
	}

	s.View = view
	s.Selection = sel
	s.SortKey = models.SortNone
	s.Unparsed = nil
	return s
}

// Sort reorders the current view. Jobs whose posted value cannot be parsed
// sort after every parsed one and are listed in Unparsed.
func Sort(s State, key models.SortKey) (State, error) {
	view := copyJobs(s.View)

	switch key {
	case models.SortTitle:
		c := newCollator()
		sort.SliceStable(view, func(i, j int) bool {
			return c.CompareString(view[i].Title, view[j].Title) < 0
		})
		s.Unparsed = nil

	case models.SortTime:
		ages := make(map[int]int, len(view))
		var unparsed []int
		for _, job := range view {
			minutes, err := job.PostedMinutes()
			if err != nil {
				minutes = math.MaxInt
				unparsed = append(unparsed, job.ID)
			}
			ages[job.ID] = minutes
		}
		sort.SliceStable(view, func(i, j int) bool {
			return ages[view[i].ID] < ages[view[j].ID]
		})
		s.Unparsed = unparsed

	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownSortKey, key)
	}

	s.View = view
	s.SortKey = key
	return s, nil
}

// Reset restores the full collection in import order and clears every selector
func Reset(s State) State {
	s.View = copyJobs(s.Collection)
	s.Selection = models.AllSelection()
	s.SortKey = models.SortNone
	s.Unparsed = nil
	return s
}

// Lookup finds a job in the collection by its import ID
func Lookup(s State, id int) (models.Job, bool) {
	if id >= 1 && id <= len(s.Collection) && s.Collection[id-1].ID == id {
		return s.Collection[id-1], true
	}
	for _, job := range s.Collection {
		if job.ID == id {
			return job, true
		}
	}
	return models.Job{}, false
}

func copyJobs(jobs []models.Job) []models.Job {
	out := make([]models.Job, len(jobs))
	copy(out, jobs)
	return out
}

func (s State) clone() State {
	s.Collection = copyJobs(s.Collection)
	s.View = copyJobs(s.View)
	s.Unparsed = append([]int(nil), s.Unparsed...)
	s.Options = Options{
		Levels: append([]string(nil), s.Options.Levels...),
		Types:  append([]string(nil), s.Options.Types...),
		Skills: append([]string(nil), s.Options.Skills...),
	}
	return s
}
