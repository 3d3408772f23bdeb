package jobstore

import (
	"sort"
	"strings"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Find ranks jobs whose title contains the characters of query in order,
// ignoring case and diacritics. Closer matches come first; ties keep import order.
func Find(jobs []models.Job, query string) []models.Job {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	titles := make([]string, len(jobs))
	for i, job := range jobs {
		titles[i] = job.Title
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	matches := make([]models.Job, 0, len(ranks))
	for _, r := range ranks {
		matches = append(matches, jobs[r.OriginalIndex])
	}
	return matches
}
