package jobstore

import (
	"sort"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
)

// Count is the number of jobs sharing one value
type Count struct {
	Value string `json:"value"`
	N     int    `json:"n"`
}

// Summary breaks a view down by level, type and skill
type Summary struct {
	Total  int     `json:"total"`
	Levels []Count `json:"levels"`
	Types  []Count `json:"types"`
	Skills []Count `json:"skills"`
}

// Summarize counts the values present in jobs. Counts are ordered by
// frequency, then alphabetically.
func Summarize(jobs []models.Job) Summary {
	levels := map[string]int{}
	types := map[string]int{}
	skills := map[string]int{}
	for _, job := range jobs {
		levels[job.Level]++
		types[job.Type]++
		skills[job.Skill]++
	}

	return Summary{
		Total:  len(jobs),
		Levels: counts(levels),
		Types:  counts(types),
		Skills: counts(skills),
	}
}

func counts(m map[string]int) []Count {
	values := make([]string, 0, len(m))
	for v := range m {
		values = append(values, v)
	}
	sortStrings(values)

	out := make([]Count, 0, len(values))
	for _, v := range values {
		out = append(out, Count{Value: v, N: m[v]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].N > out[j].N
	})
	return out
}
