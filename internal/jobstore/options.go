package jobstore

import (
	"fmt"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
)

// Options holds the selectable values for each filter, each list led by All
type Options struct {
	Levels []string `json:"levels"`
	Types  []string `json:"types"`
	Skills []string `json:"skills"`
}

// DeriveOptions collects the distinct level, type and skill values of a collection
func DeriveOptions(jobs []models.Job) Options {
	levels := make([]string, 0, len(jobs))
	types := make([]string, 0, len(jobs))
	skills := make([]string, 0, len(jobs))
	for _, job := range jobs {
		levels = append(levels, job.Level)
		types = append(types, job.Type)
		skills = append(skills, job.Skill)
	}

	return Options{
		Levels: optionList(levels),
		Types:  optionList(types),
		Skills: optionList(skills),
	}
}

func optionList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	distinct := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	sortStrings(distinct)

	return append([]string{models.All}, distinct...)
}

// Has reports whether value is one of the options in list
func Has(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// Unavailable lists the selectors of sel that are not offered by o, such as
// `level "Principal"`. Such a filter matches no jobs.
func (o Options) Unavailable(sel models.Selection) []string {
	sel = sel.Normalize()
	var missing []string
	for _, f := range []struct {
		name, value string
		list        []string
	}{
		{"level", sel.Level, o.Levels},
		{"type", sel.Type, o.Types},
		{"skill", sel.Skill, o.Skills},
	} {
		if f.value != models.All && !Has(f.list, f.value) {
			missing = append(missing, fmt.Sprintf("%s %q", f.name, f.value))
		}
	}
	return missing
}
