package models

import (
	"fmt"
	"strings"
)

// All is the selector value that matches every record
const All = "All"

// Job represents a single job posting loaded from an import file.
// Every field is an opaque string; nothing is checked against a fixed list.
type Job struct {
	ID     int    `json:"id"`
	Title  string `json:"Title"`
	Posted string `json:"Posted"`
	Type   string `json:"Type"`
	Level  string `json:"Level"`
	Skill  string `json:"Skill"`
	Detail string `json:"Detail"`
	Link   string `json:"Link,omitempty"`
}

// Label returns the one-line text used when a job is listed
func (j Job) Label() string {
	return fmt.Sprintf("%s - %s (%s)", j.Title, j.Type, j.Level)
}

// Field identifies one of the importable attributes of a Job
type Field string

const (
	FieldTitle  Field = "title"
	FieldPosted Field = "posted"
	FieldType   Field = "type"
	FieldLevel  Field = "level"
	FieldSkill  Field = "skill"
	FieldDetail Field = "detail"
	FieldLink   Field = "link"
)

// SourceKeys maps each attribute to the JSON keys it is read from.
// The first key present in a source object wins.
var SourceKeys = map[Field][]string{
	FieldTitle:  {"Title", "title"},
	FieldPosted: {"Posted", "posted"},
	FieldType:   {"Type", "type"},
	FieldLevel:  {"Level", "level"},
	FieldSkill:  {"Skill", "skill"},
	FieldDetail: {"Detail", "detail"},
	FieldLink:   {"Link", "link", "URL", "url"},
}

// Set assigns value to the attribute named by f
func (j *Job) Set(f Field, value string) {
	switch f {
	case FieldTitle:
		j.Title = value
	case FieldPosted:
		j.Posted = value
	case FieldType:
		j.Type = value
	case FieldLevel:
		j.Level = value
	case FieldSkill:
		j.Skill = value
	case FieldDetail:
		j.Detail = value
	case FieldLink:
		j.Link = value
	}
}

// Selection holds the current level, type and skill filter values
type Selection struct {
	Level string `json:"level"`
	Type  string `json:"type"`
	Skill string `json:"skill"`
}

// AllSelection matches every record
func AllSelection() Selection {
	return Selection{Level: All, Type: All, Skill: All}
}

// Normalize replaces empty selector values with All
func (s Selection) Normalize() Selection {
	if s.Level == "" {
		s.Level = All
	}
	if s.Type == "" {
		s.Type = All
	}
	if s.Skill == "" {
		s.Skill = All
	}
	return s
}

// Matches reports whether the job passes every selector
func (s Selection) Matches(j Job) bool {
	return (s.Level == All || j.Level == s.Level) &&
		(s.Type == All || j.Type == s.Type) &&
		(s.Skill == All || j.Skill == s.Skill)
}

// SortKey names the ordering applied to the active view
type SortKey string

const (
	SortNone  SortKey = ""
	SortTitle SortKey = "title"
	SortTime  SortKey = "time"
)

// ParseSortKey converts user input into a SortKey
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortTitle:
		return SortTitle, true
	case SortTime:
		return SortTime, true
	}
	return SortNone, false
}
