package jobstore

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
	"github.com/tidwall/gjson"
)

// importFields is the order in which attributes are read from a source object
var importFields = []models.Field{
	models.FieldTitle,
	models.FieldPosted,
	models.FieldType,
	models.FieldLevel,
	models.FieldSkill,
	models.FieldDetail,
	models.FieldLink,
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ImportError is returned when raw import text is not a JSON array of records
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import failed: %v", e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// DecodeJobs parses raw import text into jobs numbered 1..n in file order.
// A null element fails the import; other non-object elements carry no
// fields and become empty jobs.
func DecodeJobs(raw []byte) ([]models.Job, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if !gjson.ValidBytes(raw) {
		return nil, &ImportError{Err: errors.New("malformed JSON")}
	}

	root := gjson.ParseBytes(raw)
	if !root.IsArray() {
		return nil, &ImportError{Err: fmt.Errorf("expected a JSON array, got %s", root.Type)}
	}

	elements := root.Array()
	jobs := make([]models.Job, 0, len(elements))
	for i, element := range elements {
		var job models.Job
		switch {
		case element.Type == gjson.Null:
			return nil, &ImportError{Err: fmt.Errorf("element %d is null", i)}
		case element.IsObject():
			job = decodeJob(element)
		}
		job.ID = i + 1
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// decodeJob copies the mapped keys of one object into a Job. Absent keys stay empty.
func decodeJob(obj gjson.Result) models.Job {
	var job models.Job
	values := obj.Map()
	for _, field := range importFields {
		for _, key := range models.SourceKeys[field] {
			if v, ok := values[key]; ok {
				job.Set(field, v.String())
				break
			}
		}
	}
	return job
}
