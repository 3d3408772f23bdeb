package jobstore

import (
	"errors"
	"testing"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportThenFilterAllKeepsOrder(t *testing.T) {
	raw := `[{"Title":"First","Level":"Mid"},{"Title":"Second","Level":"Senior"}]`
	s, err := Import(Empty(), []byte(raw))
	require.NoError(t, err)

	s = Filter(s, models.AllSelection())
	assert.Equal(t, s.Collection, s.View)
	assert.Equal(t, []string{"First", "Second"}, titles(s.View))
}

func TestImportFailureLeavesStateUnchanged(t *testing.T) {
	before := Filter(mustImport(sampleJobs), models.Selection{Level: "Senior"})

	after, err := Import(before, []byte(`{not json`))
	require.Error(t, err)

	var ierr *ImportError
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, before, after)
}

func TestImportReplacesCollection(t *testing.T) {
	s := mustImport(sampleJobs)
	s, _ = Sort(Filter(s, models.Selection{Level: "Senior"}), models.SortTitle)

	s, err := Import(s, []byte(`[{"Title":"Only","Level":"Lead","Type":"Full-time","Skill":"Rust"}]`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Only"}, titles(s.Collection))
	assert.Equal(t, s.Collection, s.View)
	assert.Equal(t, models.AllSelection(), s.Selection)
	assert.Equal(t, models.SortNone, s.SortKey)
	assert.Equal(t, []string{models.All, "Lead"}, s.Options.Levels)
}

func TestFilter(t *testing.T) {
	s := mustImport(sampleJobs)

	tests := []struct {
		name string
		sel  models.Selection
		want []int
	}{
		{"all", models.AllSelection(), []int{1, 2, 3, 4, 5}},
		{"level", models.Selection{Level: "Senior", Type: models.All, Skill: models.All}, []int{1, 3}},
		{"skill", models.Selection{Level: models.All, Type: models.All, Skill: "Go"}, []int{1, 5}},
		{"and across dimensions", models.Selection{Level: "Junior", Type: "Full-time", Skill: "Go"}, []int{5}},
		{"empty selectors mean all", models.Selection{Type: "Contract"}, []int{2}},
		{"absent value", models.Selection{Level: "Principal", Type: models.All, Skill: models.All}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(s, tt.sel)
			assert.Equal(t, tt.want, ids(got.View))
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	s := mustImport(sampleJobs)
	sel := models.Selection{Level: "Senior", Type: "Full-time", Skill: models.All}

	once := Filter(s, sel)
	twice := Filter(once, sel)
	assert.Equal(t, once.View, twice.View)
}

func TestFilterIsNotCumulative(t *testing.T) {
	s := mustImport(sampleJobs)
	a := models.Selection{Level: "Senior", Type: models.All, Skill: models.All}
	b := models.Selection{Level: models.All, Type: models.All, Skill: "Go"}

	chained := Filter(Filter(s, a), b)
	direct := Filter(s, b)
	assert.Equal(t, direct.View, chained.View)
	assert.Equal(t, []int{1, 5}, ids(chained.View))
}

func TestFilterDoesNotTouchOptions(t *testing.T) {
	s := mustImport(sampleJobs)
	filtered := Filter(s, models.Selection{Level: "Mid"})
	assert.Equal(t, s.Options, filtered.Options)
}

func TestSortByTitle(t *testing.T) {
	s, err := Sort(mustImport(sampleJobs), models.SortTitle)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Android Developer",
		"Backend Engineer",
		"Cloud Architect",
		"data analyst",
		"Éclair Baker",
	}, titles(s.View))
	assert.Equal(t, models.SortTitle, s.SortKey)
}

func TestSortByTitleIsStableForEqualTitles(t *testing.T) {
	s := mustImport(`[{"Title":"go dev"},{"Title":"Go Dev"},{"Title":"Alpha"}]`)
	s, err := Sort(s, models.SortTitle)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ids(s.View))
}

func TestSortByTime(t *testing.T) {
	s, err := Sort(mustImport(sampleJobs), models.SortTime)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 1, 3, 5, 2}, ids(s.View))
	assert.Empty(t, s.Unparsed)
}

func TestSortByTimeIsStable(t *testing.T) {
	raw := `[
		{"Title":"A","Posted":"5 hours"},
		{"Title":"B","Posted":"1 hour"},
		{"Title":"C","Posted":"5 hours"},
		{"Title":"D","Posted":"300 minutes"}
	]`
	for i := 0; i < 20; i++ {
		s, err := Sort(mustImport(raw), models.SortTime)
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "A", "C", "D"}, titles(s.View))
	}
}

func TestSortByTimeMalformedSortsLast(t *testing.T) {
	raw := `[
		{"Title":"Bad","Posted":"yesterday"},
		{"Title":"Old","Posted":"2 weeks"},
		{"Title":"Missing"},
		{"Title":"New","Posted":"1 minute"}
	]`
	s, err := Sort(mustImport(raw), models.SortTime)
	require.NoError(t, err)

	assert.Equal(t, []string{"New", "Old", "Bad", "Missing"}, titles(s.View))
	assert.Equal(t, []int{1, 3}, s.Unparsed)
}

func TestSortByTimeOutOfRangeSortsLast(t *testing.T) {
	raw := `[
		{"Title":"Ancient","Posted":"1000000000000000 weeks"},
		{"Title":"Fresh","Posted":"1 minute"}
	]`
	s, err := Sort(mustImport(raw), models.SortTime)
	require.NoError(t, err)

	assert.Equal(t, []string{"Fresh", "Ancient"}, titles(s.View))
	assert.Equal(t, []int{1}, s.Unparsed)
}

func TestSortByTimeNegativeAgeSortsFirst(t *testing.T) {
	raw := `[
		{"Title":"Recent","Posted":"1 minute"},
		{"Title":"Future","Posted":"-3 hours"}
	]`
	s, err := Sort(mustImport(raw), models.SortTime)
	require.NoError(t, err)

	assert.Equal(t, []string{"Future", "Recent"}, titles(s.View))
	assert.Empty(t, s.Unparsed)
}

func TestSortOperatesOnFilteredView(t *testing.T) {
	s := Filter(mustImport(sampleJobs), models.Selection{Level: "Junior"})
	s, err := Sort(s, models.SortTime)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2}, ids(s.View))
}

func TestSortDoesNotMutatePreviousState(t *testing.T) {
	s := mustImport(sampleJobs)
	_, err := Sort(s, models.SortTitle)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(s.View))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(s.Collection))
}

func TestSortUnknownKey(t *testing.T) {
	s := mustImport(sampleJobs)
	got, err := Sort(s, models.SortKey("salary"))
	require.ErrorIs(t, err, ErrUnknownSortKey)
	assert.Equal(t, s, got)
}

func TestResetAfterFilterAndSort(t *testing.T) {
	s := mustImport(sampleJobs)
	s = Filter(s, models.Selection{Level: "Senior"})
	s, err := Sort(s, models.SortTitle)
	require.NoError(t, err)

	s = Reset(s)
	assert.Equal(t, s.Collection, s.View)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(s.View))
	assert.Equal(t, models.AllSelection(), s.Selection)
	assert.Equal(t, models.SortNone, s.SortKey)
}

func TestLookupRoutesByID(t *testing.T) {
	raw := `[
		{"Title":"Dev","Type":"Full-time","Level":"Mid","Detail":"first"},
		{"Title":"Dev","Type":"Full-time","Level":"Mid","Detail":"second"}
	]`
	s := mustImport(raw)

	job, ok := Lookup(s, 2)
	require.True(t, ok)
	assert.Equal(t, "second", job.Detail)

	_, ok = Lookup(s, 3)
	assert.False(t, ok)
	_, ok = Lookup(s, 0)
	assert.False(t, ok)
}

func TestDeriveOptions(t *testing.T) {
	s := mustImport(sampleJobs)

	assert.Equal(t, []string{"All", "Junior", "Mid", "Senior"}, s.Options.Levels)
	assert.Equal(t, []string{"All", "Contract", "Full-time", "Part-time"}, s.Options.Types)
	assert.Equal(t, []string{"All", "AWS", "Go", "Kotlin", "SQL"}, s.Options.Skills)
}

func TestDeriveOptionsCaseInsensitiveOrder(t *testing.T) {
	opts := DeriveOptions([]models.Job{
		{Skill: "rust"}, {Skill: "Go"}, {Skill: "awk"}, {Skill: "go"}, {Skill: ""},
	})
	assert.Equal(t, []string{"All", "awk", "Go", "go", "rust"}, opts.Skills)
	assert.Equal(t, []string{"All"}, opts.Levels)
}

func TestOptionsHas(t *testing.T) {
	opts := mustImport(sampleJobs).Options

	assert.True(t, Has(opts.Levels, "Senior"))
	assert.True(t, Has(opts.Levels, models.All))
	assert.False(t, Has(opts.Levels, "senior"))
	assert.False(t, Has(opts.Skills, "Rust"))
	assert.False(t, Has(nil, "Go"))
}

func TestOptionsUnavailable(t *testing.T) {
	opts := mustImport(sampleJobs).Options

	tests := []struct {
		name string
		sel  models.Selection
		want []string
	}{
		{"all", models.AllSelection(), nil},
		{"empty selectors", models.Selection{}, nil},
		{"offered values", models.Selection{Level: "Senior", Type: "Full-time", Skill: "Go"}, nil},
		{"unknown level", models.Selection{Level: "Principal"}, []string{`level "Principal"`}},
		{"unknown type and skill", models.Selection{Type: "Intern", Skill: "Rust"}, []string{`type "Intern"`, `skill "Rust"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, opts.Unavailable(tt.sel))
		})
	}
}
