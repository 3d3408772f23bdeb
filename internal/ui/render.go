package ui

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/jobstore"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/utils"
	"github.com/pterm/pterm"
)

// EmptyPlaceholder is rendered in place of an empty job list
const EmptyPlaceholder = "No jobs available."

// ImportAlert is shown when an import file cannot be parsed
const ImportAlert = "Error parsing JSON file. Please check the format."

// Renderer writes jobs and session state to a terminal
type Renderer struct {
	Out           io.Writer
	Table         bool
	Hyperlinks    bool
	ShowPostedAge bool
	Now           func() time.Time
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		Out:           out,
		Hyperlinks:    true,
		ShowPostedAge: true,
		Now:           time.Now,
	}
}

// List renders the active view. total is the size of the full collection.
func (r *Renderer) List(jobs []models.Job, total int) {
	if len(jobs) == 0 {
		fmt.Fprintln(r.Out, EmptyPlaceholder)
		return
	}

	fmt.Fprintf(r.Out, "Showing %s of %s\n\n", humanize.Comma(int64(len(jobs))), utils.FormatCount(total, "job", "jobs"))

	if r.Table {
		r.table(jobs)
		return
	}

	for _, job := range jobs {
		line := fmt.Sprintf("%s %s", pterm.Cyan(fmt.Sprintf("[%d]", job.ID)), job.Label())
		if r.ShowPostedAge {
			line += "  " + r.postedAge(job)
		}
		fmt.Fprintln(r.Out, line)
	}
}

func (r *Renderer) table(jobs []models.Job) {
	data := pterm.TableData{{"ID", "Title", "Type", "Level", "Skill", "Posted"}}
	for _, job := range jobs {
		data = append(data, []string{
			strconv.Itoa(job.ID),
			utils.TruncateString(job.Title, 40),
			job.Type,
			job.Level,
			job.Skill,
			r.postedAge(job),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		// fall back to one line per job
		for _, job := range jobs {
			fmt.Fprintf(r.Out, "[%d] %s\n", job.ID, job.Label())
		}
		return
	}
	fmt.Fprintln(r.Out, out)
}

// Detail renders every field of a single job plus its outbound link
func (r *Renderer) Detail(job models.Job) {
	var body strings.Builder
	fmt.Fprintf(&body, "%s %s\n", pterm.Cyan("Type:"), job.Type)
	fmt.Fprintf(&body, "%s %s\n", pterm.Cyan("Level:"), job.Level)
	fmt.Fprintf(&body, "%s %s\n", pterm.Cyan("Skill:"), job.Skill)
	fmt.Fprintf(&body, "%s %s (%s)\n", pterm.Cyan("Posted:"), job.Posted, r.postedAge(job))
	fmt.Fprintf(&body, "%s\n%s\n", pterm.Cyan("Detail:"), PlainText(job.Detail))
	if job.Link != "" {
		fmt.Fprintf(&body, "%s %s", pterm.Cyan("Link:"), FormatURL(job.Link, "Job Page Link", r.Hyperlinks))
		if r.Hyperlinks {
			fmt.Fprintf(&body, " (%s)", job.Link)
		}
	} else {
		fmt.Fprintf(&body, "%s No link provided", pterm.Cyan("Link:"))
	}

	title := fmt.Sprintf("[%d] %s", job.ID, job.Title)
	fmt.Fprintln(r.Out, pterm.DefaultBox.WithTitle(title).Sprint(body.String()))
}

// Options renders the selectable filter values, marking the current selection
func (r *Renderer) Options(opts jobstore.Options, sel models.Selection) {
	sel = sel.Normalize()
	fmt.Fprintf(r.Out, "%s %s\n", pterm.Cyan("Level:"), markSelected(opts.Levels, sel.Level))
	fmt.Fprintf(r.Out, "%s %s\n", pterm.Cyan("Type: "), markSelected(opts.Types, sel.Type))
	fmt.Fprintf(r.Out, "%s %s\n", pterm.Cyan("Skill:"), markSelected(opts.Skills, sel.Skill))
}

func markSelected(options []string, selected string) string {
	out := make([]string, len(options))
	for i, o := range options {
		if o == selected {
			out[i] = "[" + o + "]"
		} else {
			out[i] = o
		}
	}
	return strings.Join(out, ", ")
}

// Summary renders value counts for the active view
func (r *Renderer) Summary(sum jobstore.Summary) {
	fmt.Fprintln(r.Out, utils.FormatCount(sum.Total, "job", "jobs"))
	writeCounts(r.Out, "Levels", sum.Levels)
	writeCounts(r.Out, "Types", sum.Types)
	writeCounts(r.Out, "Skills", sum.Skills)
}

func writeCounts(w io.Writer, label string, counts []jobstore.Count) {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		value := c.Value
		if value == "" {
			value = "(none)"
		}
		parts = append(parts, fmt.Sprintf("%s %s", value, humanize.Comma(int64(c.N))))
	}
	fmt.Fprintf(w, "%s %s\n", pterm.Cyan(label+":"), strings.Join(parts, ", "))
}

// Matches renders the result of a title search
func (r *Renderer) Matches(query string, jobs []models.Job) {
	if len(jobs) == 0 {
		fmt.Fprintf(r.Out, "No titles match %q.\n", query)
		return
	}
	fmt.Fprintf(r.Out, "%s matching %q\n", utils.FormatCount(len(jobs), "job", "jobs"), query)
	for _, job := range jobs {
		fmt.Fprintf(r.Out, "%s %s\n", pterm.Cyan(fmt.Sprintf("[%d]", job.ID)), job.Label())
	}
}

// Alert renders a user-visible error
func (r *Renderer) Alert(msg string) {
	fmt.Fprintln(r.Out, pterm.Error.Sprint(msg))
}

// Warning renders a user-visible warning
func (r *Renderer) Warning(msg string) {
	fmt.Fprintln(r.Out, pterm.Warning.Sprint(msg))
}

// Message renders a plain informational line
func (r *Renderer) Message(msg string) {
	fmt.Fprintln(r.Out, msg)
}

// postedAge describes how long ago a job was posted, relative to r.Now
func (r *Renderer) postedAge(job models.Job) string {
	minutes, err := job.PostedMinutes()
	if err != nil {
		raw := job.Posted
		if raw == "" {
			raw = "unknown"
		}
		return ColorizeAge(raw, 0, false)
	}

	now := r.now()
	then := now.Add(-ageDuration(minutes))
	return ColorizeAge(humanize.RelTime(then, now, "ago", "from now"), minutes, true)
}

// Largest minute count a time.Duration can hold
const maxAgeMinutes = math.MaxInt64 / int64(time.Minute)

// ageDuration converts minutes to a duration, clamped to the representable range
func ageDuration(minutes int) time.Duration {
	m := int64(minutes)
	switch {
	case m > maxAgeMinutes:
		m = maxAgeMinutes
	case m < -maxAgeMinutes:
		m = -maxAgeMinutes
	}
	return time.Duration(m) * time.Minute
}

func (r *Renderer) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
