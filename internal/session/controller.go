package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/jobstore"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/ui"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/utils"
	"github.com/pterm/pterm"
)

// ErrQuit is returned by Execute when the user ends the session
var ErrQuit = errors.New("quit")

// LoadFunc reads the raw contents of an import file
type LoadFunc func(ctx context.Context, path string) ([]byte, error)

// Controller maps user actions onto the job store and renders the results
type Controller struct {
	store    *jobstore.Store
	renderer *ui.Renderer
	load     LoadFunc
	logger   *pterm.Logger
}

// NewController creates a controller. A nil logger disables logging.
func NewController(store *jobstore.Store, renderer *ui.Renderer, load LoadFunc, logger *pterm.Logger) *Controller {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &Controller{
		store:    store,
		renderer: renderer,
		load:     load,
		logger:   logger,
	}
}

// AutoRender re-renders the active view after every state change
func (c *Controller) AutoRender() {
	c.store.Subscribe(func(s jobstore.State) {
		c.renderer.List(s.View, len(s.Collection))
		if n := len(s.Unparsed); n > 0 {
			c.renderer.Warning(fmt.Sprintf("%s an unrecognised posted time and sorted last",
				utils.FormatCount(n, "job has", "jobs have")))
		}
	})
}

// Load reads path and imports it. The previous collection is kept on any error.
func (c *Controller) Load(ctx context.Context, path string) error {
	c.logger.Debug("Loading job file", c.logger.Args("path", path))

	raw, err := c.load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}
	return c.store.Import(raw)
}

// Filter applies sel to the whole collection and warns about selectors
// that no loaded job carries
func (c *Controller) Filter(sel models.Selection) {
	c.store.Filter(sel)
	if missing := c.store.State().Options.Unavailable(sel); len(missing) > 0 {
		c.renderer.Warning(fmt.Sprintf("No loaded job has %s", strings.Join(missing, " or ")))
	}
}

// Sort reorders the active view
func (c *Controller) Sort(key models.SortKey) error {
	_, err := c.store.Sort(key)
	return err
}

// Reset restores the full collection and clears the filters
func (c *Controller) Reset() {
	c.store.Reset()
}

// List renders the active view
func (c *Controller) List() {
	s := c.store.State()
	c.renderer.List(s.View, len(s.Collection))
	if n := len(s.Unparsed); n > 0 {
		c.renderer.Warning(fmt.Sprintf("%s an unrecognised posted time and sorted last",
			utils.FormatCount(n, "job has", "jobs have")))
	}
}

// Show renders the details of the job with the given ID
func (c *Controller) Show(id int) error {
	job, ok := c.store.Lookup(id)
	if !ok {
		return fmt.Errorf("no job with ID %d", id)
	}
	c.renderer.Detail(job)
	return nil
}

// Find renders the jobs whose titles match query
func (c *Controller) Find(query string) {
	c.renderer.Matches(query, c.store.Find(query))
}

// Options renders the filter values available for the loaded collection
func (c *Controller) Options() {
	s := c.store.State()
	c.renderer.Options(s.Options, s.Selection)
}

// Summary renders value counts for the active view
func (c *Controller) Summary() {
	c.renderer.Summary(c.store.Summary())
}

// Report shows err to the user. Import failures produce the fixed parse alert.
func (c *Controller) Report(err error) {
	var importErr *jobstore.ImportError
	if errors.As(err, &importErr) {
		c.logger.Debug("Import failed", c.logger.Args("error", err))
		c.renderer.Alert(ui.ImportAlert)
		return
	}
	c.renderer.Alert(err.Error())
}
