// Package registration owns the state of the employee registration form:
// the draft, the skill-selection sub-state, the search query and the active
// mode. Every user interaction maps to one Controller method; the rendering
// layer holds no form state of its own.
package registration

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/staffdesk/internal/catalog"
)

// Mode selects which form is active.
type Mode string

const (
	ModeRegistration Mode = "registration"
	ModeSearch       Mode = "search"
)

// SkillEntry is the state of the custom-skill sub-flow.
type SkillEntry string

const (
	SkillEntryIdle           SkillEntry = "idle"
	SkillEntryAwaitingCustom SkillEntry = "awaitingCustomSkill"
)

const defaultRegistrationPrefix = "EMP"

// Controller is not safe for concurrent use; it is driven from a single
// event loop.
type Controller struct {
	catalog  catalog.Catalog
	prefix   string
	numbers  NumberSource
	searcher Searcher
	notifier Notifier
	log      *zap.Logger

	mode    Mode
	draft   Draft
	pending string
	entry   SkillEntry
	query   SearchQuery
	results []SearchResult
}

// Option configures a Controller.
type Option func(*Controller)

func WithCatalog(c catalog.Catalog) Option { return func(ct *Controller) { ct.catalog = c } }

// WithPrefix sets the registration number prefix. Blank keeps the default.
func WithPrefix(p string) Option {
	return func(ct *Controller) {
		if p != "" {
			ct.prefix = p
		}
	}
}

func WithNumberSource(n NumberSource) Option { return func(ct *Controller) { ct.numbers = n } }

func WithSearcher(s Searcher) Option { return func(ct *Controller) { ct.searcher = s } }

func WithNotifier(n Notifier) Option { return func(ct *Controller) { ct.notifier = n } }

func WithLogger(l *zap.Logger) Option { return func(ct *Controller) { ct.log = l } }

// New returns a controller in registration mode with an empty draft.
func New(opts ...Option) *Controller {
	c := &Controller{
		catalog:  catalog.Default(),
		prefix:   defaultRegistrationPrefix,
		numbers:  UUIDNumbers{},
		searcher: MockSearcher{},
		notifier: nopNotifier{},
		log:      zap.NewNop(),
		mode:     ModeRegistration,
		entry:    SkillEntryIdle,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) Catalog() catalog.Catalog { return c.catalog }
func (c *Controller) Mode() Mode               { return c.mode }
func (c *Controller) SkillEntry() SkillEntry   { return c.entry }
func (c *Controller) Pending() string          { return c.pending }
func (c *Controller) Query() SearchQuery       { return c.query }

// Draft returns a copy of the current draft.
func (c *Controller) Draft() Draft { return c.draft.Clone() }

// SelectedSkills returns a copy of the selected skills in insertion order.
func (c *Controller) SelectedSkills() []string {
	return append([]string(nil), c.draft.SelectedSkills...)
}

// Results returns a copy of the last search results.
func (c *Controller) Results() []SearchResult {
	return append([]SearchResult(nil), c.results...)
}

// SetField replaces a single draft field. No validation happens here.
func (c *Controller) SetField(f Field, value string) {
	c.draft.Set(f, value)
}

// SelectSkill adds a catalog skill, or opens custom entry for the Other
// sentinel. Already-selected skills are ignored.
func (c *Controller) SelectSkill(skill string) {
	if catalog.IsOther(skill) {
		c.entry = SkillEntryAwaitingCustom
		return
	}
	if skill == "" || c.draft.HasSkill(skill) {
		return
	}
	c.draft.SelectedSkills = append(c.draft.SelectedSkills, skill)
}

// SetPendingCustomSkill replaces the custom-skill buffer verbatim.
func (c *Controller) SetPendingCustomSkill(text string) {
	c.pending = text
}

// CommitCustomSkill moves the pending buffer into the selected skills and
// closes custom entry. Empty, duplicate or sentinel buffers are ignored and
// leave the state untouched. It reports whether the skill was added.
func (c *Controller) CommitCustomSkill() bool {
	skill := c.pending
	if skill == "" || catalog.IsOther(skill) || c.draft.HasSkill(skill) {
		return false
	}
	c.draft.SelectedSkills = append(c.draft.SelectedSkills, skill)
	c.pending = ""
	c.entry = SkillEntryIdle
	return true
}

// RemoveSkill drops skill from the selection if present.
func (c *Controller) RemoveSkill(skill string) {
	skills := c.draft.SelectedSkills
	for i, s := range skills {
		if s == skill {
			c.draft.SelectedSkills = append(skills[:i:i], skills[i+1:]...)
			return
		}
	}
}

// ToggleMode switches the active form. In-progress state on both sides is kept.
func (c *Controller) ToggleMode(m Mode) {
	switch m {
	case ModeRegistration, ModeSearch:
		c.mode = m
	default:
		panic(fmt.Sprintf("registration: unknown mode %q", string(m)))
	}
}

// SubmitRegistration validates the draft. On failure it returns a
// *ValidationError listing every violated rule and keeps the draft. On
// success it returns the new registration number and resets the draft, the
// pending custom skill and the custom-entry flag.
func (c *Controller) SubmitRegistration() (string, error) {
	if msgs := Validate(c.draft); len(msgs) > 0 {
		c.log.Info("registration rejected", zap.Int("violations", len(msgs)))
		c.notifier.Notify(Notice{Kind: NoticeValidation, Messages: msgs})
		return "", &ValidationError{Messages: append([]string(nil), msgs...)}
	}

	token, err := c.numbers.Next()
	if err != nil {
		return "", fmt.Errorf("issue registration number: %w", err)
	}
	number := c.prefix + token

	c.log.Info("registration accepted",
		zap.String("registration_number", number),
		zap.Int("skills", len(c.draft.SelectedSkills)),
	)
	c.draft = Draft{}
	c.pending = ""
	c.entry = SkillEntryIdle

	c.notifier.Notify(Notice{Kind: NoticeRegistered, Messages: []string{
		"Registration successful!",
		"Your registration number is: " + number,
	}})
	return number, nil
}

// SetSearchField edits one filter of the in-progress query.
func (c *Controller) SetSearchField(f SearchField, value string) {
	c.query.Set(f, value)
}

// SubmitSearch records q and replaces the result set with whatever the
// Searcher returns. With the default MockSearcher the filters are ignored.
func (c *Controller) SubmitSearch(q SearchQuery) []SearchResult {
	c.query = q
	c.results = c.searcher.Search(q)
	c.log.Debug("search submitted", zap.Int("results", len(c.results)))
	return c.Results()
}
