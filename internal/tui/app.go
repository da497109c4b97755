package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/staffdesk/internal/registration"
)

// App is the bubbletea binding for a registration.Controller. Each key event
// maps to at most one controller operation; the App only keeps widget state
// (focus, cursors, text input buffers) mirrored from the controller.
type App struct {
	title string
	ctrl  *registration.Controller
	log   *zap.Logger
	keys  keyMap
	help  help.Model
	width int

	inputs       map[registration.Field]textinput.Model
	searchInputs map[registration.SearchField]textinput.Model
	custom       textinput.Model

	regFocus    int
	searchFocus int
	skillCursor int
	tagCursor   int
	searched    bool

	notice *registration.Notice
}

type slotKind int

const (
	slotInput slotKind = iota
	slotEducation
	slotExperience
	slotSkills
	slotCustom
	slotTags
	slotSubmit
	slotSearchInput
	slotSearchSubmit
)

type slot struct {
	kind   slotKind
	field  registration.Field
	search registration.SearchField
}

// textFields are the draft fields edited through a text input, in form order.
var textFields = []registration.Field{
	registration.FieldFirstName,
	registration.FieldMiddleName,
	registration.FieldLastName,
	registration.FieldEmail,
	registration.FieldPhone,
	registration.FieldAddress1,
	registration.FieldAddress2,
	registration.FieldCity,
	registration.FieldZipCode,
}

var placeholders = map[registration.Field]string{
	registration.FieldPhone:   "10 digits",
	registration.FieldZipCode: "6 digits",
	registration.FieldEmail:   "name@example.com",
}

// New builds the App and the controller it drives. The App registers itself
// as the controller's notifier; opts may configure anything else.
func New(title string, log *zap.Logger, opts ...registration.Option) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		title:        title,
		log:          log,
		keys:         newKeyMap(),
		help:         help.New(),
		inputs:       make(map[registration.Field]textinput.Model, len(textFields)),
		searchInputs: make(map[registration.SearchField]textinput.Model, len(registration.SearchFields)),
	}
	opts = append(opts, registration.WithNotifier(a), registration.WithLogger(log))
	a.ctrl = registration.New(opts...)

	for _, f := range textFields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[f]
		in.CharLimit = 128
		a.inputs[f] = in
	}
	for _, f := range registration.SearchFields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = "any"
		in.CharLimit = 64
		a.searchInputs[f] = in
	}
	a.custom = textinput.New()
	a.custom.Prompt = ""
	a.custom.Placeholder = "Add custom skill"
	a.custom.CharLimit = 64

	a.refocus()
	return a
}

// Controller exposes the underlying state machine.
func (a *App) Controller() *registration.Controller { return a.ctrl }

// Notify implements registration.Notifier. The notice stays up, blocking
// other input, until dismissed.
func (a *App) Notify(n registration.Notice) {
	msgs := append([]string(nil), n.Messages...)
	a.notice = &registration.Notice{Kind: n.Kind, Messages: msgs}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}
	if a.notice != nil {
		if key.Matches(msg, a.keys.Dismiss) {
			a.notice = nil
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Registration):
		a.ctrl.ToggleMode(registration.ModeRegistration)
		a.refocus()
		return a, nil
	case key.Matches(msg, a.keys.Search):
		a.ctrl.ToggleMode(registration.ModeSearch)
		a.refocus()
		return a, nil
	case key.Matches(msg, a.keys.Submit):
		a.submit()
		return a, nil
	case key.Matches(msg, a.keys.Next):
		a.moveFocus(1)
		return a, nil
	case key.Matches(msg, a.keys.Prev):
		a.moveFocus(-1)
		return a, nil
	}

	if a.ctrl.Mode() == registration.ModeSearch {
		return a.handleSearchKey(msg)
	}
	return a.handleRegistrationKey(msg)
}

func (a *App) handleRegistrationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := a.current()
	switch s.kind {
	case slotInput:
		if msg.Type == tea.KeyEnter {
			a.moveFocus(1)
			return a, nil
		}
		in := a.inputs[s.field]
		var cmd tea.Cmd
		in, cmd = in.Update(msg)
		a.inputs[s.field] = in
		if in.Value() != a.draftValue(s.field) {
			a.ctrl.SetField(s.field, in.Value())
		}
		return a, cmd

	case slotEducation, slotExperience:
		switch {
		case key.Matches(msg, a.keys.Left):
			a.cycleOption(s.field, -1)
		case key.Matches(msg, a.keys.Right):
			a.cycleOption(s.field, 1)
		case msg.Type == tea.KeyEnter:
			a.moveFocus(1)
		}
		return a, nil

	case slotSkills:
		opts := a.ctrl.Catalog().Options()
		switch {
		case key.Matches(msg, a.keys.Left):
			a.skillCursor = (a.skillCursor - 1 + len(opts)) % len(opts)
		case key.Matches(msg, a.keys.Right):
			a.skillCursor = (a.skillCursor + 1) % len(opts)
		case key.Matches(msg, a.keys.Select):
			a.ctrl.SelectSkill(opts[a.skillCursor])
			if a.ctrl.SkillEntry() == registration.SkillEntryAwaitingCustom {
				a.focusKind(slotCustom)
			}
		}
		return a, nil

	case slotCustom:
		if msg.Type == tea.KeyEnter {
			if a.ctrl.CommitCustomSkill() {
				a.custom.SetValue("")
				a.focusKind(slotSkills)
			}
			return a, nil
		}
		var cmd tea.Cmd
		a.custom, cmd = a.custom.Update(msg)
		if a.custom.Value() != a.ctrl.Pending() {
			a.ctrl.SetPendingCustomSkill(a.custom.Value())
		}
		return a, cmd

	case slotTags:
		skills := a.ctrl.SelectedSkills()
		switch {
		case key.Matches(msg, a.keys.Left):
			a.tagCursor = max(0, a.tagCursor-1)
		case key.Matches(msg, a.keys.Right):
			a.tagCursor = min(len(skills)-1, a.tagCursor+1)
		case key.Matches(msg, a.keys.Remove):
			if a.tagCursor < len(skills) {
				a.ctrl.RemoveSkill(skills[a.tagCursor])
			}
			if len(a.ctrl.SelectedSkills()) == 0 {
				a.focusKind(slotSkills)
			} else {
				a.tagCursor = min(a.tagCursor, len(a.ctrl.SelectedSkills())-1)
			}
		}
		return a, nil

	case slotSubmit:
		if key.Matches(msg, a.keys.Select) {
			a.submit()
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := a.current()
	switch s.kind {
	case slotSearchInput:
		if msg.Type == tea.KeyEnter {
			a.moveFocus(1)
			return a, nil
		}
		in := a.searchInputs[s.search]
		var cmd tea.Cmd
		in, cmd = in.Update(msg)
		a.searchInputs[s.search] = in
		a.ctrl.SetSearchField(s.search, in.Value())
		return a, cmd
	case slotSearchSubmit:
		if key.Matches(msg, a.keys.Select) {
			a.submit()
		}
	}
	return a, nil
}

func (a *App) submit() {
	if a.ctrl.Mode() == registration.ModeSearch {
		a.ctrl.SubmitSearch(a.ctrl.Query())
		a.searched = true
		return
	}

	// Blank required inputs stop the form before the controller sees it.
	draft := a.ctrl.Draft()
	if missing := draft.Missing(); len(missing) > 0 {
		msgs := append(missing, registration.Validate(draft)...)
		a.log.Debug("registration blocked by form", zap.Int("problems", len(msgs)))
		a.Notify(registration.Notice{Kind: registration.NoticeValidation, Messages: msgs})
		return
	}

	_, err := a.ctrl.SubmitRegistration()
	var verr *registration.ValidationError
	switch {
	case err == nil:
		a.syncFromController()
		a.regFocus = 0
		a.skillCursor = 0
		a.tagCursor = 0
		a.refocus()
	case errors.As(err, &verr):
		// the controller already notified
	default:
		a.log.Error("registration failed", zap.Error(err))
		a.Notify(registration.Notice{Kind: registration.NoticeValidation, Messages: []string{err.Error()}})
	}
}

// syncFromController copies controller state back into the text inputs.
func (a *App) syncFromController() {
	d := a.ctrl.Draft()
	for f, in := range a.inputs {
		in.SetValue(d.Get(f))
		a.inputs[f] = in
	}
	a.custom.SetValue(a.ctrl.Pending())
}

func (a *App) draftValue(f registration.Field) string {
	d := a.ctrl.Draft()
	return d.Get(f)
}

func (a *App) cycleOption(f registration.Field, delta int) {
	var opts []string
	if f == registration.FieldEducation {
		opts = a.ctrl.Catalog().Education()
	} else {
		opts = a.ctrl.Catalog().Experience()
	}
	if len(opts) == 0 {
		return
	}
	cur := indexOf(opts, a.draftValue(f))
	var next int
	switch {
	case cur < 0 && delta > 0:
		next = 0
	case cur < 0:
		next = len(opts) - 1
	default:
		next = (cur + delta + len(opts)) % len(opts)
	}
	a.ctrl.SetField(f, opts[next])
}

// slots lists the focusable elements of the active form. The custom-skill
// input only exists while custom entry is open, the tag row only while
// skills are selected.
func (a *App) slots() []slot {
	if a.ctrl.Mode() == registration.ModeSearch {
		out := make([]slot, 0, len(registration.SearchFields)+1)
		for _, f := range registration.SearchFields {
			out = append(out, slot{kind: slotSearchInput, search: f})
		}
		return append(out, slot{kind: slotSearchSubmit})
	}
	out := make([]slot, 0, len(textFields)+6)
	for _, f := range textFields {
		out = append(out, slot{kind: slotInput, field: f})
	}
	out = append(out,
		slot{kind: slotEducation, field: registration.FieldEducation},
		slot{kind: slotExperience, field: registration.FieldExperience},
		slot{kind: slotSkills},
	)
	if a.ctrl.SkillEntry() == registration.SkillEntryAwaitingCustom {
		out = append(out, slot{kind: slotCustom})
	}
	if len(a.ctrl.SelectedSkills()) > 0 {
		out = append(out, slot{kind: slotTags})
	}
	return append(out, slot{kind: slotSubmit})
}

func (a *App) focusPtr() *int {
	if a.ctrl.Mode() == registration.ModeSearch {
		return &a.searchFocus
	}
	return &a.regFocus
}

func (a *App) current() slot {
	slots := a.slots()
	p := a.focusPtr()
	*p = min(max(*p, 0), len(slots)-1)
	return slots[*p]
}

func (a *App) moveFocus(delta int) {
	slots := a.slots()
	p := a.focusPtr()
	*p = (*p + delta + len(slots)) % len(slots)
	a.refocus()
}

func (a *App) focusKind(k slotKind) {
	for i, s := range a.slots() {
		if s.kind == k {
			*a.focusPtr() = i
			break
		}
	}
	a.refocus()
}

// refocus points the cursor of exactly one text input at the focused slot.
func (a *App) refocus() {
	cur := a.current()
	for f, in := range a.inputs {
		if cur.kind == slotInput && cur.field == f {
			in.Focus()
		} else {
			in.Blur()
		}
		a.inputs[f] = in
	}
	for f, in := range a.searchInputs {
		if cur.kind == slotSearchInput && cur.search == f {
			in.Focus()
		} else {
			in.Blur()
		}
		a.searchInputs[f] = in
	}
	if cur.kind == slotCustom {
		a.custom.Focus()
	} else {
		a.custom.Blur()
	}
	if cur.kind == slotTags {
		a.tagCursor = min(a.tagCursor, len(a.ctrl.SelectedSkills())-1)
		a.tagCursor = max(a.tagCursor, 0)
	}
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
