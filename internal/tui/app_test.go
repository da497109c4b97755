package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/staffdesk/internal/catalog"
	"github.com/jask/staffdesk/internal/registration"
)

func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func specialKey(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	numbers := registration.NumberSourceFunc(func() (string, error) { return "0001", nil })
	return New("Employee Management System", nil, registration.WithNumberSource(numbers))
}

func send(t *testing.T, a *App, msgs ...tea.Msg) {
	t.Helper()
	for _, msg := range msgs {
		next, _ := a.Update(msg)
		if next.(*App) != a {
			t.Fatal("Update returned a different model")
		}
	}
}

func typeText(t *testing.T, a *App, s string) {
	t.Helper()
	for _, r := range s {
		send(t, a, keyMsg(string(r)))
	}
}

func focusSlot(t *testing.T, a *App, k slotKind) {
	t.Helper()
	a.focusKind(k)
	if a.current().kind != k {
		t.Fatalf("could not focus slot %d", k)
	}
}

func focusField(t *testing.T, a *App, f registration.Field) {
	t.Helper()
	for i, s := range a.slots() {
		if s.kind == slotInput && s.field == f {
			a.regFocus = i
			a.refocus()
			return
		}
	}
	t.Fatalf("field %s has no slot", f)
}

func fillRequired(t *testing.T, a *App) {
	t.Helper()
	values := map[registration.Field]string{
		registration.FieldFirstName: "Ada",
		registration.FieldLastName:  "Lovelace",
		registration.FieldEmail:     "ada@example.com",
		registration.FieldPhone:     "1234567890",
		registration.FieldZipCode:   "560001",
	}
	for _, f := range textFields {
		if v, ok := values[f]; ok {
			focusField(t, a, f)
			typeText(t, a, v)
		}
	}
	focusSlot(t, a, slotEducation)
	send(t, a, specialKey(tea.KeyRight))
	focusSlot(t, a, slotExperience)
	send(t, a, specialKey(tea.KeyRight))
}

func TestTypingUpdatesDraft(t *testing.T) {
	a := newTestApp(t)
	if got := a.current(); got.kind != slotInput || got.field != registration.FieldFirstName {
		t.Fatalf("initial focus = %+v, want first name input", got)
	}
	typeText(t, a, "Ada")
	send(t, a, specialKey(tea.KeyTab))
	send(t, a, specialKey(tea.KeyTab))
	typeText(t, a, "Lovelace")

	d := a.Controller().Draft()
	if d.FirstName != "Ada" {
		t.Fatalf("first name = %q, want Ada", d.FirstName)
	}
	if d.MiddleName != "" {
		t.Fatalf("middle name = %q, want empty", d.MiddleName)
	}
	if d.LastName != "Lovelace" {
		t.Fatalf("last name = %q, want Lovelace", d.LastName)
	}
}

func TestEnterOnInputAdvancesFocus(t *testing.T) {
	a := newTestApp(t)
	send(t, a, specialKey(tea.KeyEnter))
	if got := a.current(); got.field != registration.FieldMiddleName {
		t.Fatalf("focus = %+v, want middle name", got)
	}
	send(t, a, specialKey(tea.KeyShiftTab))
	if got := a.current(); got.field != registration.FieldFirstName {
		t.Fatalf("focus = %+v, want first name", got)
	}
}

func TestCycleEducationAndExperience(t *testing.T) {
	a := newTestApp(t)
	focusSlot(t, a, slotEducation)
	send(t, a, specialKey(tea.KeyRight), specialKey(tea.KeyRight))
	if got := a.Controller().Draft().Education; got != "Bachelor" {
		t.Fatalf("education = %q, want Bachelor", got)
	}
	send(t, a, specialKey(tea.KeyLeft), specialKey(tea.KeyLeft))
	if got := a.Controller().Draft().Education; got != "Master" {
		t.Fatalf("education wrap = %q, want Master", got)
	}

	focusSlot(t, a, slotExperience)
	send(t, a, specialKey(tea.KeyLeft))
	if got := a.Controller().Draft().Experience; got != "8+ years" {
		t.Fatalf("experience = %q, want 8+ years", got)
	}
}

func TestSelectSkillsAndRemoveTag(t *testing.T) {
	a := newTestApp(t)
	focusSlot(t, a, slotSkills)
	send(t, a, specialKey(tea.KeyEnter))              // JavaScript
	send(t, a, specialKey(tea.KeyRight), keyMsg(" ")) // Python
	send(t, a, specialKey(tea.KeyEnter))              // Python again

	got := a.Controller().SelectedSkills()
	if strings.Join(got, ",") != "JavaScript,Python" {
		t.Fatalf("skills = %v", got)
	}

	focusSlot(t, a, slotTags)
	send(t, a, keyMsg("x"))
	got = a.Controller().SelectedSkills()
	if strings.Join(got, ",") != "Python" {
		t.Fatalf("after remove skills = %v", got)
	}
	send(t, a, specialKey(tea.KeyDelete))
	if n := len(a.Controller().SelectedSkills()); n != 0 {
		t.Fatalf("expected no skills, got %d", n)
	}
	if a.current().kind != slotSkills {
		t.Fatalf("focus should return to skills when tags vanish, got %d", a.current().kind)
	}
}

func TestOtherOpensCustomEntry(t *testing.T) {
	a := newTestApp(t)
	focusSlot(t, a, slotSkills)
	a.skillCursor = len(a.Controller().Catalog().Options()) - 1
	send(t, a, specialKey(tea.KeyEnter))

	if a.Controller().SkillEntry() != registration.SkillEntryAwaitingCustom {
		t.Fatal("expected custom entry to open")
	}
	if a.current().kind != slotCustom {
		t.Fatalf("focus = %d, want custom input", a.current().kind)
	}
	for _, s := range a.Controller().SelectedSkills() {
		if s == catalog.Other {
			t.Fatal("sentinel must not be selected")
		}
	}

	send(t, a, specialKey(tea.KeyEnter)) // empty buffer: no-op
	if a.Controller().SkillEntry() != registration.SkillEntryAwaitingCustom {
		t.Fatal("empty commit must not close custom entry")
	}

	typeText(t, a, "Pyhton")
	if a.Controller().Pending() != "Pyhton" {
		t.Fatalf("pending = %q", a.Controller().Pending())
	}
	if !strings.Contains(a.View(), "did you mean Python?") {
		t.Fatalf("expected suggestion hint in view:\n%s", a.View())
	}

	send(t, a, specialKey(tea.KeyEnter))
	if got := a.Controller().SelectedSkills(); len(got) != 1 || got[0] != "Pyhton" {
		t.Fatalf("skills = %v, want [Pyhton]", got)
	}
	if a.Controller().SkillEntry() != registration.SkillEntryIdle {
		t.Fatal("commit should close custom entry")
	}
	if a.custom.Value() != "" {
		t.Fatalf("custom input = %q, want empty", a.custom.Value())
	}
}

func TestSubmitBlockedByMissingRequiredFields(t *testing.T) {
	a := newTestApp(t)
	typeText(t, a, "Ada")
	send(t, a, specialKey(tea.KeyCtrlS))

	if a.notice == nil {
		t.Fatal("expected a notice")
	}
	if a.notice.Kind != registration.NoticeValidation {
		t.Fatalf("notice kind = %q", a.notice.Kind)
	}
	joined := strings.Join(a.notice.Messages, "\n")
	for _, want := range []string{"Last name is required", registration.MsgPhoneDigits, registration.MsgZipRequired} {
		if !strings.Contains(joined, want) {
			t.Fatalf("notice missing %q:\n%s", want, joined)
		}
	}
	if a.Controller().Draft().FirstName != "Ada" {
		t.Fatal("draft must survive a blocked submit")
	}
}

func TestNoticeBlocksInputUntilDismissed(t *testing.T) {
	a := newTestApp(t)
	send(t, a, specialKey(tea.KeyCtrlS))
	if a.notice == nil {
		t.Fatal("expected a notice")
	}
	view := a.View()
	if !strings.Contains(view, registration.MsgZipRequired) || !strings.Contains(view, registration.MsgPhoneDigits) {
		t.Fatalf("notice should list every message:\n%s", view)
	}

	typeText(t, a, "zzz")
	send(t, a, specialKey(tea.KeyCtrlF))
	if a.Controller().Draft().FirstName != "" {
		t.Fatal("typing must be ignored while a notice is shown")
	}
	if a.Controller().Mode() != registration.ModeRegistration {
		t.Fatal("mode toggle must be ignored while a notice is shown")
	}

	send(t, a, specialKey(tea.KeyEsc))
	if a.notice != nil {
		t.Fatal("esc should dismiss the notice")
	}
}

func TestSubmitValidationErrorFromController(t *testing.T) {
	a := newTestApp(t)
	fillRequired(t, a)
	focusField(t, a, registration.FieldPhone)
	send(t, a, specialKey(tea.KeyBackspace))
	send(t, a, specialKey(tea.KeyCtrlS))

	if a.notice == nil {
		t.Fatal("expected validation notice")
	}
	if len(a.notice.Messages) != 1 || a.notice.Messages[0] != registration.MsgPhoneDigits {
		t.Fatalf("messages = %v, want only phone rule", a.notice.Messages)
	}
	if a.Controller().Draft().Phone != "123456789" {
		t.Fatalf("phone = %q, draft must be kept", a.Controller().Draft().Phone)
	}
}

func TestSubmitSuccessResetsForm(t *testing.T) {
	a := newTestApp(t)
	fillRequired(t, a)
	focusSlot(t, a, slotSkills)
	send(t, a, specialKey(tea.KeyEnter))
	focusSlot(t, a, slotSubmit)
	send(t, a, specialKey(tea.KeyEnter))

	if a.notice == nil || a.notice.Kind != registration.NoticeRegistered {
		t.Fatalf("expected registered notice, got %+v", a.notice)
	}
	if !strings.Contains(a.View(), "Your registration number is: EMP0001") {
		t.Fatalf("view missing registration number:\n%s", a.View())
	}
	d := a.Controller().Draft()
	if !d.IsEmpty() {
		t.Fatalf("draft not reset: %+v", d)
	}
	for f, in := range a.inputs {
		if in.Value() != "" {
			t.Fatalf("input %s = %q, want empty", f, in.Value())
		}
	}
	send(t, a, specialKey(tea.KeyEnter))
	if a.notice != nil {
		t.Fatal("enter should dismiss the notice")
	}
	if got := a.current(); got.field != registration.FieldFirstName {
		t.Fatalf("focus = %+v, want first name after reset", got)
	}
}

func TestToggleModeKeepsBothForms(t *testing.T) {
	a := newTestApp(t)
	typeText(t, a, "Ada")

	send(t, a, specialKey(tea.KeyCtrlF))
	if a.Controller().Mode() != registration.ModeSearch {
		t.Fatal("expected search mode")
	}
	typeText(t, a, "EMP9")
	if !strings.Contains(a.View(), "Search by registration number") {
		t.Fatalf("search form not rendered:\n%s", a.View())
	}

	send(t, a, specialKey(tea.KeyCtrlR))
	if a.Controller().Draft().FirstName != "Ada" {
		t.Fatal("draft lost across mode toggle")
	}
	if got := a.inputs[registration.FieldFirstName].Value(); got != "Ada" {
		t.Fatalf("first name input = %q", got)
	}

	send(t, a, specialKey(tea.KeyCtrlF))
	if got := a.Controller().Query().RegistrationNumber; got != "EMP9" {
		t.Fatalf("query lost across toggle: %q", got)
	}
}

func TestSearchShowsStubResults(t *testing.T) {
	a := newTestApp(t)
	send(t, a, specialKey(tea.KeyCtrlF))
	typeText(t, a, "nobody")
	if strings.Contains(a.View(), "Messi") {
		t.Fatal("results should not render before a search")
	}
	send(t, a, specialKey(tea.KeyCtrlS))

	view := a.View()
	for _, want := range []string{"EMP123456", "Lionel", "Messi", "messi@barcelona.com"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if q := a.Controller().Query(); q.RegistrationNumber != "nobody" {
		t.Fatalf("query = %+v", q)
	}
}

func TestQuitKey(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(specialKey(tea.KeyCtrlC))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestWindowSize(t *testing.T) {
	a := newTestApp(t)
	send(t, a, tea.WindowSizeMsg{Width: 100, Height: 40})
	if a.width != 100 {
		t.Fatalf("width = %d, want 100", a.width)
	}
}
