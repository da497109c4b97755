package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/staffdesk/internal/registration"
)

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.title))
	b.WriteString("\n")
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")

	switch {
	case a.notice != nil:
		b.WriteString(renderNotice(*a.notice))
	case a.ctrl.Mode() == registration.ModeSearch:
		b.WriteString(a.renderSearch())
	default:
		b.WriteString(a.renderRegistration())
	}

	b.WriteString("\n\n")
	b.WriteString(a.help.View(a.keys))
	return b.String()
}

func (a *App) renderTabs() string {
	reg, search := inactiveTabStyle, inactiveTabStyle
	if a.ctrl.Mode() == registration.ModeSearch {
		search = activeTabStyle
	} else {
		reg = activeTabStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, reg.Render("Registration"), search.Render("Search"))
}

func (a *App) renderRegistration() string {
	cur := a.current()
	draft := a.ctrl.Draft()
	cat := a.ctrl.Catalog()
	var lines []string

	for _, f := range textFields {
		focused := cur.kind == slotInput && cur.field == f
		lines = append(lines, row(f.Label(), isRequired(f), focused, a.inputs[f].View()))
	}

	lines = append(lines,
		row("Education level", true, cur.kind == slotEducation,
			renderOptions(cat.Education(), draft.Education, cur.kind == slotEducation)),
		row("Experience", true, cur.kind == slotExperience,
			renderOptions(cat.Experience(), draft.Experience, cur.kind == slotExperience)),
	)

	skillsFocused := cur.kind == slotSkills
	opts := cat.Options()
	parts := make([]string, 0, len(opts))
	for i, o := range opts {
		switch {
		case skillsFocused && i == a.skillCursor:
			parts = append(parts, cursorOptionStyle.Render(o))
		case draft.HasSkill(o):
			parts = append(parts, chosenOptionStyle.Render(o))
		default:
			parts = append(parts, optionStyle.Render(o))
		}
	}
	lines = append(lines, row("Skills", true, skillsFocused, strings.Join(parts, "")))

	if a.ctrl.SkillEntry() == registration.SkillEntryAwaitingCustom {
		custom := a.custom.View()
		if hint := a.suggestion(); hint != "" {
			custom += "  " + hintStyle.Render(fmt.Sprintf("did you mean %s?", hint))
		}
		lines = append(lines, row("Custom skill", false, cur.kind == slotCustom, custom))
	}

	if len(draft.SelectedSkills) > 0 {
		tagsFocused := cur.kind == slotTags
		tags := make([]string, 0, len(draft.SelectedSkills))
		for i, s := range draft.SelectedSkills {
			if tagsFocused && i == a.tagCursor {
				tags = append(tags, cursorTagStyle.Render(s+" x"))
			} else {
				tags = append(tags, tagStyle.Render(s+" x"))
			}
		}
		lines = append(lines, row("Selected", false, tagsFocused, strings.Join(tags, " ")))
	}

	lines = append(lines, "", renderButton("Register", cur.kind == slotSubmit))
	return strings.Join(lines, "\n")
}

// suggestion returns a catalog skill the pending custom skill looks like a
// misspelling of, or "".
func (a *App) suggestion() string {
	pending := a.ctrl.Pending()
	s := a.ctrl.Catalog().Suggest(pending)
	if s == "" || s == pending {
		return ""
	}
	return s
}

func (a *App) renderSearch() string {
	cur := a.current()
	var lines []string
	for _, f := range registration.SearchFields {
		focused := cur.kind == slotSearchInput && cur.search == f
		lines = append(lines, row("Search by "+strings.ToLower(f.Label()), false, focused, a.searchInputs[f].View()))
	}
	lines = append(lines, "", renderButton("Search", cur.kind == slotSearchSubmit))

	if a.searched {
		lines = append(lines, "", renderResults(a.ctrl.Results()))
	}
	return strings.Join(lines, "\n")
}

func renderResults(results []registration.SearchResult) string {
	if len(results) == 0 {
		return mutedStyle.Render("No employees found.")
	}
	cols := []int{16, 12, 12, 24, 12}
	line := func(vals ...string) string {
		var b strings.Builder
		for i, v := range vals {
			b.WriteString(lipgloss.NewStyle().Width(cols[i]).Render(v))
		}
		return b.String()
	}
	out := []string{resultHeaderStyle.Render(line("Reg. number", "First name", "Last name", "Email", "Phone"))}
	for _, r := range results {
		out = append(out, line(r.RegistrationNumber, r.FirstName, r.LastName, r.Email, r.Phone))
	}
	return strings.Join(out, "\n")
}

func renderNotice(n registration.Notice) string {
	box, title := noticeErrStyle, noticeErrTitle.Render("Please fix the following")
	if n.Kind == registration.NoticeRegistered {
		box, title = noticeOKStyle, noticeOKTitle.Render("Registered")
	}
	body := []string{title, ""}
	body = append(body, n.Messages...)
	body = append(body, "", mutedStyle.Render("enter to continue"))
	return box.Render(strings.Join(body, "\n"))
}

func renderOptions(opts []string, chosen string, focused bool) string {
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		switch {
		case o == chosen && focused:
			parts = append(parts, cursorOptionStyle.Render("(•) "+o))
		case o == chosen:
			parts = append(parts, chosenOptionStyle.Render("(•) "+o))
		default:
			parts = append(parts, optionStyle.Render("( ) "+o))
		}
	}
	return strings.Join(parts, "")
}

func renderButton(label string, focused bool) string {
	if focused {
		return focusedButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

func row(label string, required, focused bool, value string) string {
	style := labelStyle
	if focused {
		style = focusedLabelStyle
	}
	if required {
		label += requiredMark
	}
	if w := lipgloss.Width(label) + 2; w > labelWidth {
		style = style.Width(w)
	}
	return style.Render(label) + value
}

func isRequired(f registration.Field) bool {
	switch f {
	case registration.FieldMiddleName, registration.FieldAddress1, registration.FieldAddress2, registration.FieldCity:
		return false
	}
	return true
}
