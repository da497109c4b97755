package registration

import (
	"regexp"
	"strings"
)

const (
	MsgPhoneDigits  = "Phone number must be exactly 10 digits"
	MsgZipRequired  = "Zip code is required"
	MsgZipDigits    = "Zip code must be exactly 6 digits"
	validationTitle = "registration rejected"
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	zipPattern   = regexp.MustCompile(`^\d{6}$`)
)

// ValidationError carries every rule the draft violated, in check order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return validationTitle + ": " + strings.Join(e.Messages, "; ")
}

// Validate runs every submit rule against d without short-circuiting and
// returns the violations in check order.
func Validate(d Draft) []string {
	var msgs []string
	if !phonePattern.MatchString(d.Phone) {
		msgs = append(msgs, MsgPhoneDigits)
	}
	switch {
	case d.ZipCode == "":
		msgs = append(msgs, MsgZipRequired)
	case !zipPattern.MatchString(d.ZipCode):
		msgs = append(msgs, MsgZipDigits)
	}
	return msgs
}
