package registration

import (
	"fmt"
	"net/mail"
	"strings"
)

// Field names a text attribute of a Draft.
type Field string

const (
	FieldFirstName  Field = "firstName"
	FieldMiddleName Field = "middleName"
	FieldLastName   Field = "lastName"
	FieldEmail      Field = "email"
	FieldPhone      Field = "phone"
	FieldAddress1   Field = "address1"
	FieldAddress2   Field = "address2"
	FieldCity       Field = "city"
	FieldExperience Field = "experience"
	FieldZipCode    Field = "zipCode"
	FieldEducation  Field = "education"
)

// Fields lists every draft text field in form order.
var Fields = []Field{
	FieldFirstName, FieldMiddleName, FieldLastName, FieldEmail, FieldPhone,
	FieldAddress1, FieldAddress2, FieldCity, FieldZipCode, FieldEducation, FieldExperience,
}

// Label is the human-readable name of the field.
func (f Field) Label() string {
	switch f {
	case FieldFirstName:
		return "First name"
	case FieldMiddleName:
		return "Middle name"
	case FieldLastName:
		return "Last name"
	case FieldEmail:
		return "Email"
	case FieldPhone:
		return "Phone number"
	case FieldAddress1:
		return "Address line 1"
	case FieldAddress2:
		return "Address line 2"
	case FieldCity:
		return "City"
	case FieldExperience:
		return "Experience"
	case FieldZipCode:
		return "Zip code"
	case FieldEducation:
		return "Education level"
	}
	return string(f)
}

// Draft is the in-progress registration record.
type Draft struct {
	FirstName      string
	MiddleName     string
	LastName       string
	Email          string
	Phone          string
	Address1       string
	Address2       string
	City           string
	Experience     string
	ZipCode        string
	Education      string
	SelectedSkills []string
}

// Get returns the value of f. Unknown fields panic.
func (d *Draft) Get(f Field) string {
	return *d.ref(f)
}

// Set replaces the value of f. Unknown fields panic.
func (d *Draft) Set(f Field, value string) {
	*d.ref(f) = value
}

func (d *Draft) ref(f Field) *string {
	switch f {
	case FieldFirstName:
		return &d.FirstName
	case FieldMiddleName:
		return &d.MiddleName
	case FieldLastName:
		return &d.LastName
	case FieldEmail:
		return &d.Email
	case FieldPhone:
		return &d.Phone
	case FieldAddress1:
		return &d.Address1
	case FieldAddress2:
		return &d.Address2
	case FieldCity:
		return &d.City
	case FieldExperience:
		return &d.Experience
	case FieldZipCode:
		return &d.ZipCode
	case FieldEducation:
		return &d.Education
	}
	panic(fmt.Sprintf("registration: unknown draft field %q", string(f)))
}

// HasSkill reports whether skill is already selected.
func (d *Draft) HasSkill(skill string) bool {
	for _, s := range d.SelectedSkills {
		if s == skill {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (d Draft) Clone() Draft {
	d.SelectedSkills = append([]string(nil), d.SelectedSkills...)
	return d
}

// IsEmpty reports whether every field is blank and no skill is selected.
func (d *Draft) IsEmpty() bool {
	for _, f := range Fields {
		if d.Get(f) != "" {
			return false
		}
	}
	return len(d.SelectedSkills) == 0
}

var requiredFields = []Field{
	FieldFirstName, FieldLastName, FieldEmail, FieldPhone, FieldEducation, FieldExperience,
}

// Missing lists problems the form itself refuses to submit with: blank
// required inputs and a malformed email. The zip code and the phone and zip
// formats are checked by SubmitRegistration.
func (d *Draft) Missing() []string {
	var out []string
	for _, f := range requiredFields {
		if strings.TrimSpace(d.Get(f)) == "" {
			out = append(out, f.Label()+" is required")
		}
	}
	if e := strings.TrimSpace(d.Email); e != "" {
		if addr, err := mail.ParseAddress(e); err != nil || addr.Address != e {
			out = append(out, "Email must be a valid address")
		}
	}
	return out
}
