package registration

// SearchQuery holds the optional search filters. Empty means unset.
type SearchQuery struct {
	RegistrationNumber string
	FirstName          string
	LastName           string
}

// SearchField names one filter of a SearchQuery.
type SearchField string

const (
	SearchRegistrationNumber SearchField = "registrationNumber"
	SearchFirstName          SearchField = "firstName"
	SearchLastName           SearchField = "lastName"
)

// SearchFields lists the filters in form order.
var SearchFields = []SearchField{SearchRegistrationNumber, SearchFirstName, SearchLastName}

func (f SearchField) Label() string {
	switch f {
	case SearchRegistrationNumber:
		return "Registration number"
	case SearchFirstName:
		return "First name"
	case SearchLastName:
		return "Last name"
	}
	return string(f)
}

func (q *SearchQuery) ref(f SearchField) *string {
	switch f {
	case SearchRegistrationNumber:
		return &q.RegistrationNumber
	case SearchFirstName:
		return &q.FirstName
	case SearchLastName:
		return &q.LastName
	}
	panic("registration: unknown search field " + string(f))
}

// Get returns the value of filter f.
func (q *SearchQuery) Get(f SearchField) string { return *q.ref(f) }

// Set replaces the value of filter f.
func (q *SearchQuery) Set(f SearchField, v string) { *q.ref(f) = v }

// SearchResult is one matched employee.
type SearchResult struct {
	RegistrationNumber string
	FirstName          string
	LastName           string
	Email              string
	Phone              string
}

// Searcher answers employee searches.
type Searcher interface {
	Search(SearchQuery) []SearchResult
}

// MockSearcher is a stub boundary: there is no employee store, so it returns
// the same fixed record for every query and applies no filtering at all.
// Callers expecting real matching semantics must plug in their own Searcher.
type MockSearcher struct{}

func (MockSearcher) Search(SearchQuery) []SearchResult {
	return []SearchResult{{
		RegistrationNumber: "EMP123456",
		FirstName:          "Lionel",
		LastName:           "Messi",
		Email:              "messi@barcelona.com",
		Phone:              "1234567890",
	}}
}
