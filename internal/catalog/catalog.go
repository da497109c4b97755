// Package catalog holds the fixed option sets offered by the registration
// form: predefined skills, experience bands and education levels.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

// Other is the sentinel entry that opens custom-skill entry instead of being
// added as a skill.
const Other = "Other"

// Catalog is immutable once built.
type Catalog struct {
	skills     []string
	experience []string
	education  []string
}

type file struct {
	Skills     []string `yaml:"skills"`
	Experience []string `yaml:"experience"`
	Education  []string `yaml:"education"`
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		skills:     []string{"JavaScript", "Python", "Java", "C++", "React", "Node.js"},
		experience: []string{"0-2 years", "2-5 years", "5-8 years", "8+ years"},
		education:  []string{"MCA", "Bachelor", "Master"},
	}
}

// New builds a catalog from explicit lists. Blank and duplicate entries are
// dropped, and so is the Other sentinel when listed as a skill.
func New(skills, experience, education []string) Catalog {
	return Catalog{
		skills:     clean(skills, Other),
		experience: clean(experience, ""),
		education:  clean(education, ""),
	}
}

// LoadFile reads a YAML catalog. Sections left out of the file keep their
// built-in values.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	def := Default()
	if len(f.Skills) == 0 {
		f.Skills = def.skills
	}
	if len(f.Experience) == 0 {
		f.Experience = def.experience
	}
	if len(f.Education) == 0 {
		f.Education = def.education
	}
	c := New(f.Skills, f.Experience, f.Education)
	if len(c.skills) == 0 {
		return Catalog{}, fmt.Errorf("parse catalog: no usable skills")
	}
	return c, nil
}

// Skills returns the predefined skills without the sentinel.
func (c Catalog) Skills() []string { return append([]string(nil), c.skills...) }

// Options returns the skills followed by the Other sentinel, in display order.
func (c Catalog) Options() []string {
	out := make([]string, 0, len(c.skills)+1)
	out = append(out, c.skills...)
	return append(out, Other)
}

func (c Catalog) Experience() []string { return append([]string(nil), c.experience...) }

func (c Catalog) Education() []string { return append([]string(nil), c.education...) }

// IsOther reports whether name is the custom-entry sentinel.
func IsOther(name string) bool { return name == Other }

// Suggest returns the predefined skill closest to text when it is a likely
// misspelling of one, e.g. "Pyhton" -> "Python". Exact matches (ignoring
// case) are returned as-is; anything further than a third of the word away
// yields "".
func (c Catalog) Suggest(text string) string {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return ""
	}
	best, bestDist := "", -1
	for _, s := range c.skills {
		d := levenshtein.ComputeDistance(q, strings.ToLower(s))
		if d == 0 {
			return s
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = s, d
		}
	}
	limit := max(1, len([]rune(q))/3)
	if bestDist > limit {
		return ""
	}
	return best
}

func clean(in []string, reject string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || s == reject || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
