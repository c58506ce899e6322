package department

import (
	"fmt"
	"strings"
)

// Department is a top-level partition of the store catalog.
// Aliases and Keywords are matched in declaration order, so order matters.
type Department struct {
	Code          string   `json:"code"`
	FullName      string   `json:"fullName"`
	Aliases       []string `json:"aliases"`
	SubCategories []string `json:"subCategories"`
	Keywords      []string `json:"keywords"`
}

// HasSubCategory reports whether name is one of the department's sub-categories (case-insensitive)
// and returns the canonical spelling.
func (d *Department) HasSubCategory(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, sc := range d.SubCategories {
		if strings.EqualFold(sc, name) {
			return sc, true
		}
	}
	return "", false
}

// Catalog is the immutable, ordered set of departments.
// It is safe for concurrent readers.
type Catalog struct {
	departments []Department
	byCode      map[string]int
	byName      map[string]int // lower-cased code, full name and aliases
}

// NewCatalog validates the departments and builds the lookup tables.
func NewCatalog(departments []Department) (*Catalog, error) {
	c := &Catalog{
		departments: make([]Department, len(departments)),
		byCode:      make(map[string]int, len(departments)),
		byName:      make(map[string]int),
	}

	for i, d := range departments {
		if strings.TrimSpace(d.Code) == "" {
			return nil, fmt.Errorf("department #%d: empty code", i)
		}
		if strings.TrimSpace(d.FullName) == "" {
			return nil, fmt.Errorf("department %s: empty full name", d.Code)
		}

		code := strings.ToLower(d.Code)
		if _, dup := c.byCode[code]; dup {
			return nil, fmt.Errorf("department %s: duplicate code", d.Code)
		}
		c.byCode[code] = i

		seenSub := make(map[string]struct{}, len(d.SubCategories))
		for _, sc := range d.SubCategories {
			key := strings.ToLower(sc)
			if _, dup := seenSub[key]; dup {
				return nil, fmt.Errorf("department %s: duplicate sub-category %q", d.Code, sc)
			}
			seenSub[key] = struct{}{}
		}

		for _, alias := range d.Aliases {
			key := strings.ToLower(strings.TrimSpace(alias))
			if key == "" {
				return nil, fmt.Errorf("department %s: empty alias", d.Code)
			}
			if owner, dup := c.byName[key]; dup && owner != i {
				return nil, fmt.Errorf("alias %q claimed by both %s and %s", alias, departments[owner].Code, d.Code)
			}
			c.byName[key] = i
		}

		// Code and full name resolve too, unless another department already claims them as alias.
		for _, name := range []string{d.Code, d.FullName} {
			key := strings.ToLower(name)
			if owner, dup := c.byName[key]; dup && owner != i {
				return nil, fmt.Errorf("name %q claimed by both %s and %s", name, departments[owner].Code, d.Code)
			}
			c.byName[key] = i
		}

		c.departments[i] = clone(d)
	}

	return c, nil
}

// MustCatalog is NewCatalog that panics on invalid data.
func MustCatalog(departments []Department) *Catalog {
	c, err := NewCatalog(departments)
	if err != nil {
		panic("department catalog: " + err.Error())
	}
	return c
}

// List returns the departments in declaration order.
func (c *Catalog) List() []Department {
	out := make([]Department, len(c.departments))
	for i, d := range c.departments {
		out[i] = clone(d)
	}
	return out
}

// ByCode finds a department by its code (case-insensitive).
func (c *Catalog) ByCode(code string) (*Department, bool) {
	i, ok := c.byCode[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, false
	}
	d := clone(c.departments[i])
	return &d, true
}

// Resolve maps a code, full name or alias to its department.
func (c *Catalog) Resolve(name string) (*Department, bool) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	d := clone(c.departments[i])
	return &d, true
}

// FullName translates a department code to the full name stored on products.
func (c *Catalog) FullName(code string) (string, bool) {
	d, ok := c.ByCode(code)
	if !ok {
		return "", false
	}
	return d.FullName, true
}

// FindSubCategory looks a sub-category up across all departments.
func (c *Catalog) FindSubCategory(name string) (string, bool) {
	for i := range c.departments {
		if sc, ok := c.departments[i].HasSubCategory(name); ok {
			return sc, true
		}
	}
	return "", false
}

func clone(d Department) Department {
	return Department{
		Code:          d.Code,
		FullName:      d.FullName,
		Aliases:       append([]string(nil), d.Aliases...),
		SubCategories: append([]string(nil), d.SubCategories...),
		Keywords:      append([]string(nil), d.Keywords...),
	}
}
