package specification

import (
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

type product struct {
	Name        string
	Description string
}

func toSQL(t *testing.T, specs ...Specification) string {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		q := tx.Model(&product{})
		for _, s := range specs {
			q = s.Apply(q)
		}
		var out []product
		return q.Find(&out)
	})
}

func TestProductSpecificationsSQL(t *testing.T) {
	sql := toSQL(t,
		ActiveProducts{},
		ByDepartment{Department: "Civil Technology"},
		BySubCategory{SubCategory: "Materials"},
		OrderBy{Field: "rating", Desc: true},
		Pagination{Limit: 10},
	)

	for _, want := range []string{"is_active = true", "department = \"Civil Technology\"", "sub_category = \"Materials\"", "ORDER BY `rating` DESC", "LIMIT 10"} {
		if !strings.Contains(sql, want) {
			t.Errorf("sql %q does not contain %q", sql, want)
		}
	}
}

func TestProductTextSearchSQL(t *testing.T) {
	sql := toSQL(t, ActiveProducts{}, ProductTextSearch{Query: "50%_off"})

	if !strings.Contains(sql, "(name ILIKE") || !strings.Contains(sql, "OR description ILIKE") {
		t.Errorf("unexpected sql: %s", sql)
	}
	if !strings.Contains(sql, `50\%\_off`) {
		t.Errorf("wildcards not escaped: %s", sql)
	}
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"laptop":  "laptop",
		"100%":    `100\%`,
		"a_b":     `a\_b`,
		`back\sl`: `back\\sl`,
	}
	for in, want := range tests {
		if got := EscapeLike(in); got != want {
			t.Errorf("EscapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
