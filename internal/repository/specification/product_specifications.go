package specification

import (
	"strings"

	"gorm.io/gorm"
)

type ActiveProducts struct{}

func (s ActiveProducts) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// ByDepartment matches the department full name stored on products.
type ByDepartment struct {
	Department string
}

func (s ByDepartment) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("department = ?", s.Department)
}

type BySubCategory struct {
	SubCategory string
}

func (s BySubCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sub_category = ?", s.SubCategory)
}

type BySku struct {
	Sku string
}

func (s BySku) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sku = ?", s.Sku)
}

// ProductTextSearch is a case-insensitive substring match on name or description.
type ProductTextSearch struct {
	Query string
}

func (s ProductTextSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + EscapeLike(s.Query) + "%"
	return db.Where(`(name ILIKE ? ESCAPE '\' OR description ILIKE ? ESCAPE '\')`, pattern, pattern)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike makes user text literal inside a LIKE pattern.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
