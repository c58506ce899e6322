package specification

import "gorm.io/gorm"

type ByOrderStatus struct {
	Status string
}

func (s ByOrderStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByReference matches the human-facing ORD-/CUST- identifier.
type ByReference struct {
	Reference string
}

func (s ByReference) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reference = ?", s.Reference)
}
