package specification

import "gorm.io/gorm"

type ByChannel struct {
	Channel string
}

func (s ByChannel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("channel = ?", s.Channel)
}

type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}
