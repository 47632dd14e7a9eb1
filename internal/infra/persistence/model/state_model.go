// Package model contains the persistence-layer representations of the
// domain's durable local state.
package model

import "time"

// StateEntryModel is one well-known key of the local state store holding a
// whole serialized value. Writes always replace the full value; the keys
// are independent and share no transactional guarantee.
type StateEntryModel struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name.
func (StateEntryModel) TableName() string {
	return "local_state"
}

// Well-known state keys.
const (
	KeyCart         = "cart"
	KeyRecentOrders = "recentOrders"
	KeySession      = "session"
)
