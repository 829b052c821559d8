// Package models contains database model definitions.
package models

// Setting is one named settings record. Value holds the encoded record as stored by its owner.
type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"unique"`
	Value []byte `gorm:"type:blob"`
}
