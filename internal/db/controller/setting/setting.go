// Package setting stores named settings records, one row per name.
package setting

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/notedraft/notedraft/internal/db/models"
)

var (
	// ErrSettingNotFound is returned when no row exists for the name.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned for an empty record name.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

func check(db *gorm.DB, name string) error {
	switch {
	case db == nil:
		return ErrDBNil
	case name == "":
		return ErrSettingNameEmpty
	default:
		return nil
	}
}

// Value returns the stored value of name.
func Value(db *gorm.DB, name string) ([]byte, error) {
	if err := check(db, name); err != nil {
		return nil, err
	}

	var s models.Setting

	err := db.Select("value").Where(&models.Setting{Name: name}).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, err
	}

	return s.Value, nil
}

// Set writes value under name in a single statement, inserting the row or
// replacing the value of the existing one.
func Set(db *gorm.DB, name string, value []byte) error {
	if err := check(db, name); err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.Setting{Name: name, Value: value}).Error
}

// Delete removes the row of name.
func Delete(db *gorm.DB, name string) error {
	if err := check(db, name); err != nil {
		return err
	}

	result := db.Where(&models.Setting{Name: name}).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
