package setting

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Record binds a single named setting to a database so it can be used as a
// settings store: Load returns nil data while the row does not exist and Save
// replaces the whole value.
type Record struct {
	DB   *gorm.DB
	Name string
}

// Load returns the stored value of the record.
func (r Record) Load(ctx context.Context) ([]byte, error) {
	if r.DB == nil {
		return nil, ErrDBNil
	}

	data, err := Value(r.DB.WithContext(ctx), r.Name)
	if errors.Is(err, ErrSettingNotFound) {
		return nil, nil
	}

	return data, err
}

// Save writes data as the value of the record.
func (r Record) Save(ctx context.Context, data []byte) error {
	if r.DB == nil {
		return ErrDBNil
	}

	return Set(r.DB.WithContext(ctx), r.Name, data)
}

// Reset removes the record. A record that was never stored is not an error.
func (r Record) Reset(ctx context.Context) error {
	if r.DB == nil {
		return ErrDBNil
	}

	err := Delete(r.DB.WithContext(ctx), r.Name)
	if errors.Is(err, ErrSettingNotFound) {
		return nil
	}

	return err
}
