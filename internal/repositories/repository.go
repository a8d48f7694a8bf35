package repositories

import (
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// snapshotOptions returns the transaction options that make a paged read
// (count + slice) see one consistent snapshot on the given database.
func snapshotOptions(db *gorm.DB) []*sql.TxOptions {
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		return []*sql.TxOptions{{Isolation: sql.LevelRepeatableRead, ReadOnly: true}}
	}
	return nil
}

// findOne runs a single-row lookup and turns "no rows" into a nil result.
func findOne[T any](query *gorm.DB) (*T, error) {
	var out T
	if err := query.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}
