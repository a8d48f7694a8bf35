package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Op is a staged write. It reports how many rows it changed.
type Op func(tx *gorm.DB) (int64, error)

// UnitOfWork collects writes and commits them together. It is not safe for
// concurrent use; create one per request.
type UnitOfWork struct {
	db  *gorm.DB
	ops []Op
}

// NewUnitOfWork creates an empty UnitOfWork over db
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Add stages an insert of entity.
func (u *UnitOfWork) Add(entity any) {
	u.Stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Create(entity)
		return res.RowsAffected, res.Error
	})
}

// Delete stages the removal of entity by primary key.
func (u *UnitOfWork) Delete(entity any) {
	u.Stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Delete(entity)
		return res.RowsAffected, res.Error
	})
}

// Stage queues an arbitrary write.
func (u *UnitOfWork) Stage(op Op) {
	u.ops = append(u.ops, op)
}

// Pending reports how many writes are staged.
func (u *UnitOfWork) Pending() int {
	return len(u.ops)
}

// SaveAll runs every staged write in one transaction. It reports whether at
// least one row changed. The queue is emptied whether or not the commit succeeds.
func (u *UnitOfWork) SaveAll(ctx context.Context) (bool, error) {
	ops := u.ops
	u.ops = nil
	if len(ops) == 0 {
		return false, nil
	}

	var changed int64
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, op := range ops {
			n, err := op(tx)
			if err != nil {
				return fmt.Errorf("staged write %d: %w", i, err)
			}
			changed += n
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed > 0, nil
}
