package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
)

// transactionStore persists transaction aggregates with GORM.
type transactionStore struct {
	db *gorm.DB
}

// NewTransactionStore creates a new TransactionStore.
func NewTransactionStore(db *gorm.DB) TransactionStore {
	return &transactionStore{db: db}
}

// Load retrieves a transaction with its elements in stored (id) order. If
// types are given, the transaction must be one of them.
func (s *transactionStore) Load(id uint, types ...models.TransactionType) (*models.Transaction, error) {
	var t models.Transaction
	q := s.db.Preload("Elements", func(db *gorm.DB) *gorm.DB {
		return db.Order("elements.id ASC")
	})
	if len(types) > 0 {
		q = q.Where("type IN ?", types)
	}
	if err := q.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &t, nil
}

// Save persists the transaction and its merged elements atomically.
func (s *transactionStore) Save(t *models.Transaction) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.SaveWithDB(tx, t)
	})
}

// SaveWithDB persists the transaction with a given database connection
// (useful when the caller already holds a database transaction). It refuses
// to write an unbalanced aggregate, deletes tombstoned elements, writes the
// remaining elements in order, and back-fills parent ids for tax lines whose
// parent was only just assigned an id.
func (s *transactionStore) SaveWithDB(tx *gorm.DB, t *models.Transaction) error {
	if err := t.CheckBalanced(); err != nil {
		return err
	}

	if err := tx.Omit(clause.Associations).Save(t).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if ids := t.TombstonedElementIDs(); len(ids) > 0 {
		if err := tx.Where("id IN ?", ids).Delete(&models.Element{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	for i := range t.Elements {
		e := &t.Elements[i]
		e.TransactionID = t.ID
		if err := tx.Save(e).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	// Tax lines merged in the same pass as their parent could not know the
	// parent's id until now.
	for _, i := range t.ResolvePendingParents() {
		e := &t.Elements[i]
		if err := tx.Model(&models.Element{}).Where("id = ?", e.ID).
			Update("parent_id", e.ParentID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return nil
}

// Delete removes a transaction and all of its elements.
func (s *transactionStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Transaction{}, id)
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrTransactionNotFound
		}
		if err := tx.Where("transaction_id = ?", id).Delete(&models.Element{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// List retrieves a paginated list of transactions of the given types, most
// recent first. Elements are not loaded.
func (s *transactionStore) List(types []models.TransactionType, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{})
	if len(types) > 0 {
		base = base.Where("type IN ?", types)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListSettlements retrieves the transactions holding an element that settles
// the given transaction, oldest first, with elements loaded.
func (s *transactionStore) ListSettlements(settleID uint) ([]models.Transaction, error) {
	sub := s.db.Model(&models.Element{}).
		Select("transaction_id").
		Where("settle_id = ?", settleID)

	var settlements []models.Transaction
	if err := s.db.Where("id IN (?)", sub).
		Preload("Elements", func(db *gorm.DB) *gorm.DB {
			return db.Order("elements.id ASC")
		}).
		Order("date ASC, id ASC").
		Find(&settlements).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return settlements, nil
}
