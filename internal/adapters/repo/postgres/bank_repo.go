package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mbenitez/comercios/internal/domain"
)

type BankRepo struct{ db *gorm.DB }

func NewBankRepo(db *gorm.DB) *BankRepo { return &BankRepo{db: db} }

func (r *BankRepo) FindActiveByCode(ctx context.Context, bankCode string) (*domain.Bank, error) {
	var b domain.Bank
	if err := r.db.WithContext(ctx).First(&b, "bank_code = ? AND status_id = ?", bankCode, domain.BankStatusActive).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// IsActiveCode: banco inexistente o inactivo no es un error, es false.
func (r *BankRepo) IsActiveCode(ctx context.Context, bankCode string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Bank{}).
		Where("bank_code = ? AND status_id = ?", bankCode, domain.BankStatusActive).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
