package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mbenitez/comercios/internal/domain"
)

type AccountRepo struct{ db *gorm.DB }

func NewAccountRepo(db *gorm.DB) *AccountRepo { return &AccountRepo{db: db} }

func (r *AccountRepo) Create(ctx context.Context, accountNumber, bankCode string, bankID int64) (int64, error) {
	acc := domain.Account{
		AccountNumber: accountNumber,
		BankCode:      bankCode,
		BankID:        bankID,
	}
	if err := r.db.WithContext(ctx).Create(&acc).Error; err != nil {
		return 0, err
	}
	return acc.ID, nil
}
