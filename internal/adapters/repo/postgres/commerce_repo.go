package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mbenitez/comercios/internal/domain"
)

type CommerceRepo struct{ db *gorm.DB }

func NewCommerceRepo(db *gorm.DB) *CommerceRepo { return &CommerceRepo{db: db} }

func (r *CommerceRepo) ExistsByRucOrAlias(ctx context.Context, ruc, alias string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Commerce{}).
		Where("(ruc = ? OR alias = ?) AND commerce_status_id = ?", ruc, alias, domain.CommerceStatusActive).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CommerceRepo) RucMatchesLegalName(ctx context.Context, ruc, legalBusinessName string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Commerce{}).
		Where("ruc = ? AND legal_business_name <> ? AND commerce_status_id = ?", ruc, legalBusinessName, domain.CommerceStatusActive).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *CommerceRepo) Create(ctx context.Context, c *domain.Commerce, accountID int64) (*domain.Commerce, error) {
	stored := *c
	stored.ID = 0
	stored.AccountID = accountID
	stored.StatusID = domain.CommerceStatusActive

	// Omit(Associations): la cuenta ya fue insertada por AccountRepo y el
	// estado es catálogo; acá sólo va la fila de commerces.
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&stored).Error; err != nil {
		// Dos requests concurrentes con el mismo alias o RUC pueden pasar el
		// pre-chequeo; el índice único es el árbitro y su violación se
		// devuelve como el mismo error de negocio que el pre-chequeo.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAliasAlreadyExists
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).First(&stored.Account, "account_id = ?", accountID).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *CommerceRepo) List(ctx context.Context) ([]domain.Commerce, error) {
	var list []domain.Commerce
	if err := r.db.WithContext(ctx).
		Preload("Account").Preload("Status").
		Order("id_commerce asc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
