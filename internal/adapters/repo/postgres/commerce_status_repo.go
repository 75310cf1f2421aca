package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mbenitez/comercios/internal/domain"
)

type CommerceStatusRepo struct{ db *gorm.DB }

func NewCommerceStatusRepo(db *gorm.DB) *CommerceStatusRepo { return &CommerceStatusRepo{db: db} }

func (r *CommerceStatusRepo) FindNameByID(ctx context.Context, id int64) (string, error) {
	var st domain.CommerceStatus
	if err := r.db.WithContext(ctx).First(&st, "commerce_status_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return st.StatusName, nil
}
