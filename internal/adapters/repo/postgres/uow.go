package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mbenitez/comercios/internal/domain"
)

// UnitOfWork corre fn dentro de una transacción gorm: commit si fn devuelve
// nil, rollback en cualquier otro caso, incluida la cancelación del contexto.
// Los repos que ve fn quedan atados a esa transacción.
type UnitOfWork struct{ db *gorm.DB }

func NewUnitOfWork(db *gorm.DB) *UnitOfWork { return &UnitOfWork{db: db} }

func (u *UnitOfWork) Do(ctx context.Context, fn func(r domain.RepoSet) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repoSet{tx: tx})
	})
}

type repoSet struct{ tx *gorm.DB }

func (s *repoSet) Banks() domain.BankRepo              { return NewBankRepo(s.tx) }
func (s *repoSet) Accounts() domain.AccountRepo        { return NewAccountRepo(s.tx) }
func (s *repoSet) Commerces() domain.CommerceRepo      { return NewCommerceRepo(s.tx) }
func (s *repoSet) Statuses() domain.CommerceStatusRepo { return NewCommerceStatusRepo(s.tx) }
