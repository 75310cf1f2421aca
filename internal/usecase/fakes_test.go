package usecase

import (
	"context"

	"github.com/mbenitez/comercios/internal/domain"
)

type fakeCommerceRepo struct {
	taken    bool
	takenErr error

	mismatch bool
	matchErr error

	createErr   error
	createCalls int
	existsCalls int
	matchCalls  int
}

func (f *fakeCommerceRepo) ExistsByRucOrAlias(ctx context.Context, ruc, alias string) (bool, error) {
	f.existsCalls++
	return f.taken, f.takenErr
}

func (f *fakeCommerceRepo) RucMatchesLegalName(ctx context.Context, ruc, legalBusinessName string) (bool, error) {
	f.matchCalls++
	return !f.mismatch, f.matchErr
}

func (f *fakeCommerceRepo) Create(ctx context.Context, c *domain.Commerce, accountID int64) (*domain.Commerce, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *c
	stored.ID = 10
	stored.AccountID = accountID
	stored.StatusID = domain.CommerceStatusActive
	stored.Account = domain.Account{
		ID:            accountID,
		AccountNumber: c.Account.AccountNumber,
		BankCode:      c.Account.BankCode,
		BankID:        3,
	}
	return &stored, nil
}

func (f *fakeCommerceRepo) List(ctx context.Context) ([]domain.Commerce, error) {
	return nil, nil
}

type fakeBankRepo struct {
	active    bool
	activeErr error

	bank    *domain.Bank
	findErr error

	isActiveCalls int
	findCalls     int
}

func (f *fakeBankRepo) FindActiveByCode(ctx context.Context, bankCode string) (*domain.Bank, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.bank == nil {
		return nil, domain.ErrNotFound
	}
	return f.bank, nil
}

func (f *fakeBankRepo) IsActiveCode(ctx context.Context, bankCode string) (bool, error) {
	f.isActiveCalls++
	return f.active, f.activeErr
}

type fakeAccountRepo struct {
	id    int64
	err   error
	calls int
}

func (f *fakeAccountRepo) Create(ctx context.Context, accountNumber, bankCode string, bankID int64) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.id, nil
}

type fakeStatusRepo struct {
	name string
	err  error
}

func (f *fakeStatusRepo) FindNameByID(ctx context.Context, id int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.name, nil
}

type fakeRepoSet struct {
	banks     *fakeBankRepo
	accounts  *fakeAccountRepo
	commerces *fakeCommerceRepo
	statuses  *fakeStatusRepo
}

func (s *fakeRepoSet) Banks() domain.BankRepo              { return s.banks }
func (s *fakeRepoSet) Accounts() domain.AccountRepo        { return s.accounts }
func (s *fakeRepoSet) Commerces() domain.CommerceRepo      { return s.commerces }
func (s *fakeRepoSet) Statuses() domain.CommerceStatusRepo { return s.statuses }

// fakeUoW imita el contrato transaccional: cualquier error de fn marca rollback.
type fakeUoW struct {
	set        *fakeRepoSet
	rolledBack bool
}

func (u *fakeUoW) Do(ctx context.Context, fn func(r domain.RepoSet) error) error {
	if err := fn(u.set); err != nil {
		u.rolledBack = true
		return err
	}
	return nil
}
