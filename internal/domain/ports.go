package domain

import "context"

type BankRepo interface {
	// FindActiveByCode devuelve ErrNotFound si no hay banco activo con ese código.
	FindActiveByCode(ctx context.Context, bankCode string) (*Bank, error)
	IsActiveCode(ctx context.Context, bankCode string) (bool, error)
}

type CommerceRepo interface {
	// ExistsByRucOrAlias: true si algún comercio activo ya usa ese RUC o ese alias.
	ExistsByRucOrAlias(ctx context.Context, ruc, alias string) (bool, error)
	// RucMatchesLegalName: true si el RUC no está registrado bajo otra razón social
	// (o no está registrado en absoluto) entre comercios activos.
	RucMatchesLegalName(ctx context.Context, ruc, legalBusinessName string) (bool, error)
	// Create persiste el comercio referenciando una cuenta ya insertada y devuelve
	// la entidad hidratada con cuenta y estado. Una violación de unicidad sobre
	// alias o RUC se traduce a ErrAliasAlreadyExists.
	Create(ctx context.Context, c *Commerce, accountID int64) (*Commerce, error)
	List(ctx context.Context) ([]Commerce, error)
}

type AccountRepo interface {
	Create(ctx context.Context, accountNumber, bankCode string, bankID int64) (int64, error)
}

type CommerceStatusRepo interface {
	FindNameByID(ctx context.Context, id int64) (string, error)
}

// RepoSet agrupa los repos hidratados sobre una misma transacción.
type RepoSet interface {
	Banks() BankRepo
	Accounts() AccountRepo
	Commerces() CommerceRepo
	Statuses() CommerceStatusRepo
}

// UnitOfWork ejecuta fn dentro de una transacción: si fn devuelve error se hace
// rollback, si devuelve nil se hace commit. La cancelación del contexto también
// aborta la transacción.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(r RepoSet) error) error
}
