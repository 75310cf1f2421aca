package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mbenitez/comercios/internal/domain"
)

// CreateCommerceUC es el flujo completo de alta: validación y después una única
// transacción que inserta cuenta y comercio. O se persisten las dos filas o
// ninguna; una cuenta nunca queda huérfana.
type CreateCommerceUC struct {
	Validate *ValidateCommerceUC
	Store    domain.UnitOfWork
}

func (uc *CreateCommerceUC) Process(ctx context.Context, c domain.Commerce) (*domain.Commerce, error) {
	valid, err := uc.Validate.Process(ctx, c)
	if err != nil {
		log.Warn().Err(err).Str("alias", c.Alias).Msg("Comercio rechazado en validación")
		return nil, err
	}

	var stored *domain.Commerce
	err = uc.Store.Do(ctx, func(r domain.RepoSet) error {
		// El banco se re-resuelve acá porque la cuenta necesita su id interno y
		// porque pudo desactivarse entre la validación y este punto.
		bank, err := r.Banks().FindActiveByCode(ctx, valid.Account.BankCode)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrBankNotFound
			}
			return domain.WrapStore(err)
		}

		accountID, err := r.Accounts().Create(ctx, valid.Account.AccountNumber, valid.Account.BankCode, bank.ID)
		if err != nil {
			return domain.WrapStore(err)
		}

		created, err := r.Commerces().Create(ctx, &valid, accountID)
		if err != nil {
			// Dos altas simultáneas pueden pasar ambas el pre-chequeo de
			// unicidad; el índice único decide y el repo ya tradujo esa
			// violación a ErrAliasAlreadyExists. WrapStore la deja pasar.
			return domain.WrapStore(err)
		}
		// El alta siempre deja el comercio activo; el nombre se resuelve para
		// el payload de respuesta.
		statusName, err := r.Statuses().FindNameByID(ctx, created.StatusID)
		if err != nil {
			return domain.WrapStore(err)
		}
		created.Status = domain.CommerceStatus{ID: created.StatusID, StatusName: statusName}

		stored = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("commerceId", stored.ID).Str("alias", stored.Alias).Msg("Comercio registrado")
	return stored, nil
}
