package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mbenitez/comercios/internal/domain"
)

const maxLegalBusinessLen = 255 // bytes; las razones sociales se cargan en ASCII

var (
	aliasRe         = regexp.MustCompile(`^[A-Za-z0-9]{3,25}$`)
	rucRe           = regexp.MustCompile(`^[0-9-]{1,25}$`)
	accountNumberRe = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// ValidateCommerceUC valida un comercio candidato contra formato y estado de la
// base, y lo devuelve normalizado. No persiste nada.
type ValidateCommerceUC struct {
	Commerces domain.CommerceRepo
	Banks     domain.BankRepo
}

// Process corre las validaciones en orden fijo y corta en la primera falla:
// formatos, normalización, unicidad de RUC/alias, banco activo y consistencia
// RUC/razón social. Cada chequeo consume la salida normalizada del anterior,
// por eso no hay consultas en paralelo.
func (uc *ValidateCommerceUC) Process(ctx context.Context, c domain.Commerce) (domain.Commerce, error) {
	if err := validateFieldFormats(&c); err != nil {
		return domain.Commerce{}, err
	}

	c.Alias = NormalizeAlias(c.Alias)
	c.LegalBusinessName = strings.TrimSpace(c.LegalBusinessName)

	taken, err := uc.Commerces.ExistsByRucOrAlias(ctx, c.RUC, c.Alias)
	if err != nil {
		return domain.Commerce{}, domain.WrapStore(err)
	}
	if taken {
		return domain.Commerce{}, domain.ErrAliasAlreadyExists
	}

	active, err := uc.Banks.IsActiveCode(ctx, c.Account.BankCode)
	if err != nil {
		return domain.Commerce{}, domain.WrapStore(err)
	}
	if !active {
		return domain.Commerce{}, domain.ErrBankNotFound
	}

	ok, err := uc.Commerces.RucMatchesLegalName(ctx, c.RUC, c.LegalBusinessName)
	if err != nil {
		return domain.Commerce{}, domain.WrapStore(err)
	}
	if !ok {
		return domain.Commerce{}, domain.ErrRucLegalBusinessMismatch
	}

	log.Info().Str("alias", c.Alias).Str("ruc", c.RUC).Msg("Comercio validado")
	return c, nil
}

func validateFieldFormats(c *domain.Commerce) error {
	if c.AliasType != domain.AliasTypeMerchant {
		return domain.ErrNotValidAliasType
	}
	if !aliasRe.MatchString(c.Alias) {
		return domain.ErrNotValidAliasFormat
	}
	if len(strings.TrimSpace(c.LegalBusinessName)) > maxLegalBusinessLen {
		return domain.ErrNotValidLegalBusiness
	}
	// re2 no tiene lookahead: el "al menos un dígito" del patrón original se
	// chequea aparte.
	if !rucRe.MatchString(c.RUC) || !strings.ContainsAny(c.RUC, "0123456789") {
		return domain.ErrNotValidRuc
	}
	if !accountNumberRe.MatchString(c.Account.AccountNumber) {
		return domain.ErrNotValidAccountFormat
	}
	return nil
}

// NormalizeAlias antepone la arroba con la que el alias se persiste siempre.
// Es idempotente: un alias ya prefijado vuelve tal cual, el prefijo se aplica
// exactamente una vez, en la validación, nunca en lectura.
func NormalizeAlias(alias string) string {
	if strings.HasPrefix(alias, "@") {
		return alias
	}
	return "@" + alias
}
