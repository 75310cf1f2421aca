package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound lo devuelven los repos cuando una consulta puntual no encuentra fila.
var ErrNotFound = errors.New("registro no encontrado")

type ErrorKind int

const (
	// KindValidation: el campo vino mal formado; el cliente debe corregir el request.
	KindValidation ErrorKind = iota
	// KindLogic: regla de negocio violada contra el estado actual de la base.
	KindLogic
	// KindStore: falla de infraestructura; no se expone el detalle al cliente.
	KindStore
)

// DomainError es la taxonomía cerrada de errores del flujo de alta de comercios.
// Código y mensaje son estables: la capa HTTP los devuelve tal cual.
type DomainError struct {
	Kind    ErrorKind
	Code    string
	Message string
	cause   error
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error { return e.cause }

var (
	ErrNotValidAliasType     = &DomainError{Kind: KindValidation, Code: "ERR-009", Message: "Tipo de alias no valido"}
	ErrNotValidAliasFormat   = &DomainError{Kind: KindValidation, Code: "ERR-003", Message: "Formato de alias no valido"}
	ErrNotValidLegalBusiness = &DomainError{Kind: KindValidation, Code: "ERR-090", Message: "Formato de razon social no valida"}
	ErrNotValidRuc           = &DomainError{Kind: KindValidation, Code: "ERR-091", Message: "Formato de RUC no valido"}
	ErrNotValidAccountFormat = &DomainError{Kind: KindValidation, Code: "ERR-005", Message: "Formato de cuenta no valido"}
	ErrEmptyRequiredFields   = &DomainError{Kind: KindValidation, Code: "ERR-001", Message: "Vacio o nulo para campos obligatorios"}
	ErrBankCodeEmpty         = &DomainError{Kind: KindValidation, Code: "ERR-072", Message: "El codigo del banco no puede ser nulo o vacio"}

	ErrAliasAlreadyExists       = &DomainError{Kind: KindLogic, Code: "ERR-008", Message: "El Alias ya se encuentra registrado"}
	ErrBankNotFound             = &DomainError{Kind: KindLogic, Code: "ERR-002", Message: "Banco no encontrado"}
	ErrRucLegalBusinessMismatch = &DomainError{Kind: KindLogic, Code: "ERR-093", Message: "El ruc y la razon social no coinciden"}
)

// WrapStore clasifica una falla del store. Si err ya es un *DomainError (por
// ejemplo una violación de unicidad ya traducida a ErrAliasAlreadyExists) lo
// deja pasar sin re-envolver.
func WrapStore(err error) error {
	if err == nil {
		return nil
	}
	var de *DomainError
	if errors.As(err, &de) {
		return err
	}
	return &DomainError{Kind: KindStore, Code: "ERR-UNKNOWN", Message: "Error inesperado de base de datos", cause: err}
}
