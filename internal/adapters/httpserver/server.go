package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/mbenitez/comercios/internal/domain"
	"github.com/mbenitez/comercios/internal/usecase"
)

type Server struct {
	mux       *http.ServeMux
	validate  *usecase.ValidateCommerceUC
	create    *usecase.CreateCommerceUC
	commerces domain.CommerceRepo
}

func New(v *usecase.ValidateCommerceUC, c *usecase.CreateCommerceUC, commerces domain.CommerceRepo) http.Handler {
	s := &Server{mux: http.NewServeMux(), validate: v, create: c, commerces: commerces}
	s.routes()
	return withRequestID(s.mux)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/commerces", s.handleCommerces)
	s.mux.HandleFunc("/commerces/validate", s.handleValidateCommerce)
	s.mux.HandleFunc("/admin/commerces/export", s.handleExportCommerces)
}

// withRequestID etiqueta cada request con un id para correlacionar los logs.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().Str("reqId", reqID).Str("method", r.Method).Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).Msg("request")
	})
}

type genericResponse struct {
	Code    string `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type accountDTO struct {
	AccountNumber string `json:"accountNumber"`
	BankCode      string `json:"bankCode"`
}

type commerceDTO struct {
	CommerceID          *int64      `json:"commerceId"`
	AliasValue          *string     `json:"aliasValue"`
	AliasType           *int64      `json:"aliasType"`
	LegalBusinessName   *string     `json:"legalBusinessName"`
	CommerceBankAccount *accountDTO `json:"commerceBankAccount"`
	RUC                 *string     `json:"ruc"`
}

// toDomain chequea presencia y no-vacío campo por campo antes de mapear; los
// formatos en sí los valida el use case.
func (d *commerceDTO) toDomain() (domain.Commerce, error) {
	if d.AliasType == nil || *d.AliasType <= 0 {
		return domain.Commerce{}, domain.ErrNotValidAliasType
	}
	if d.AliasValue == nil || strings.TrimSpace(*d.AliasValue) == "" {
		return domain.Commerce{}, domain.ErrNotValidAliasFormat
	}
	if d.LegalBusinessName == nil || strings.TrimSpace(*d.LegalBusinessName) == "" {
		return domain.Commerce{}, domain.ErrNotValidLegalBusiness
	}
	if d.RUC == nil || strings.TrimSpace(*d.RUC) == "" {
		return domain.Commerce{}, domain.ErrNotValidRuc
	}
	if d.CommerceBankAccount == nil {
		return domain.Commerce{}, domain.ErrEmptyRequiredFields
	}
	if strings.TrimSpace(d.CommerceBankAccount.AccountNumber) == "" {
		return domain.Commerce{}, domain.ErrNotValidAccountFormat
	}
	if strings.TrimSpace(d.CommerceBankAccount.BankCode) == "" {
		return domain.Commerce{}, domain.ErrBankCodeEmpty
	}
	return domain.Commerce{
		Alias:             *d.AliasValue,
		AliasType:         *d.AliasType,
		LegalBusinessName: *d.LegalBusinessName,
		RUC:               *d.RUC,
		Account: domain.Account{
			AccountNumber: d.CommerceBankAccount.AccountNumber,
			BankCode:      d.CommerceBankAccount.BankCode,
		},
	}, nil
}

func (s *Server) handleCommerces(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.commerces.List(r.Context())
		if err != nil {
			writeError(w, domain.WrapStore(err))
			return
		}
		writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
	case http.MethodPost:
		var dto commerceDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			writeJSON(w, 400, genericResponse{Code: "ERR-001", Status: "ERROR", Message: "Cuerpo de la petición inválido"})
			return
		}
		candidate, err := dto.toDomain()
		if err != nil {
			writeError(w, err)
			return
		}
		stored, err := s.create.Process(r.Context(), candidate)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 201, stored)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) handleValidateCommerce(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var dto commerceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeJSON(w, 400, genericResponse{Code: "ERR-001", Status: "ERROR", Message: "Cuerpo de la petición inválido"})
		return
	}
	candidate, err := dto.toDomain()
	if err != nil {
		writeError(w, err)
		return
	}
	valid, err := s.validate.Process(r.Context(), candidate)
	if err != nil {
		writeError(w, err)
		return
	}
	// Todavía no hay nada persistido: la respuesta lleva sólo los campos
	// normalizados, sin ids generados ni estado.
	writeJSON(w, 200, map[string]any{
		"aliasValue":        valid.Alias,
		"aliasType":         valid.AliasType,
		"legalBusinessName": valid.LegalBusinessName,
		"ruc":               valid.RUC,
		"commerceBankAccount": map[string]any{
			"accountNumber": valid.Account.AccountNumber,
			"bankCode":      valid.Account.BankCode,
		},
	})
}

func (s *Server) handleExportCommerces(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	list, err := s.commerces.List(r.Context())
	if err != nil {
		writeError(w, domain.WrapStore(err))
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Comercios"
	_ = f.SetSheetName("Sheet1", sheet)
	headers := []string{"ID", "Alias", "Razon Social", "RUC", "Cuenta", "Banco", "Estado"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, c := range list {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), c.ID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), c.Alias)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), c.LegalBusinessName)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), c.RUC)
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), c.Account.AccountNumber)
		_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), c.Account.BankCode)
		_ = f.SetCellValue(sheet, fmt.Sprintf("G%d", row), c.Status.StatusName)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=comercios.xlsx")
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("Error exportando comercios")
	}
}

// writeError mapea la taxonomía de errores a HTTP con una tabla explícita:
// validación y negocio van como 400 con código estable, los de store como 503
// con mensaje genérico para no filtrar detalle de infraestructura.
func writeError(w http.ResponseWriter, err error) {
	var de *domain.DomainError
	if errors.As(err, &de) {
		switch de.Kind {
		case domain.KindValidation, domain.KindLogic:
			writeJSON(w, 400, genericResponse{Code: de.Code, Status: "ERROR", Message: de.Message})
		case domain.KindStore:
			log.Error().Err(err).Msg("Error de base de datos")
			writeJSON(w, 503, genericResponse{Code: "ERR-UNKNOWN", Status: "ERROR", Message: "Servicio no disponible"})
		}
		return
	}
	log.Error().Err(err).Msg("Error no clasificado")
	writeJSON(w, 500, genericResponse{Code: "INTERNAL_ERROR", Status: "ERROR", Message: "An unexpected error occurred"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
