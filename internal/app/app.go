package app

import (
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mbenitez/comercios/internal/adapters/httpserver"
	"github.com/mbenitez/comercios/internal/adapters/repo/postgres"
	"github.com/mbenitez/comercios/internal/domain"
	"github.com/mbenitez/comercios/internal/usecase"
)

type App struct {
	DB         *gorm.DB
	ValidateUC *usecase.ValidateCommerceUC
	CreateUC   *usecase.CreateCommerceUC
	Commerces  domain.CommerceRepo
}

func NewApp(db *gorm.DB) (*App, error) {
	commerceRepo := postgres.NewCommerceRepo(db)
	bankRepo := postgres.NewBankRepo(db)

	validateUC := &usecase.ValidateCommerceUC{Commerces: commerceRepo, Banks: bankRepo}
	createUC := &usecase.CreateCommerceUC{Validate: validateUC, Store: postgres.NewUnitOfWork(db)}

	return &App{
		DB:         db,
		ValidateUC: validateUC,
		CreateUC:   createUC,
		Commerces:  commerceRepo,
	}, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.ValidateUC, a.CreateUC, a.Commerces)
}

func (a *App) MigrateAndSeed() error {
	if err := a.DB.AutoMigrate(
		&domain.CommerceStatus{}, &domain.Bank{}, &domain.Account{}, &domain.Commerce{},
	); err != nil {
		return err
	}

	// Los índices únicos sobre ruc y alias son el árbitro final contra altas
	// concurrentes; se refuerzan además de los tags por si la tabla ya existía.
	// Sin ellos el servicio no debe arrancar.
	for _, stmt := range []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_commerces_alias ON commerces (alias)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_commerces_ruc ON commerces (ruc)",
	} {
		if err := a.DB.Exec(stmt).Error; err != nil {
			return err
		}
	}
	for _, stmt := range []string{
		"CREATE INDEX IF NOT EXISTS idx_commerces_status ON commerces (commerce_status_id)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_bank_id ON accounts (bank_id)",
	} {
		if err := a.DB.Exec(stmt).Error; err != nil {
			log.Warn().Err(err).Msg("No se pudo crear el índice secundario")
		}
	}

	if err := seedStatuses(a.DB); err != nil {
		return err
	}

	appEnv := strings.ToLower(os.Getenv("APP_ENV"))
	if appEnv == "" || appEnv == "development" || appEnv == "dev" {
		seedBanks(a.DB)
	}
	return nil
}

func seedStatuses(db *gorm.DB) error {
	statuses := []domain.CommerceStatus{
		{ID: domain.CommerceStatusActive, StatusName: "ACTIVE"},
		{ID: domain.CommerceStatusInactive, StatusName: "INACTIVE"},
	}
	for _, st := range statuses {
		if err := db.Where("commerce_status_id = ?", st.ID).FirstOrCreate(&st).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedBanks(db *gorm.DB) {
	banks := []domain.Bank{
		{BankCode: "841", BankName: "Banco Continental", StatusID: domain.BankStatusActive},
		{BankCode: "102", BankName: "Banco Itau", StatusID: domain.BankStatusActive},
		{BankCode: "715", BankName: "Banco Regional", StatusID: 2},
	}
	for _, b := range banks {
		db.Where("bank_code = ?", b.BankCode).FirstOrCreate(&b)
	}
}
