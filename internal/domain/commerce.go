package domain

import "time"

// Identificadores fijos de catálogo: los seeds de app.MigrateAndSeed dependen de estos valores.
const (
	CommerceStatusActive   int64 = 1
	CommerceStatusInactive int64 = 2

	BankStatusActive int64 = 1

	// AliasTypeMerchant es el único tipo de alias habilitado para comercios.
	AliasTypeMerchant int64 = 2
)

type Commerce struct {
	ID                int64          `gorm:"column:id_commerce;primaryKey;autoIncrement" json:"commerceId"`
	Alias             string         `gorm:"size:30;uniqueIndex" json:"aliasValue"`
	AliasType         int64          `gorm:"column:alias_type_id" json:"aliasType"`
	LegalBusinessName string         `gorm:"size:255" json:"legalBusinessName"`
	RUC               string         `gorm:"column:ruc;size:25;uniqueIndex" json:"ruc"`
	AccountID         int64          `gorm:"column:account_id;index" json:"-"`
	Account           Account        `gorm:"foreignKey:AccountID;references:ID" json:"commerceBankAccount"`
	StatusID          int64          `gorm:"column:commerce_status_id;index" json:"-"`
	Status            CommerceStatus `gorm:"foreignKey:StatusID;references:ID" json:"commerceStatus"`
	CreatedAt         time.Time      `json:"-"`
}

type Account struct {
	ID            int64     `gorm:"column:account_id;primaryKey;autoIncrement" json:"accountId"`
	AccountNumber string    `gorm:"size:36" json:"accountNumber"`
	BankCode      string    `gorm:"size:10;index" json:"bankCode"`
	BankID        int64     `gorm:"column:bank_id;index" json:"bankId"`
	CreatedAt     time.Time `json:"-"`
}

// Bank es catálogo de sólo lectura para este servicio: los bancos se dan de
// alta por otro canal, acá únicamente se consultan.
type Bank struct {
	ID       int64  `gorm:"column:bank_id;primaryKey;autoIncrement" json:"bankId"`
	BankCode string `gorm:"size:10;uniqueIndex" json:"bankCode"`
	BankName string `gorm:"size:140" json:"bankName"`
	StatusID int64  `gorm:"column:status_id;index" json:"-"`
}

type CommerceStatus struct {
	ID         int64  `gorm:"column:commerce_status_id;primaryKey" json:"-"`
	StatusName string `gorm:"size:30" json:"statusName"`
}
