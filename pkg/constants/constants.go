// pkg/constants/constants.go
package constants

import "time"

//============== REPORT DEFAULTS ==============

const (
	DefaultPopularCategoriesLimit = 5
	DefaultTopClientsLimit        = 10

	DefaultMinRentPrice = 0
	DefaultMaxRentPrice = 999999

	// Окно доступности по умолчанию: сейчас .. сейчас + 7 дней
	DefaultAvailabilityWindow = 7 * 24 * time.Hour
	// Период заказов по умолчанию: последние 30 дней
	DefaultOrdersPeriod = 30 * 24 * time.Hour
)

//============== EXPORT ==============

// ExportFormat определяет формат выдачи отчета.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatXLSX ExportFormat = "xlsx"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

//============== DATE LAYOUTS ==============

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	MonthLayout    = "2006-01"
)
