package entities

import "time"

// SheetRow - строка отчета, которую можно выгрузить в XLSX.
type SheetRow interface {
	SheetValues() []interface{}
}

type CategoryStats struct {
	CategoryID     uint64  `json:"category_id" db:"category_id"`
	CategoryName   string  `json:"category_name" db:"category_name"`
	EquipmentCount int64   `json:"equipment_count" db:"equipment_count"`
	AvgRentPrice   float64 `json:"avg_rent_price" db:"avg_rent_price"`
}

var CategoryStatsHeaders = []string{"ID категории", "Категория", "Единиц оборудования", "Средняя цена аренды"}

func (r CategoryStats) SheetValues() []interface{} {
	return []interface{}{r.CategoryID, r.CategoryName, r.EquipmentCount, r.AvgRentPrice}
}

type PopularCategory struct {
	CategoryID    uint64 `json:"category_id" db:"category_id"`
	CategoryName  string `json:"category_name" db:"category_name"`
	OrderCount    int64  `json:"order_count" db:"order_count"`
	TotalQuantity int64  `json:"total_quantity" db:"total_quantity"`
}

var PopularCategoryHeaders = []string{"ID категории", "Категория", "Заказов", "Единиц в аренде"}

func (r PopularCategory) SheetValues() []interface{} {
	return []interface{}{r.CategoryID, r.CategoryName, r.OrderCount, r.TotalQuantity}
}

type TopClient struct {
	ID         uint64  `json:"id" db:"id"`
	FullName   string  `json:"full_name" db:"full_name"`
	Phone      string  `json:"phone" db:"phone"`
	OrderCount int64   `json:"order_count" db:"order_count"`
	TotalPaid  float64 `json:"total_paid" db:"total_paid"`
}

var TopClientHeaders = []string{"ID", "ФИО", "Телефон", "Заказов", "Оплачено"}

func (r TopClient) SheetValues() []interface{} {
	return []interface{}{r.ID, r.FullName, r.Phone, r.OrderCount, r.TotalPaid}
}

type ClientDebt struct {
	ID               uint64  `json:"id" db:"id"`
	FullName         string  `json:"full_name" db:"full_name"`
	TotalOrderAmount float64 `json:"total_order_amount" db:"total_order_amount"`
	TotalPaid        float64 `json:"total_paid" db:"total_paid"`
	Debt             float64 `json:"debt" db:"debt"`
}

var ClientDebtHeaders = []string{"ID", "ФИО", "Сумма заказов", "Оплачено", "Долг"}

func (r ClientDebt) SheetValues() []interface{} {
	return []interface{}{r.ID, r.FullName, r.TotalOrderAmount, r.TotalPaid, r.Debt}
}

type AvailableEquipment struct {
	ID              uint64    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	InventoryNumber string    `json:"inventory_number" db:"inventory_number"`
	CategoryID      *uint64   `json:"category_id" db:"category_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

var AvailableEquipmentHeaders = []string{"ID", "Название", "Инвентарный номер", "ID категории"}

func (r AvailableEquipment) SheetValues() []interface{} {
	return []interface{}{r.ID, r.Name, r.InventoryNumber, derefID(r.CategoryID)}
}

type RentalHistoryItem struct {
	OrderID     uint64    `json:"order_id" db:"order_id"`
	DateStart   time.Time `json:"date_start" db:"date_start"`
	DateEnd     time.Time `json:"date_end" db:"date_end"`
	Status      string    `json:"status" db:"status"`
	Quantity    int       `json:"quantity" db:"quantity"`
	RentPrice   float64   `json:"rent_price" db:"rent_price"`
	ClientName  string    `json:"client_name" db:"client_name"`
	ClientPhone string    `json:"client_phone" db:"client_phone"`
}

var RentalHistoryHeaders = []string{"ID заказа", "Начало", "Окончание", "Статус", "Количество", "Цена аренды", "Клиент", "Телефон"}

func (r RentalHistoryItem) SheetValues() []interface{} {
	return []interface{}{r.OrderID, r.DateStart, r.DateEnd, r.Status, r.Quantity, r.RentPrice, r.ClientName, r.ClientPhone}
}

type EquipmentPriceStats struct {
	ID              uint64    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	InventoryNumber string    `json:"inventory_number" db:"inventory_number"`
	CategoryID      *uint64   `json:"category_id" db:"category_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
	AvgRentPrice    float64   `json:"avg_rent_price" db:"avg_rent_price"`
	MinRentPrice    float64   `json:"min_rent_price" db:"min_rent_price"`
	MaxRentPrice    float64   `json:"max_rent_price" db:"max_rent_price"`
}

var EquipmentPriceStatsHeaders = []string{"ID", "Название", "Инвентарный номер", "Средняя цена", "Мин. цена", "Макс. цена"}

func (r EquipmentPriceStats) SheetValues() []interface{} {
	return []interface{}{r.ID, r.Name, r.InventoryNumber, r.AvgRentPrice, r.MinRentPrice, r.MaxRentPrice}
}

// OrderSummary - заказ с клиентом, числом позиций и суммой.
type OrderSummary struct {
	ID              uint64    `json:"id" db:"id"`
	DateStart       time.Time `json:"date_start" db:"date_start"`
	DateEnd         time.Time `json:"date_end" db:"date_end"`
	Status          string    `json:"status" db:"status"`
	ClientID        uint64    `json:"client_id" db:"client_id"`
	PriceCategoryID *uint64   `json:"price_category_id" db:"price_category_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
	ClientName      string    `json:"client_name" db:"client_name"`
	ClientPhone     string    `json:"client_phone" db:"client_phone"`
	EquipmentCount  int64     `json:"equipment_count" db:"equipment_count"`
	TotalAmount     float64   `json:"total_amount" db:"total_amount"`
}

var OrderSummaryHeaders = []string{"ID", "Начало", "Окончание", "Статус", "Клиент", "Телефон", "Позиций", "Сумма"}

func (r OrderSummary) SheetValues() []interface{} {
	return []interface{}{r.ID, r.DateStart, r.DateEnd, r.Status, r.ClientName, r.ClientPhone, r.EquipmentCount, r.TotalAmount}
}

type OrderTotal struct {
	ID              uint64    `json:"id" db:"id"`
	DateStart       time.Time `json:"date_start" db:"date_start"`
	DateEnd         time.Time `json:"date_end" db:"date_end"`
	TotalAmount     float64   `json:"total_amount" db:"total_amount"`
	TotalPaid       float64   `json:"total_paid" db:"total_paid"`
	RemainingAmount float64   `json:"remaining_amount" db:"remaining_amount"`
}

var OrderTotalHeaders = []string{"ID", "Начало", "Окончание", "Сумма", "Оплачено", "Остаток"}

func (r OrderTotal) SheetValues() []interface{} {
	return []interface{}{r.ID, r.DateStart, r.DateEnd, r.TotalAmount, r.TotalPaid, r.RemainingAmount}
}

type MonthlyPaymentStats struct {
	Month        string  `json:"month" db:"month"`
	PaymentCount int64   `json:"payment_count" db:"payment_count"`
	TotalAmount  float64 `json:"total_amount" db:"total_amount"`
	AvgAmount    float64 `json:"avg_amount" db:"avg_amount"`
}

var MonthlyPaymentStatsHeaders = []string{"Месяц", "Платежей", "Сумма", "Средний платеж"}

func (r MonthlyPaymentStats) SheetValues() []interface{} {
	return []interface{}{r.Month, r.PaymentCount, r.TotalAmount, r.AvgAmount}
}

type UnpaidOrder struct {
	ID          uint64    `json:"id" db:"id"`
	DateStart   time.Time `json:"date_start" db:"date_start"`
	DateEnd     time.Time `json:"date_end" db:"date_end"`
	Status      string    `json:"status" db:"status"`
	ClientName  string    `json:"client_name" db:"client_name"`
	ClientPhone string    `json:"client_phone" db:"client_phone"`
	TotalAmount float64   `json:"total_amount" db:"total_amount"`
	TotalPaid   float64   `json:"total_paid" db:"total_paid"`
	Debt        float64   `json:"debt" db:"debt"`
}

var UnpaidOrderHeaders = []string{"ID", "Начало", "Окончание", "Статус", "Клиент", "Телефон", "Сумма", "Оплачено", "Долг"}

func (r UnpaidOrder) SheetValues() []interface{} {
	return []interface{}{r.ID, r.DateStart, r.DateEnd, r.Status, r.ClientName, r.ClientPhone, r.TotalAmount, r.TotalPaid, r.Debt}
}

func derefID(id *uint64) interface{} {
	if id == nil {
		return ""
	}
	return *id
}
