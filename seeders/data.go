package seeders

import "time"

type categorySeed struct {
	Name   string
	Parent string
}

type equipmentSeed struct {
	Name            string
	InventoryNumber string
	Category        string
}

type clientSeed struct {
	FullName string
	Phone    string
}

type orderItemSeed struct {
	Inventory string
	Quantity  int
	RentPrice float64
}

type orderSeed struct {
	Start, End    time.Time
	Status        string
	Client        string
	PriceCategory int // индекс в priceCategoriesData, -1 - без категории
	Items         []orderItemSeed
}

type paymentSeed struct {
	Order       int // индекс в ordersData
	Amount      float64
	PaymentDate time.Time
	PaymentType string
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var categoriesData = []categorySeed{
	{Name: "Строительное оборудование"},
	{Name: "Электроинструмент", Parent: "Строительное оборудование"},
	{Name: "Спецтехника"},
	{Name: "Леса и опалубка", Parent: "Строительное оборудование"},
}

var equipmentData = []equipmentSeed{
	{Name: "Перфоратор Bosch GBH 2-26", InventoryNumber: "INV-001", Category: "Электроинструмент"},
	{Name: "Бетономешалка 180 л", InventoryNumber: "INV-002", Category: "Строительное оборудование"},
	{Name: "Мини-экскаватор JCB 8018", InventoryNumber: "INV-003", Category: "Спецтехника"},
	{Name: "Леса рамные 10 м", InventoryNumber: "INV-004", Category: "Леса и опалубка"},
	{Name: "Углошлифовальная машина Makita", InventoryNumber: "INV-005", Category: "Электроинструмент"},
}

var clientsData = []clientSeed{
	{FullName: "Иванов Иван", Phone: "+79990000000"},
	{FullName: "ООО СтройМонтаж", Phone: "+7 (495) 123-45-67"},
	{FullName: "Петров Петр", Phone: "+79991112233"},
}

var priceCategoriesData = []struct{ Start, End time.Time }{
	{Start: date(2024, time.January, 1), End: date(2024, time.June, 30)},
	{Start: date(2024, time.July, 1), End: date(2024, time.December, 31)},
}

var ordersData = []orderSeed{
	{
		Start: date(2024, time.January, 10), End: date(2024, time.January, 20),
		Status: "active", Client: "+79990000000", PriceCategory: 0,
		Items: []orderItemSeed{
			{Inventory: "INV-001", Quantity: 2, RentPrice: 100},
			{Inventory: "INV-002", Quantity: 1, RentPrice: 50},
		},
	},
	{
		Start: date(2024, time.March, 1), End: date(2024, time.March, 15),
		Status: "completed", Client: "+7 (495) 123-45-67", PriceCategory: 0,
		Items: []orderItemSeed{
			{Inventory: "INV-003", Quantity: 1, RentPrice: 500},
		},
	},
	{
		Start: date(2024, time.August, 5), End: date(2024, time.August, 25),
		Status: "pending", Client: "+79991112233", PriceCategory: -1,
		Items: []orderItemSeed{
			{Inventory: "INV-004", Quantity: 3, RentPrice: 80},
			{Inventory: "INV-005", Quantity: 1, RentPrice: 60},
		},
	},
}

var paymentsData = []paymentSeed{
	{Order: 0, Amount: 150, PaymentDate: date(2024, time.January, 10), PaymentType: "card"},
	{Order: 1, Amount: 500, PaymentDate: date(2024, time.March, 1), PaymentType: "transfer"},
	{Order: 2, Amount: 100, PaymentDate: date(2024, time.August, 5), PaymentType: "cash"},
}
