package repositories_test

import (
	"time"

	"github.com/aarondl/null/v8"

	"rental-system/internal/dto"
	"rental-system/internal/repositories"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
	"rental-system/pkg/utils"
)

// crudCase - create -> get -> update -> get -> delete -> delete для одной сущности.
type crudCase struct {
	name         string
	create       func() uint64
	checkCreated func(id uint64)
	update       func(id uint64) error
	checkUpdated func(id uint64)
	find         func(id uint64) error
	delete       func(id uint64) error
}

func (s *RepositorySuite) crudCases() []crudCase {
	categories := repositories.NewCategoryRepository(s.pool, s.logger)
	equipment := repositories.NewEquipmentRepository(s.pool, s.logger)
	clients := repositories.NewClientRepository(s.pool, s.logger)
	priceCategories := repositories.NewPriceCategoryRepository(s.pool, s.logger)
	orders := repositories.NewOrderRepository(s.pool, s.logger)
	lines := repositories.NewOrderEquipmentRepository(s.pool, s.logger)
	payments := repositories.NewPaymentRepository(s.pool, s.logger)

	febStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	febEnd := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	movedEnd := time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC)

	// Заказ без платежей, чтобы его можно было удалить (payments - RESTRICT).
	newOrder := func() uint64 {
		o, err := orders.Create(s.ctx, nil, dto.CreateOrderDTO{
			DateStart: types.NewTime(febStart),
			DateEnd:   types.NewTime(febEnd),
			Status:    "active",
			ClientID:  2,
		})
		s.Require().NoError(err)
		return o.ID
	}

	return []crudCase{
		{
			name: "категория",
			create: func() uint64 {
				c, err := categories.Create(s.ctx, nil, dto.CreateCategoryDTO{Name: "Генераторы", BaseCategoryID: null.Uint64From(3)})
				s.Require().NoError(err)
				return c.ID
			},
			checkCreated: func(id uint64) {
				got, err := categories.FindByID(s.ctx, id)
				s.Require().NoError(err)
				s.Equal("Генераторы", got.Name)
				s.Require().NotNil(got.BaseCategoryID)
				s.Equal(uint64(3), *got.BaseCategoryID)
			},
			update: func(id uint64) error {
				return categories.Update(s.ctx, nil, id, dto.UpdateCategoryDTO{Name: utils.ToPtr("Электростанции")}, types.Fields{"name": {}})
			},
			checkUpdated: func(id uint64) {
				got, err := categories.FindByID(s.ctx, id)
				s.Require().NoError(err)
				s.Equal("Электростанции", got.Name)
				s.NotNil(got.BaseCategoryID, "родитель не присылался и не должен меняться")
			},
			find:   func(id uint64) error { _, err := categories.FindByID(s.ctx, id); return err },
			delete: func(id uint64) error { return categories.Delete(s.ctx, nil, id) },
		},
		{
			name: "оборудование",
			create: func() uint64 {
				e, err := equipment.Create(s.ctx, nil, dto.CreateEquipmentDTO{
					Name: "Виброплита", InventoryNumber: "INV-200", CategoryID: null.Uint64From(1),
				})
				s.Require().NoError(err)
				return e.ID
			},
			checkCreated: func(id uint64) {
				got, err := equipment.FindByID(s.ctx, id)
				s.Require().NoError(err)
				s.Equal("Виброплита", got.Name)
				s.Equal("INV-200", got.InventoryNumber)
				s.Require().NotNil(got.CategoryID)
				s.Equal(uint64(1), *got.CategoryID)
			},
			update: func(id uint64) error {
				return equipment.Update(s.ctx, nil, id, dto.UpdateEquipmentDTO{InventoryNumber: utils.ToPtr("INV-201")}, types.Fields{"inventoryNumber": {}})
			},
			checkUpdated: func(id uint64) {
				got, err := equipment.FindByID(s.ctx, id)
				s.Require().NoError(err)
				s.Equal("INV-201", got.InventoryNumber)
				s.Equal("Виброплита", got.Name)
			},
			find:   func(id uint64) error { _, err := equipment.FindByID(s.ctx, id); return err },
			delete: func(id uint64) error { return equipment.Delete(s.ctx, nil, id) },
		},
		{
			name: "клиент",
			create: func() uint64 {
				c, err := clients.Create(s.ctx, nil, dto.CreateClientDTO{FullName: "Сидоров Сидор", Phone: "+79995554433"})
				s.Require().NoError(err)
				return c.ID
			},
			checkCreated: func(id uint64) {
				got, err := clients.FindByID(s.ctx, id)
				s.Require().NoError(err)
				s.Equal("Сидоров Сидор", got.FullName)
				s.Equal("+79995554433", got.Phone)
			},
			update: func(id uint64) error {
				return clients.Update(s.ctx, nil, id, dto.UpdateClientDTO{Phone: utils.ToPtr("+79995554400")})
			},
			checkUpdated: func(id uint64) {
				got, err := clients.FindByID(s.ctx, id)
				s.Require().NoError(err)
				s.Equal("+79995554400", got.Phone)
				s.Equal("Сидоров Сидор", got.FullName)
			},
			find:   func(id uint64) error { _, err := clients.FindByID(s.ctx, id); return err },
			delete: func(id uint64) error { return clients.Delete(s.ctx, nil, id) },
		},
		{
			name: "ценовая категория",
			create: func() uint64 {
				pc, err := priceCategories.Create(s.ctx, nil, dto.CreatePriceCategoryDTO{
					DateStart: types.NewTime(febStart), DateEnd: types.NewTime(febEnd),
				})
				s.Require().NoError(err)
				return pc.ID
			},
			checkCreated: func(id uint64) {
				got, err := priceCategories.FindByID(s.ctx, id)
				s.Require().NoError(err)
				s.True(febStart.Equal(got.DateStart))
				s.True(febEnd.Equal(got.DateEnd))
			},
			update: func(id uint64) error {
				return priceCategories.Update(s.ctx, nil, id, dto.UpdatePriceCategoryDTO{DateEnd: utils.ToPtr(types.NewTime(movedEnd))})
			},
			checkUpdated: func(id uint64) {
				got, err := priceCategories.FindByID(s.ctx, id)
				s.Require().NoError(err)
				s.True(movedEnd.Equal(got.DateEnd))
				s.True(febStart.Equal(got.DateStart))
			},
			find:   func(id uint64) error { _, err := priceCategories.FindByID(s.ctx, id); return err },
			delete: func(id uint64) error { return priceCategories.Delete(s.ctx, nil, id) },
		},
		{
			name:   "заказ",
			create: newOrder,
			checkCreated: func(id uint64) {
				got, err := orders.FindByID(s.ctx, id)
				s.Require().NoError(err)
				s.True(febStart.Equal(got.DateStart))
				s.True(febEnd.Equal(got.DateEnd))
				s.Equal("active", got.Status)
				s.Equal(uint64(2), got.ClientID)
				s.Nil(got.PriceCategoryID)
			},
			update: func(id uint64) error {
				return orders.Update(s.ctx, nil, id,
					dto.UpdateOrderDTO{Status: utils.ToPtr("completed"), PriceCategoryID: null.Uint64From(1)},
					types.Fields{"status": {}, "priceCategoryId": {}})
			},
			checkUpdated: func(id uint64) {
				got, err := orders.FindByID(s.ctx, id)
				s.Require().NoError(err)
				s.Equal("completed", got.Status)
				s.Require().NotNil(got.PriceCategoryID)
				s.Equal(uint64(1), *got.PriceCategoryID)
				s.True(febStart.Equal(got.DateStart))
			},
			find:   func(id uint64) error { _, err := orders.FindByID(s.ctx, id); return err },
			delete: func(id uint64) error { return orders.Delete(s.ctx, nil, id) },
		},
		{
			name: "позиция заказа",
			create: func() uint64 {
				oe, err := lines.Create(s.ctx, nil, dto.CreateOrderEquipmentDTO{
					Quantity: 4, RentPrice: utils.ToPtr(75.5), OrderID: newOrder(), EquipmentID: 3,
				})
				s.Require().NoError(err)
				return oe.ID
			},
			checkCreated: func(id uint64) {
				got, err := lines.FindByID(s.ctx, id)
				s.Require().NoError(err)
				s.Equal(4, got.Quantity)
				s.InDelta(75.5, got.RentPrice, 0.001)
				s.Equal(uint64(3), got.EquipmentID)
				s.Require().NotNil(got.Equipment)
				s.Equal("INV-003", got.Equipment.InventoryNumber)
			},
			update: func(id uint64) error {
				return lines.Update(s.ctx, nil, id, dto.UpdateOrderEquipmentDTO{Quantity: utils.ToPtr(1)})
			},
			checkUpdated: func(id uint64) {
				got, err := lines.FindByID(s.ctx, id)
				s.Require().NoError(err)
				s.Equal(1, got.Quantity)
				s.InDelta(75.5, got.RentPrice, 0.001)
			},
			find:   func(id uint64) error { _, err := lines.FindByID(s.ctx, id); return err },
			delete: func(id uint64) error { return lines.Delete(s.ctx, nil, id) },
		},
		{
			name: "платеж",
			create: func() uint64 {
				p, err := payments.Create(s.ctx, nil, dto.CreatePaymentDTO{
					Amount: 120, PaymentDate: types.NewTime(febStart), PaymentType: "card", OrderID: 1,
				})
				s.Require().NoError(err)
				return p.ID
			},
			checkCreated: func(id uint64) {
				got, err := payments.FindByID(s.ctx, id)
				s.Require().NoError(err)
				s.InDelta(120, got.Amount, 0.001)
				s.True(febStart.Equal(got.PaymentDate))
				s.Equal("card", got.PaymentType)
				s.Equal(uint64(1), got.OrderID)
			},
			update: func(id uint64) error {
				return payments.Update(s.ctx, nil, id, dto.UpdatePaymentDTO{Amount: utils.ToPtr(99.9)})
			},
			checkUpdated: func(id uint64) {
				got, err := payments.FindByID(s.ctx, id)
				s.Require().NoError(err)
				s.InDelta(99.9, got.Amount, 0.001)
				s.Equal("card", got.PaymentType)
			},
			find:   func(id uint64) error { _, err := payments.FindByID(s.ctx, id); return err },
			delete: func(id uint64) error { return payments.Delete(s.ctx, nil, id) },
		},
	}
}

func (s *RepositorySuite) TestCRUDRoundTrip() {
	for _, tc := range s.crudCases() {
		s.Run(tc.name, func() {
			id := tc.create()
			tc.checkCreated(id)

			s.Require().NoError(tc.update(id))
			tc.checkUpdated(id)

			s.Require().NoError(tc.delete(id))
			s.ErrorIs(tc.find(id), apperrors.ErrNotFound)
			s.ErrorIs(tc.delete(id), apperrors.ErrNotFound, "повторное удаление")
			s.ErrorIs(tc.update(id), apperrors.ErrNotFound, "обновление удаленной записи")
		})
	}
}

// Активный заказ 10.01-20.01 занимает INV-001 и INV-002 только в своем периоде.
func (s *RepositorySuite) TestAvailableEquipmentOutsideOrderPeriod() {
	list, err := s.reports().AvailableEquipment(s.ctx,
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Equal([]string{"INV-001", "INV-002", "INV-003", "INV-004", "INV-005"}, inventoryNumbers(list))

	list, err = s.reports().AvailableEquipment(s.ctx,
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.NotContains(inventoryNumbers(list), "INV-001")
	s.NotContains(inventoryNumbers(list), "INV-002")
}

// Начисления 1000 и платежи 400 дают долг 600.
func (s *RepositorySuite) TestClientDebtFromCharges() {
	clients := repositories.NewClientRepository(s.pool, s.logger)
	orders := repositories.NewOrderRepository(s.pool, s.logger)
	lines := repositories.NewOrderEquipmentRepository(s.pool, s.logger)
	payments := repositories.NewPaymentRepository(s.pool, s.logger)

	client, err := clients.Create(s.ctx, nil, dto.CreateClientDTO{FullName: "ООО Фундамент", Phone: "+74950001122"})
	s.Require().NoError(err)

	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	for _, items := range [][]dto.CreateOrderEquipmentDTO{
		{{Quantity: 2, RentPrice: utils.ToPtr(300.0), EquipmentID: 1}},
		{{Quantity: 1, RentPrice: utils.ToPtr(250.0), EquipmentID: 2}, {Quantity: 1, RentPrice: utils.ToPtr(150.0), EquipmentID: 3}},
	} {
		order, err := orders.Create(s.ctx, nil, dto.CreateOrderDTO{
			DateStart: types.NewTime(start), DateEnd: types.NewTime(start.AddDate(0, 0, 3)),
			Status: "active", ClientID: client.ID,
		})
		s.Require().NoError(err)
		for _, item := range items {
			item.OrderID = order.ID
			_, err := lines.Create(s.ctx, nil, item)
			s.Require().NoError(err)
		}
		for _, amount := range []float64{120, 80} {
			_, err := payments.Create(s.ctx, nil, dto.CreatePaymentDTO{
				Amount: amount, PaymentDate: types.NewTime(start), PaymentType: "cash", OrderID: order.ID,
			})
			s.Require().NoError(err)
		}
	}

	debt, err := s.reports().ClientDebt(s.ctx, client.ID)
	s.Require().NoError(err)
	s.InDelta(1000, debt.TotalOrderAmount, 0.001)
	s.InDelta(400, debt.TotalPaid, 0.001)
	s.InDelta(600, debt.Debt, 0.001)
}
