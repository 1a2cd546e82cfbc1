package seeders

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/repositories"
	"rental-system/pkg/types"
	"rental-system/pkg/utils"
)

// Summary - сколько записей создал сидер.
type Summary struct {
	Categories      int
	Equipment       int
	Clients         int
	PriceCategories int
	Orders          int
	OrderEquipment  int
	Payments        int
}

type Seeder struct {
	txManager       repositories.TxManagerInterface
	categories      repositories.CategoryRepositoryInterface
	equipment       repositories.EquipmentRepositoryInterface
	clients         repositories.ClientRepositoryInterface
	priceCategories repositories.PriceCategoryRepositoryInterface
	orders          repositories.OrderRepositoryInterface
	orderEquipment  repositories.OrderEquipmentRepositoryInterface
	payments        repositories.PaymentRepositoryInterface
	logger          *zap.Logger
}

func New(db *pgxpool.Pool, logger *zap.Logger) *Seeder {
	return &Seeder{
		txManager:       repositories.NewTxManager(db),
		categories:      repositories.NewCategoryRepository(db, logger),
		equipment:       repositories.NewEquipmentRepository(db, logger),
		clients:         repositories.NewClientRepository(db, logger),
		priceCategories: repositories.NewPriceCategoryRepository(db, logger),
		orders:          repositories.NewOrderRepository(db, logger),
		orderEquipment:  repositories.NewOrderEquipmentRepository(db, logger),
		payments:        repositories.NewPaymentRepository(db, logger),
		logger:          logger,
	}
}

// Seed наполняет пустую базу демо-данными. Все вставки идут одной транзакцией:
// при любой ошибке база остается как была.
func (s *Seeder) Seed(ctx context.Context) (*Summary, error) {
	var summary Summary
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		categoryIDs := map[string]uint64{}
		for _, c := range categoriesData {
			d := dto.CreateCategoryDTO{Name: c.Name}
			if c.Parent != "" {
				d.BaseCategoryID = null.Uint64From(categoryIDs[c.Parent])
			}
			created, err := s.categories.Create(ctx, tx, d)
			if err != nil {
				return fmt.Errorf("категория %q: %w", c.Name, err)
			}
			categoryIDs[c.Name] = created.ID
			summary.Categories++
		}
		s.logger.Info("Категории созданы", zap.Int("count", summary.Categories))

		equipmentIDs := map[string]uint64{}
		for _, e := range equipmentData {
			created, err := s.equipment.Create(ctx, tx, dto.CreateEquipmentDTO{
				Name:            e.Name,
				InventoryNumber: e.InventoryNumber,
				CategoryID:      null.Uint64From(categoryIDs[e.Category]),
			})
			if err != nil {
				return fmt.Errorf("оборудование %q: %w", e.InventoryNumber, err)
			}
			equipmentIDs[e.InventoryNumber] = created.ID
			summary.Equipment++
		}
		s.logger.Info("Оборудование создано", zap.Int("count", summary.Equipment))

		clientIDs := map[string]uint64{}
		for _, c := range clientsData {
			created, err := s.clients.Create(ctx, tx, dto.CreateClientDTO{FullName: c.FullName, Phone: c.Phone})
			if err != nil {
				return fmt.Errorf("клиент %q: %w", c.FullName, err)
			}
			clientIDs[c.Phone] = created.ID
			summary.Clients++
		}
		s.logger.Info("Клиенты созданы", zap.Int("count", summary.Clients))

		priceCategoryIDs := make([]uint64, 0, len(priceCategoriesData))
		for _, p := range priceCategoriesData {
			created, err := s.priceCategories.Create(ctx, tx, dto.CreatePriceCategoryDTO{
				DateStart: types.NewTime(p.Start),
				DateEnd:   types.NewTime(p.End),
			})
			if err != nil {
				return fmt.Errorf("ценовая категория: %w", err)
			}
			priceCategoryIDs = append(priceCategoryIDs, created.ID)
			summary.PriceCategories++
		}
		s.logger.Info("Ценовые категории созданы", zap.Int("count", summary.PriceCategories))

		orderIDs := make([]uint64, 0, len(ordersData))
		for _, o := range ordersData {
			d := dto.CreateOrderDTO{
				DateStart: types.NewTime(o.Start),
				DateEnd:   types.NewTime(o.End),
				Status:    o.Status,
				ClientID:  clientIDs[o.Client],
			}
			if o.PriceCategory >= 0 {
				d.PriceCategoryID = null.Uint64From(priceCategoryIDs[o.PriceCategory])
			}
			created, err := s.orders.Create(ctx, tx, d)
			if err != nil {
				return fmt.Errorf("заказ клиента %q: %w", o.Client, err)
			}
			orderIDs = append(orderIDs, created.ID)
			summary.Orders++

			for _, item := range o.Items {
				_, err := s.orderEquipment.Create(ctx, tx, dto.CreateOrderEquipmentDTO{
					Quantity:    item.Quantity,
					RentPrice:   utils.ToPtr(item.RentPrice),
					OrderID:     created.ID,
					EquipmentID: equipmentIDs[item.Inventory],
				})
				if err != nil {
					return fmt.Errorf("позиция %q заказа %d: %w", item.Inventory, created.ID, err)
				}
				summary.OrderEquipment++
			}
		}
		s.logger.Info("Заказы созданы", zap.Int("orders", summary.Orders), zap.Int("items", summary.OrderEquipment))

		for _, p := range paymentsData {
			_, err := s.payments.Create(ctx, tx, dto.CreatePaymentDTO{
				Amount:      p.Amount,
				PaymentDate: types.NewTime(p.PaymentDate),
				PaymentType: p.PaymentType,
				OrderID:     orderIDs[p.Order],
			})
			if err != nil {
				return fmt.Errorf("платеж: %w", err)
			}
			summary.Payments++
		}
		s.logger.Info("Платежи созданы", zap.Int("count", summary.Payments))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
