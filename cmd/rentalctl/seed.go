package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rental-system/seeders"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Наполнить пустую базу демо-данными",
	Long: `Создает 4 категории, 5 единиц оборудования, 3 клиентов, 2 ценовые категории,
3 заказа с позициями и 3 платежа. Все в одной транзакции.

Пример:
  rentalctl migrate up && rentalctl seed`,
	Run: run(func(ctx context.Context, e *env, _ []string) error {
		summary, err := seeders.New(e.db, e.logger).Seed(ctx)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		fmt.Println(bold("🎉 База данных наполнена"))
		fmt.Printf("   Категории:          %d\n", summary.Categories)
		fmt.Printf("   Оборудование:       %d\n", summary.Equipment)
		fmt.Printf("   Клиенты:            %d\n", summary.Clients)
		fmt.Printf("   Ценовые категории:  %d\n", summary.PriceCategories)
		fmt.Printf("   Заказы:             %d (позиций: %d)\n", summary.Orders, summary.OrderEquipment)
		fmt.Printf("   Платежи:            %d\n", summary.Payments)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
