package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rental-system/internal/repositories"
	"rental-system/internal/services"
	"rental-system/pkg/validation"
)

var importEquipmentCmd = &cobra.Command{
	Use:   "import-equipment <file.xlsx>",
	Short: "Загрузить оборудование из XLSX (upsert по инвентарному номеру)",
	Long: `Ищет строку заголовков с колонками "Наименование" и "Инвентарный номер"
(и необязательной "Категория"), затем построчно добавляет или обновляет оборудование.`,
	Args: cobra.ExactArgs(1),
	Run: run(func(ctx context.Context, e *env, args []string) error {
		importer := services.NewEquipmentImportService(
			repositories.NewEquipmentRepository(e.db, e.logger),
			repositories.NewCategoryRepository(e.db, e.logger),
			validation.New(),
			nil,
			e.logger,
		)

		fmt.Printf("🚀 Импорт файла: %s\n", args[0])
		res, err := importer.ImportFile(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Println("---------------------------------------------------------")
		fmt.Printf("🏁 Лист %q, заголовки в строке %d\n", res.Sheet, res.HeaderRow)
		fmt.Printf("   %s Новых записей:     %d\n", green("✅"), res.Inserted)
		fmt.Printf("   %s Обновлено записей: %d\n", yellow("🔄"), res.Updated)
		fmt.Printf("   ⏭️  Пропущено строк:   %d\n", res.Skipped)
		fmt.Printf("   %s Ошибок:            %d\n", red("❌"), res.Failed)
		if len(res.UnknownCategories) > 0 {
			fmt.Printf("   ⚠️  Неизвестные категории: %s\n", strings.Join(res.UnknownCategories, ", "))
		}
		fmt.Println("---------------------------------------------------------")
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(importEquipmentCmd)
}
