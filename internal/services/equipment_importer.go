package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/events"
	"rental-system/internal/repositories"
	apperrors "rental-system/pkg/errors"
)

// StructValidator - то же, что echo.Validator.
type StructValidator interface {
	Validate(i interface{}) error
}

// ImportResult - итог импорта одного файла.
type ImportResult struct {
	Sheet     string `json:"sheet"`
	HeaderRow int    `json:"headerRow"`
	Inserted  int    `json:"inserted"`
	Updated   int    `json:"updated"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
	// Названия категорий из файла, которых нет в базе
	UnknownCategories []string `json:"unknownCategories"`
}

type importColumns struct {
	name, inventory, category int
}

type EquipmentImportService struct {
	BaseService
	equipmentRepo repositories.EquipmentRepositoryInterface
	categoryRepo  repositories.CategoryRepositoryInterface
	validator     StructValidator
}

func NewEquipmentImportService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	validator StructValidator,
	bus EventPublisher,
	logger *zap.Logger,
) *EquipmentImportService {
	return &EquipmentImportService{
		BaseService:   NewBaseService(events.EntityEquipment, bus, logger),
		equipmentRepo: equipmentRepo,
		categoryRepo:  categoryRepo,
		validator:     validator,
	}
}

func (s *EquipmentImportService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()
	return s.importWorkbook(ctx, f)
}

func (s *EquipmentImportService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения книги: %w", err)
	}
	defer f.Close()
	return s.importWorkbook(ctx, f)
}

func (s *EquipmentImportService) importWorkbook(ctx context.Context, f *excelize.File) (*ImportResult, error) {
	sheet, rows, headerRow, cols, ok := findHeader(f)
	if !ok {
		return nil, apperrors.NewInvalidInputError("не найдена шапка таблицы: нужны колонки 'Наименование' и 'Инвентарный номер'")
	}
	s.logger.Info("Заголовки найдены", zap.String("sheet", sheet), zap.Int("row", headerRow+1))

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Sheet: sheet, HeaderRow: headerRow + 1, UnknownCategories: []string{}}
	unknown := map[string]struct{}{}

	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		name := cell(row, cols.name)
		inventory := cell(row, cols.inventory)
		if (name == "" && inventory == "") || isTotalRow(name) {
			result.Skipped++
			continue
		}

		d := dto.CreateEquipmentDTO{Name: name, InventoryNumber: inventory}
		if categoryName := cell(row, cols.category); categoryName != "" {
			if id := matchCategory(categoryName, categories); id > 0 {
				d.CategoryID = null.Uint64From(id)
			} else if _, seen := unknown[categoryName]; !seen {
				unknown[categoryName] = struct{}{}
				result.UnknownCategories = append(result.UnknownCategories, categoryName)
				s.logger.Warn("Категория не найдена, привязка пропущена",
					zap.Int("line", lineNum),
					zap.String("category", categoryName),
				)
			}
		}

		if s.validator != nil {
			if err := s.validator.Validate(d); err != nil {
				s.logger.Warn("Строка не прошла проверку", zap.Int("line", lineNum), zap.Error(err))
				result.Failed++
				continue
			}
		}

		isInsert, err := s.equipmentRepo.UpsertByInventoryNumber(ctx, nil, d)
		if err != nil {
			s.logger.Error("Ошибка сохранения строки",
				zap.Int("line", lineNum),
				zap.String("inventoryNumber", inventory),
				zap.Error(err),
			)
			result.Failed++
			continue
		}
		if isInsert {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	s.logger.Info("Импорт оборудования завершен",
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)
	if result.Inserted+result.Updated > 0 {
		s.emitBulk(ctx, events.ActionImported, int64(result.Inserted+result.Updated))
	}
	return result, nil
}

// findHeader ищет первую строку, где есть и наименование, и инвентарный номер.
func findHeader(f *excelize.File) (string, [][]string, int, importColumns, bool) {
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for rIdx, row := range rows {
			cols := importColumns{name: -1, inventory: -1, category: -1}
			for cIdx, title := range row {
				t := strings.ToLower(strings.TrimSpace(title))
				switch {
				case strings.Contains(t, "инвентар") || strings.Contains(t, "inventory") || t == "№":
					cols.inventory = cIdx
				case strings.Contains(t, "категор") || strings.Contains(t, "category"):
					cols.category = cIdx
				case strings.Contains(t, "наимен") || strings.Contains(t, "назван") || t == "name":
					cols.name = cIdx
				}
			}
			if cols.name != -1 && cols.inventory != -1 {
				return sheet, rows, rIdx, cols, true
			}
		}
	}
	return "", nil, -1, importColumns{}, false
}

// matchCategory сравнивает названия без регистра, пробелов и кавычек.
// Точное совпадение важнее вхождения.
func matchCategory(name string, categories []entities.Category) uint64 {
	clean := cleanString(name)
	if clean == "" {
		return 0
	}
	for _, c := range categories {
		if cleanString(c.Name) == clean {
			return c.ID
		}
	}
	for _, c := range categories {
		cdb := cleanString(c.Name)
		if cdb != "" && (strings.Contains(cdb, clean) || strings.Contains(clean, cdb)) {
			return c.ID
		}
	}
	return 0
}

var cleanReplacer = strings.NewReplacer(
	"\"", "",
	"«", "",
	"»", "",
	" ", "",
	".", "",
	"-", "",
	"_", "",
)

func cleanString(in string) string {
	return strings.TrimSpace(cleanReplacer.Replace(strings.ToLower(in)))
}

// isTotalRow - строки "Итого"/"Всего" в конце таблицы.
func isTotalRow(val string) bool {
	v := strings.ToLower(strings.TrimSpace(val))
	return strings.Contains(v, "итого") || strings.Contains(v, "всего")
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
