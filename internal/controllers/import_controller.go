package controllers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rental-system/internal/services"
	"rental-system/pkg/config"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/filestorage"
	"rental-system/pkg/utils"
)

// EquipmentImporter - то, что контроллеру нужно от сервиса импорта.
type EquipmentImporter interface {
	ImportFile(ctx context.Context, path string) (*services.ImportResult, error)
}

type ImportController struct {
	importer    EquipmentImporter
	fileStorage filestorage.FileStorageInterface
	uploads     config.UploadsConfig
	logger      *zap.Logger
}

func NewImportController(
	importer EquipmentImporter,
	fileStorage filestorage.FileStorageInterface,
	uploads config.UploadsConfig,
	logger *zap.Logger,
) *ImportController {
	return &ImportController{importer: importer, fileStorage: fileStorage, uploads: uploads, logger: logger}
}

// ImportEquipment принимает multipart-поле "file", сохраняет книгу в архив импортов и загружает оборудование.
func (c *ImportController) ImportEquipment(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Файл не был передан", err, nil),
			c.logger,
		)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "Ошибка обработки файла", err, nil),
			c.logger,
		)
	}
	defer src.Close()

	if err := utils.ValidateUpload(fileHeader, src, config.UploadEquipmentImport, c.uploads.MaxSizeMB); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, err.Error(), apperrors.ErrBadRequest, map[string]interface{}{"file": fileHeader.Filename}),
			c.logger,
		)
	}

	rule := config.UploadRules[config.UploadEquipmentImport]
	savedPath, err := c.fileStorage.Save(src, fileHeader.Filename, rule.PathPrefix)
	if err != nil {
		c.logger.Error("Ошибка сохранения файла импорта", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "Ошибка сохранения файла", err, nil),
			c.logger,
		)
	}
	c.logger.Info("Файл импорта сохранен", zap.String("path", savedPath), zap.String("original", fileHeader.Filename))

	result, err := c.importer.ImportFile(ctx.Request().Context(), c.fileStorage.FullPath(savedPath))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}
