package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"rental-system/internal/services"
	"rental-system/pkg/config"
	"rental-system/pkg/filestorage"
)

type fakeImporter struct {
	path string
}

func (f *fakeImporter) ImportFile(_ context.Context, path string) (*services.ImportResult, error) {
	f.path = path
	return &services.ImportResult{Sheet: "Sheet1", HeaderRow: 1, Inserted: 2}, nil
}

func multipartBody(t *testing.T, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func xlsxBytes(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Инвентарный номер", "Наименование"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func importRequest(t *testing.T, fileName string, content []byte) (*httptest.ResponseRecorder, *fakeImporter) {
	t.Helper()
	storage, err := filestorage.NewLocalFileStorage(t.TempDir())
	require.NoError(t, err)
	importer := &fakeImporter{}
	c := NewImportController(importer, storage, config.UploadsConfig{MaxSizeMB: 1}, zap.NewNop())

	e := echo.New()
	e.POST("/api/equipment/import", c.ImportEquipment)

	body, contentType := multipartBody(t, fileName, content)
	req := httptest.NewRequest(http.MethodPost, "/api/equipment/import", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, importer
}

func TestImportEquipment_OK(t *testing.T) {
	rec, importer := importRequest(t, "склад.xlsx", xlsxBytes(t))

	require.Equal(t, http.StatusOK, rec.Code)
	var result services.ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Inserted)

	require.NotEmpty(t, importer.path)
	_, err := os.Stat(importer.path)
	assert.NoError(t, err)
}

func TestImportEquipment_WrongExtension(t *testing.T) {
	rec, importer := importRequest(t, "склад.csv", []byte("a;b\n1;2\n"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, importer.path)
}

func TestImportEquipment_NotASpreadsheet(t *testing.T) {
	rec, importer := importRequest(t, "fake.xlsx", []byte("<html><body>nope</body></html>"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, importer.path)
}

func TestImportEquipment_NoFile(t *testing.T) {
	storage, err := filestorage.NewLocalFileStorage(t.TempDir())
	require.NoError(t, err)
	c := NewImportController(&fakeImporter{}, storage, config.UploadsConfig{}, zap.NewNop())

	e := echo.New()
	e.POST("/api/equipment/import", c.ImportEquipment)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/equipment/import", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
