// Файл: utils/patch.go
package utils

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"

	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
)

// BindPatch читает тело один раз: декодирует его в dto и запоминает присланные ключи.
// Так можно отличить "поле не прислано" от "поле прислано как null".
func BindPatch(ctx echo.Context, dto interface{}) (types.Fields, error) {
	raw, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return nil, apperrors.NewHttpError(400, "Не удалось прочитать тело запроса", err, nil)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return types.Fields{}, nil
	}

	var sent map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sent); err != nil {
		return nil, apperrors.NewHttpError(400, "Неверный формат данных в теле запроса", err, nil)
	}
	if err := json.Unmarshal(raw, dto); err != nil {
		return nil, apperrors.NewHttpError(400, "Неверный формат данных в теле запроса", err, nil)
	}

	fields := make(types.Fields, len(sent))
	for k := range sent {
		fields[k] = struct{}{}
	}
	return fields, nil
}
