package validation

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-system/pkg/types"
)

type sample struct {
	Name     string      `json:"name" validate:"required,notblank,max=10"`
	Phone    string      `json:"phone" validate:"omitempty,phone"`
	ParentID null.Uint64 `json:"parentId" validate:"omitempty,gt=0"`
	Start    types.Time  `json:"start" validate:"required"`
	Price    *float64    `json:"price" validate:"required,gte=0"`
}

func validSample() sample {
	price := 0.0
	return sample{Name: "Кран", Start: types.NewTime(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)), Price: &price}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	out := map[string]string{}
	for _, e := range verrs {
		out[e.Field()] = e.Tag()
	}
	return out
}

func TestValidate_OK(t *testing.T) {
	v := New()
	s := validSample()
	s.Phone = "+7 (999) 000-00-00"
	s.ParentID = null.Uint64From(3)
	assert.NoError(t, v.Validate(s))
}

func TestValidate_Required(t *testing.T) {
	v := New()
	// null.Uint64 без значения пропускается через omitempty
	errs := fieldErrors(t, v.Validate(sample{}))

	assert.Equal(t, "required", errs["name"])
	assert.Equal(t, "required", errs["start"])
	assert.Equal(t, "required", errs["price"])
	assert.NotContains(t, errs, "parentId")
}

func TestValidate_Rules(t *testing.T) {
	v := New()

	s := validSample()
	s.Name = "   "
	assert.Equal(t, "notblank", fieldErrors(t, v.Validate(s))["name"])

	s = validSample()
	s.Phone = "call me"
	assert.Equal(t, "phone", fieldErrors(t, v.Validate(s))["phone"])

	s = validSample()
	negative := -1.0
	s.Price = &negative
	assert.Equal(t, "gte", fieldErrors(t, v.Validate(s))["price"])
}
