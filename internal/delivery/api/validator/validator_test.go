package validator

import (
	"testing"

	domainerrors "acp/internal/domain/errors"
	"acp/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name" validate:"required"`
}

type payload struct {
	Owner string  `json:"owner" validate:"omitempty,max=4"`
	Items []*item `json:"items" validate:"required,min=1,dive,required"`
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()

	v := New()

	tests := []struct {
		name    string
		in      *payload
		details string
	}{
		{name: "valid", in: &payload{Items: []*item{{Name: "a"}}}},
		{name: "missing items", in: &payload{}, details: "items is required"},
		{name: "empty items", in: &payload{Items: []*item{}}, details: "items must have at least 1 entries"},
		{name: "null entry", in: &payload{Items: []*item{{Name: "a"}, nil}}, details: "items[1] is required"},
		{name: "nested field", in: &payload{Items: []*item{{}}}, details: "items[0].name is required"},
		{
			name:    "several failures",
			in:      &payload{Owner: "toolong", Items: []*item{{}}},
			details: "owner must be at most 4 long; items[0].name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(tt.in)
			if tt.details == "" {
				assert.NoError(t, err)

				return
			}

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}
