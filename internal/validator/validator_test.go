package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
	Price int    `json:"price" validate:"gte=0"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{Email: "ok@example.com", Name: "Thing", Price: 10})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{Email: "not-an-email", Price: -5})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	// Keys come from the json tags, not the Go field names.
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "This field is required", vErr.Errors["name"])
	assert.Equal(t, "Must be greater than or equal to 0", vErr.Errors["price"])
	assert.NotContains(t, vErr.Errors, "Email")
}
