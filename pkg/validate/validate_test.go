package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/kirana/pkg/validate"
	"github.com/stretchr/testify/assert"
)

type registerInput struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Address  string `json:"address"  validate:"nullable,max=200"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestStructValid(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "longenough",
	})
	assert.False(t, validate.HasErrors(errs), "unexpected errors: %v", errs)
}

func TestStructRequired(t *testing.T) {
	errs := validate.Struct(registerInput{})

	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	// nullable fields are skipped when empty
	assert.NotContains(t, errs, "address")
}

func TestStructEmail(t *testing.T) {
	for _, bad := range []string{"not-an-email", "a@b", "@example.com", "a b@example.com"} {
		errs := validate.Struct(registerInput{
			Name:     "Alice",
			Email:    bad,
			Password: "longenough",
		})
		assert.Contains(t, errs, "email", "email %q should fail", bad)
	}
}

func TestStructMinLength(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "short",
	})
	assert.Contains(t, errs, "password")
}

func TestStructNullableWithValue(t *testing.T) {
	// A non-empty nullable field still runs its remaining rules.
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'x'
	}
	errs := validate.Struct(registerInput{
		Name:     "Alice",
		Address:  string(long),
		Email:    "alice@example.com",
		Password: "longenough",
	})
	assert.Contains(t, errs, "address")
}

func TestStructFirstFailurePerField(t *testing.T) {
	// Only the first failing rule is reported per field.
	errs := validate.Struct(registerInput{Name: "A"})
	assert.Equal(t, "The name field must be at least 2 characters.", errs["name"])
}

func TestStructNumericRules(t *testing.T) {
	type input struct {
		Qty int `json:"qty" validate:"gte=1,lte=10"`
	}

	assert.Contains(t, validate.Struct(input{Qty: 0}), "qty")
	assert.Contains(t, validate.Struct(input{Qty: 11}), "qty")
	assert.Empty(t, validate.Struct(input{Qty: 5}))
}

func TestStructDateRule(t *testing.T) {
	type input struct {
		On string `json:"on" validate:"required,date"`
	}

	assert.Empty(t, validate.Struct(input{On: "2026-01-15"}))
	assert.Empty(t, validate.Struct(input{On: "2026-01-15T10:30:00Z"}))
	assert.Contains(t, validate.Struct(input{On: "next tuesday"}), "on")
}

func TestStructPointerInput(t *testing.T) {
	errs := validate.Struct(&registerInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "longenough",
	})
	assert.Empty(t, errs)
}

func TestStructUsesJSONNames(t *testing.T) {
	type input struct {
		ProductName string `json:"product_name" validate:"required"`
	}
	errs := validate.Struct(input{})
	assert.Contains(t, errs, "product_name")
}
