package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	ProductID string   `json:"productId" validate:"required,objectid"`
	Role      string   `json:"role" validate:"omitempty,role"`
	Price     float64  `json:"price" validate:"gt=0"`
	IDs       []string `json:"productIds" validate:"required,min=1,dive,objectid"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	valid := sampleRequest{
		Email:     "buyer@shop.test",
		ProductID: "64b7f0c2a1b2c3d4e5f60701",
		Role:      "seller",
		Price:     10,
		IDs:       []string{"64b7f0c2a1b2c3d4e5f60702"},
	}
	assert.NoError(t, v.Validate(&valid))

	tests := []struct {
		name     string
		mutate   func(r *sampleRequest)
		contains string
	}{
		{name: "missing email", mutate: func(r *sampleRequest) { r.Email = "" }, contains: "email is required"},
		{name: "malformed email", mutate: func(r *sampleRequest) { r.Email = "nope" }, contains: "email must be a valid email"},
		{name: "malformed id", mutate: func(r *sampleRequest) { r.ProductID = "123" }, contains: "productId must be a 24 character hex id"},
		{name: "unknown role", mutate: func(r *sampleRequest) { r.Role = "owner" }, contains: "role must be one of"},
		{name: "non-positive price", mutate: func(r *sampleRequest) { r.Price = 0 }, contains: "price must satisfy gt=0"},
		{name: "malformed id in list", mutate: func(r *sampleRequest) { r.IDs = []string{"x"} }, contains: "must be a 24 character hex id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := v.Validate(&req)
			assert.ErrorContains(t, err, tt.contains)
		})
	}
}
