package printforge_test

import (
	"testing"

	printforge "github.com/printforge/go-printforge"
	"github.com/stretchr/testify/assert"
)

func TestLoginRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     printforge.LoginRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  printforge.LoginRequest{Email: "ada@example.com", Password: "secret"},
		},
		{
			name:    "bad email",
			req:     printforge.LoginRequest{Email: "nope", Password: "secret"},
			wantErr: true,
		},
		{
			name:    "missing password",
			req:     printforge.LoginRequest{Email: "ada@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	valid := printforge.RegisterRequest{
		Email:       "new@example.com",
		Password:    "long-enough-password",
		FirstName:   "New",
		LastName:    "User",
		PhoneNumber: "+79261234567",
	}

	assert.NoError(t, valid.Validate())

	shortPassword := valid
	shortPassword.Password = "short"
	assert.Error(t, shortPassword.Validate())

	badPhone := valid
	badPhone.PhoneNumber = "not-a-phone"
	assert.Error(t, badPhone.Validate())

	localPhone := valid
	localPhone.PhoneNumber = "1234567"
	assert.Error(t, localPhone.Validate(), "phone must be in international format")

	noFirstName := valid
	noFirstName.FirstName = ""
	assert.Error(t, noFirstName.Validate())
}

func TestUpdateProfileRequestValidate(t *testing.T) {
	valid := printforge.UpdateProfileRequest{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		PhoneNumber:     "+79261234567",
		CurrentPassword: "hunter2",
	}

	assert.NoError(t, valid.Validate())

	noConfirmation := valid
	noConfirmation.CurrentPassword = ""
	assert.Error(t, noConfirmation.Validate(), "profile updates require the current password")
}

func TestCreateOrderRequestValidate(t *testing.T) {
	assert.NoError(t, printforge.CreateOrderRequest{Comment: "benchy"}.Validate())
	assert.Error(t, printforge.CreateOrderRequest{}.Validate())
}
