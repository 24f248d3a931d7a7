package printforge

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/nyaruka/phonenumbers"
)

// User mirrors the backend user entity.
type User struct {
	ID              int64    `json:"id"`
	Email           string   `json:"email"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	PhoneNumber     string   `json:"phoneNumber"`
	TelegramAccount string   `json:"telegramAccount,omitempty"`
	Role            UserRole `json:"role"`
	IsActive        bool     `json:"isActive"`
}

// Order mirrors the backend order entity. The backend owns every field;
// the client only creates orders and reads them back.
type Order struct {
	ID          int64      `json:"id"`
	Customer    User       `json:"customer"`
	Employee    *User      `json:"employee,omitempty"`
	Status      string     `json:"status,omitempty"`
	StatusID    int        `json:"statusId,omitempty"`
	TotalPrice  float64    `json:"totalPrice"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Comment     string     `json:"comment,omitempty"`
}

// OrderHistory is one entry of an order's status trail.
type OrderHistory struct {
	ID        int64     `json:"id"`
	Status    string    `json:"status,omitempty"`
	StatusID  int       `json:"statusId,omitempty"`
	Employee  User      `json:"employee"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderStatus is one entry of the id-to-description status catalog.
type OrderStatus struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// RegisterRequest carries new-user registration data.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	PhoneNumber     string `json:"phoneNumber"`
	TelegramAccount string `json:"telegramAccount,omitempty"`
}

// Validate will run validation rules
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.PhoneNumber, validation.Required, validation.By(validatePhoneNumber)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
	)
}

// CreateOrderRequest is the client-facing order creation payload. The
// customer id, initial status and price are filled in by the SDK; see
// Client.CreateOrder.
type CreateOrderRequest struct {
	Comment string `json:"comment"`
}

// Validate will run validation rules
func (r CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Comment, validation.Required, validation.Length(1, 2000)),
	)
}

// createOrderPayload is the wire shape the backend expects on order
// creation.
type createOrderPayload struct {
	CustomerID int64   `json:"customerId"`
	Comment    string  `json:"comment"`
	StatusID   int     `json:"statusId"`
	TotalPrice float64 `json:"totalPrice"`
}

// UserProfile mirrors the /users/me resource.
type UserProfile struct {
	ID              int64    `json:"id"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	PhoneNumber     string   `json:"phoneNumber"`
	TelegramAccount string   `json:"telegramAccount,omitempty"`
	Role            UserRole `json:"role"`
	IsActive        bool     `json:"isActive"`
}

// UpdateProfileRequest updates the caller's profile. The backend requires
// the current password to confirm the change.
type UpdateProfileRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// Validate will run validation rules
func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.PhoneNumber, validation.Required, validation.By(validatePhoneNumber)),
		validation.Field(&r.CurrentPassword, validation.Required),
	)
}

func validatePhoneNumber(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	parsed, err := phonenumbers.Parse(s, "")
	if err != nil {
		return errors.New("must be a phone number in international format")
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return errors.New("must be a valid phone number")
	}
	return nil
}
