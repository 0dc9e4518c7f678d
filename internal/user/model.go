package user

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"bookshop-be/internal/utils"
)

type Role string

const (
	RoleAdmin    Role = utils.RoleAdmin
	RoleCustomer Role = utils.RoleCustomer
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Roles is stored as a JSON array in users.roles.
type Roles []Role

func (r Roles) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]Role(r))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (r *Roles) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*r = Roles{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("roles: unsupported type %T", src)
	}
	return json.Unmarshal(raw, (*[]Role)(r))
}

func (r Roles) Strings() []string {
	out := make([]string, len(r))
	for i, role := range r {
		out[i] = string(role)
	}
	return out
}

type User struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Roles      Roles     `json:"roles"`
	Status     Status    `json:"status"`
	Address    *string   `json:"address"`
	Phone      *string   `json:"phone"`
	ProvinceID *int      `json:"province_id"`
	CityID     *int      `json:"city_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateShippingParams leaves a column untouched when its field is nil.
type UpdateShippingParams struct {
	UserID     uint
	Address    *string
	Phone      *string
	ProvinceID *int
	CityID     *int
}
