package httptransport

import "time"

// ErrorResponse is the module's wire error shape.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CreateBusinessUnitRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type BusinessUnitResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Gender   string `json:"gender,omitempty"`
	Role     string `json:"role,omitempty"`
	UnitID   *int   `json:"unit_id,omitempty"`
}

type UpdateEmployeeRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Gender   *string `json:"gender,omitempty"`
	UnitID   *int    `json:"unit_id,omitempty"`
}

type UserResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Gender    string    `json:"gender,omitempty"`
	UnitID    *int      `json:"unit_id"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminStatsResponse struct {
	TotalEmployees     int64 `json:"total_employees"`
	TotalBusinessUnits int64 `json:"total_business_units"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
