package httpadapter

import (
	"context"
	"log/slog"

	"maxhelp/contexts/identity-access/auth-service/application"
	"maxhelp/contexts/identity-access/auth-service/domain/entities"
	"maxhelp/contexts/identity-access/auth-service/ports"
	httptransport "maxhelp/contexts/identity-access/auth-service/transport/http"
	"maxhelp/internal/shared/identity"
)

// Handler maps HTTP DTOs to auth application use-cases.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// AuthenticateHandler resolves a bearer token into a typed actor.
func (h Handler) AuthenticateHandler(ctx context.Context, token string) (identity.Actor, error) {
	return h.Service.Authenticate(ctx, token)
}

func (h Handler) LoginHandler(ctx context.Context, request httptransport.LoginRequest) (httptransport.TokenResponse, error) {
	token, err := h.Service.Login(ctx, request.Email, request.Password)
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// AdminLoginHandler accepts form credentials keyed by user name.
func (h Handler) AdminLoginHandler(ctx context.Context, username, password string) (httptransport.TokenResponse, error) {
	token, err := h.Service.AdminLogin(ctx, username, password)
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (h Handler) CreateBusinessUnitHandler(
	ctx context.Context,
	actor identity.Actor,
	request httptransport.CreateBusinessUnitRequest,
) (httptransport.BusinessUnitResponse, error) {
	unit, err := h.Service.CreateBusinessUnit(ctx, actor, request.Name, request.Location)
	if err != nil {
		return httptransport.BusinessUnitResponse{}, err
	}
	return unitResponse(unit), nil
}

func (h Handler) ListEmployeesHandler(ctx context.Context, actor identity.Actor) ([]httptransport.UserResponse, error) {
	employees, err := h.Service.ListEmployees(ctx, actor)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.UserResponse, 0, len(employees))
	for _, employee := range employees {
		items = append(items, userResponse(employee))
	}
	return items, nil
}

func (h Handler) CreateEmployeeHandler(
	ctx context.Context,
	actor identity.Actor,
	request httptransport.CreateEmployeeRequest,
) (httptransport.UserResponse, error) {
	user, err := h.Service.CreateEmployee(ctx, actor, application.CreateEmployeeInput{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		Gender:   request.Gender,
		Role:     identity.Role(request.Role),
		UnitID:   request.UnitID,
	})
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return userResponse(user), nil
}

func (h Handler) UpdateEmployeeHandler(
	ctx context.Context,
	actor identity.Actor,
	employeeID int,
	request httptransport.UpdateEmployeeRequest,
) (httptransport.UserResponse, error) {
	user, err := h.Service.UpdateEmployee(ctx, actor, employeeID, ports.EmployeeUpdate{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		Gender:   request.Gender,
		UnitID:   request.UnitID,
	})
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return userResponse(user), nil
}

func (h Handler) DeleteEmployeeHandler(ctx context.Context, actor identity.Actor, employeeID int) (httptransport.MessageResponse, error) {
	if err := h.Service.DeleteEmployee(ctx, actor, employeeID); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: "Employee deleted successfully"}, nil
}

func (h Handler) AdminStatsHandler(ctx context.Context, actor identity.Actor) (httptransport.AdminStatsResponse, error) {
	stats, err := h.Service.AdminStats(ctx, actor)
	if err != nil {
		return httptransport.AdminStatsResponse{}, err
	}
	return httptransport.AdminStatsResponse{
		TotalEmployees:     stats.TotalEmployees,
		TotalBusinessUnits: stats.TotalBusinessUnits,
	}, nil
}

func userResponse(user entities.User) httptransport.UserResponse {
	return httptransport.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Gender:    user.Gender,
		UnitID:    user.UnitID,
		CreatedAt: user.CreatedAt,
	}
}

func unitResponse(unit entities.BusinessUnit) httptransport.BusinessUnitResponse {
	return httptransport.BusinessUnitResponse{
		ID:        unit.ID,
		Name:      unit.Name,
		Location:  unit.Location,
		CreatedAt: unit.CreatedAt,
	}
}
