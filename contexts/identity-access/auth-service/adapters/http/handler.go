package httpadapter

import (
	"context"
	"log/slog"

	"deskflow/contexts/identity-access/auth-service/application"
	"deskflow/contexts/identity-access/auth-service/ports"
	httptransport "deskflow/contexts/identity-access/auth-service/transport/http"
	"deskflow/internal/shared/events"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// LoginHandler godoc
// @Summary Log in
// @Description Opens a session against the seeded user store and notifies the automation webhook.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body httptransport.LoginRequest true "Credentials"
// @Success 200 {object} httptransport.LoginResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /api/auth/login [post]
func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest, userAgent string) (httptransport.LoginResponse, error) {
	session, user, err := h.Service.Login(ctx, req.Email, req.Password, userAgent)
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{
		Status: "success",
		Token:  session.Token,
		Data:   toUserDTO(user),
	}, nil
}

func (h Handler) LogoutHandler(ctx context.Context, token string) error {
	return h.Service.Logout(ctx, token)
}

func (h Handler) CurrentUserHandler(ctx context.Context, token string) (httptransport.CurrentUserResponse, error) {
	user, err := h.Service.CurrentUser(ctx, token)
	if err != nil {
		return httptransport.CurrentUserResponse{}, err
	}
	return httptransport.CurrentUserResponse{Status: "success", Data: toUserDTO(user)}, nil
}

// ResolveActorHandler maps a session token, or a bare user id fallback,
// to the actor snapshot carried by event envelopes.
func (h Handler) ResolveActorHandler(ctx context.Context, token string, fallbackUserID string) (events.Actor, error) {
	if token != "" {
		user, err := h.Service.CurrentUser(ctx, token)
		if err != nil {
			return events.Actor{}, err
		}
		return application.Snapshot(user), nil
	}
	user, err := h.Service.GetUser(ctx, fallbackUserID)
	if err != nil {
		return events.Actor{}, err
	}
	return application.Snapshot(user), nil
}

func (h Handler) UpdateProfileHandler(ctx context.Context, actor events.Actor, req httptransport.UpdateProfileRequest) (httptransport.CurrentUserResponse, error) {
	user, err := h.Service.UpdateProfile(ctx, actor.ID, req.Changes)
	if err != nil {
		return httptransport.CurrentUserResponse{}, err
	}
	return httptransport.CurrentUserResponse{Status: "success", Data: toUserDTO(user)}, nil
}

func (h Handler) InviteUserHandler(ctx context.Context, actor events.Actor, req httptransport.InviteUserRequest) (httptransport.InviteUserResponse, error) {
	user, err := h.Service.InviteUser(ctx, actor, req.Email, req.Role)
	if err != nil {
		return httptransport.InviteUserResponse{}, err
	}
	return httptransport.InviteUserResponse{Status: "success", Data: toUserDTO(user)}, nil
}

func (h Handler) ChangeRoleHandler(ctx context.Context, actor events.Actor, userID string, req httptransport.ChangeRoleRequest) (httptransport.ChangeRoleResponse, error) {
	user, err := h.Service.ChangeRole(ctx, actor, userID, req.Role)
	if err != nil {
		return httptransport.ChangeRoleResponse{}, err
	}
	return httptransport.ChangeRoleResponse{Status: "success", Data: toUserDTO(user)}, nil
}

func toUserDTO(user ports.User) httptransport.UserDTO {
	return httptransport.UserDTO{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}
}
