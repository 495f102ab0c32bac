package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type UserDTO struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	Data   UserDTO `json:"data"`
}

type CurrentUserResponse struct {
	Status string  `json:"status"`
	Data   UserDTO `json:"data"`
}

type UpdateProfileRequest struct {
	Changes map[string]any `json:"changes"`
}

type InviteUserRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type InviteUserResponse struct {
	Status string  `json:"status"`
	Data   UserDTO `json:"data"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

type ChangeRoleResponse struct {
	Status string  `json:"status"`
	Data   UserDTO `json:"data"`
}
