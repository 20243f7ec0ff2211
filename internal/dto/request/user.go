package request

// Role is validated against the closed role set in the service so the
// response carries the exact "Invalid role" message.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}
