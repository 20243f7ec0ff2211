package response

// AuthResult is the {success,message} envelope the auth endpoints use.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CurrentUserResponse struct {
	Success bool          `json:"success"`
	User    *UserResponse `json:"user"`
}

// ForgotPasswordResponse carries the optional dev-transport preview link.
type ForgotPasswordResponse struct {
	Message string `json:"message"`
	Preview string `json:"preview,omitempty"`
}
