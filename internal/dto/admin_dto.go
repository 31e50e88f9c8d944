package dto

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Role     string `json:"role"`
}

// UpdateUserRequest only touches the fields that are present.
type UpdateUserRequest struct {
	Email  *string `json:"email"`
	Name   *string `json:"name"`
	Age    *int    `json:"age"`
	Gender *string `json:"gender"`
	Role   *string `json:"role"`
}
