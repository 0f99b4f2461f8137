package auth

// LoginForm is the login page's form body.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm is the registration page's form body.
type RegisterForm struct {
	Username     string `form:"username" validate:"required"`
	Password     string `form:"password" validate:"required,max=72"`
	Confirmation string `form:"confirmation" validate:"required"`
}
