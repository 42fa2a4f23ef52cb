package dto

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type RegisterRequest struct {
	Username             string `form:"username" binding:"required,min=4,max=20"`
	Email                string `form:"email" binding:"required,email,max=120"`
	Password             string `form:"password" binding:"required,min=6,max=72"`
	PasswordConfirmation string `form:"password2" binding:"required,eqfield=Password"`
}
