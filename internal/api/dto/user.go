package dto

type RegisterDTO struct {
	Username string `json:"username" form:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" form:"password" binding:"required,min=6,max=72"`
}

type CredentialDTO struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

type TokenDTO struct {
	Token string `json:"token"`
}
