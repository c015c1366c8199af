package handler

import (
	log "log/slog"
	"strings"
	"yatube/internal/api/dto"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/redis"
	"yatube/internal/pkg/response"
	"yatube/internal/pkg/security"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := c.ShouldBind(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	if err := c.ShouldBind(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

// Logout blacklists the token signature until the token itself expires.
func (s *UserHandler) Logout(c *gin.Context) {
	token := c.Request.Header.Get("Authorization")
	token = strings.Replace(token, "Bearer ", "", 1)

	signature, err := security.ExtractSignature(token)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if redis.GetRdbClient() != nil {
		key := consts.TokenBlacklistKey + signature
		if err = redis.SetWithExpiration(c.Request.Context(), key, "1", security.JWTExpirationTime); err != nil {
			log.ErrorContext(c.Request.Context(), "token blacklist failed", "error", err)
			response.Error(c, service.UnExpectedError)
			return
		}
	}
	response.Success(c, nil)
}
