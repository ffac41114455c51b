package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mindease/mindease-api/internal/adapter/api/dto"
	"github.com/mindease/mindease-api/internal/adapter/repository"
	"github.com/mindease/mindease-api/internal/domain/role"
	"github.com/mindease/mindease-api/internal/domain/user"
	"github.com/mindease/mindease-api/pkg/auth"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	userRepository user.Repository
	roleRepository role.Repository
	jwtService     *auth.JWTService
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepository user.Repository, roleRepository role.Repository, jwtService *auth.JWTService) *AuthController {
	return &AuthController{
		userRepository: userRepository,
		roleRepository: roleRepository,
		jwtService:     jwtService,
	}
}

// Register cria uma nova conta de usuário
// @Summary Registra um novo usuário
// @Description Cria um perfil de usuário e atribui o papel padrão "user"
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Dados de registro"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	now := time.Now()
	u := &user.User{
		ID:        uuid.New().String(),
		Email:     request.Email,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Status:    user.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Definir a senha com hash
	if err := u.SetPassword(request.Password); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao processar senha", err.Error()))
		return
	}

	// Persistir o perfil
	if err := c.userRepository.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUserDuplicateEmail) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Email já cadastrado", "Já existe uma conta com este email"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar usuário", err.Error()))
		return
	}

	// Atribuir o papel padrão
	assignment := &role.Assignment{
		ID:        uuid.New().String(),
		UserID:    u.ID,
		Role:      role.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.roleRepository.Assign(ctx, assignment); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atribuir papel padrão", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// Login autentica um usuário e retorna um token JWT
// @Summary Autentica um usuário
// @Description Verifica as credenciais do usuário e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	// Buscar o usuário pelo email
	u, err := c.userRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Email ou senha incorretos"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar usuário", err.Error()))
		return
	}

	// Verificar se a conta está ativa
	if !u.IsActive() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Conta inativa", "Sua conta está desativada"))
		return
	}

	// Verificar a senha
	if !u.CheckPassword(request.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Email ou senha incorretos"))
		return
	}

	// Determinar o papel mais alto do usuário para as claims
	primaryRole, err := c.primaryRole(ctx, u.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao carregar papéis do usuário", err.Error()))
		return
	}

	// Gerar o token JWT
	token, err := c.jwtService.GenerateToken(u, primaryRole)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	response := dto.LoginResponse{
		User:         dto.ToUserResponse(u),
		AccessToken:  token,
		RefreshToken: token,
		ExpiresAt:    time.Now().Add(c.jwtService.Expiration()),
	}

	ctx.JSON(http.StatusOK, response)
}

// RefreshToken renova um token JWT
// @Summary Renova um token JWT
// @Description Renova um token JWT existente
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token a ser renovado"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var request dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	// Renovar o token
	newToken, err := c.jwtService.RefreshToken(request.RefreshToken)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Token inválido", err.Error()))
		return
	}

	// Validar o novo token para obter as claims
	claims, err := c.jwtService.ValidateToken(newToken)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao validar novo token", err.Error()))
		return
	}

	// Buscar o usuário para ter informações atualizadas
	u, err := c.userRepository.FindByID(ctx, claims.UserID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Usuário não encontrado", err.Error()))
		return
	}

	response := dto.LoginResponse{
		User:         dto.ToUserResponse(u),
		AccessToken:  newToken,
		RefreshToken: newToken,
		ExpiresAt:    time.Now().Add(c.jwtService.Expiration()),
	}

	ctx.JSON(http.StatusOK, response)
}

// primaryRole retorna o papel de maior privilégio atribuído ao usuário
func (c *AuthController) primaryRole(ctx *gin.Context, userID string) (string, error) {
	assignments, err := c.roleRepository.FindByUser(ctx, userID)
	if err != nil {
		return "", err
	}

	primary := role.RoleUser
	for _, a := range assignments {
		switch a.Role {
		case role.RoleAdmin:
			return string(role.RoleAdmin), nil
		case role.RoleModerator:
			primary = role.RoleModerator
		}
	}

	return string(primary), nil
}
