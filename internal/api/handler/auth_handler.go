package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/validator"
)

type AuthHandler struct {
	authService service.IAuthService
	userService service.IUserService
	rules       *validator.RuleBook
}

func NewAuthHandler(authService service.IAuthService, userService service.IUserService, rules *validator.RuleBook) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	if userService == nil {
		panic("userService cannot be nil")
	}
	if rules == nil {
		panic("rules cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
		userService: userService,
		rules:       rules,
	}
}

// @Summary register
// @Description 建立帳號, firebase_uid 需先由 identity provider 取得
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "user info"
// @Success 201 {object} response.Response{data=dto.UserDTO} "success"
// @Failure 409 {object} response.Response "user already exists"
// @Failure 422 {object} response.Response "validation error"
// @Failure 500 {object} response.Response "Internal server error"
// @Router /auth/register [post]
func (a *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := bindForm(r, a.rules, validator.FormRegister, &req); err != nil {
		response.Error(w, err)
		return
	}

	user, err := a.userService.Register(r.Context(), &model.CreateUserModel{
		FirebaseUID: req.FirebaseUID,
		Email:       req.Email,
		FullName:    req.FullName,
		Phone:       req.Phone,
		Role:        req.Role,
	})
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "User registered successfully", convertUserModelToDTO(user))
}

// @Summary login
// @Description 以 identity provider 簽發的 id token 登入
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.LoginRequest true "firebase id token"
// @Success 200 {object} response.Response{data=dto.LoginResponse} "success"
// @Failure 400 {object} response.Response "token is required"
// @Failure 401 {object} response.Response "invalid or expired token"
// @Failure 403 {object} response.Response "user account is not active"
// @Failure 404 {object} response.Response "user not found"
// @Router /auth/login [post]
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := bindJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	user, err := a.authService.Login(r.Context(), req.FirebaseToken)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Login successful", dto.LoginResponse{
		User:  convertUserModelToDTO(user),
		Token: req.FirebaseToken,
	})
}

// @Summary refresh token
// @Description 驗證 Authorization header 中的 token 並原樣回傳
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response{data=dto.TokenResponse} "success"
// @Failure 401 {object} response.Response "invalid or expired token"
// @Security ApiKeyAuth
// @Router /auth/refresh-token [post]
func (a *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	token, err := a.authService.RefreshToken(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Token is valid", dto.TokenResponse{Token: token})
}

// @Summary forgot password
// @Description 不論帳號是否存在都回傳相同訊息
// @Tags auth
// @Accept json
// @Produce json
// @Param email body dto.ForgotPasswordRequest true "email"
// @Success 200 {object} response.Response{data=dto.MessageResponse} "success"
// @Failure 400 {object} response.Response "email is required"
// @Router /auth/forgot-password [post]
func (a *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotPasswordRequest
	if err := bindJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	if err := a.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Success", dto.MessageResponse{
		Message: "Check your email for password reset link",
	})
}

// @Summary current user
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response{data=dto.UserDTO} "success"
// @Failure 401 {object} response.Response "authentication failed"
// @Failure 404 {object} response.Response "user not found"
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (a *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User fetched successfully", convertUserModelToDTO(user))
}
