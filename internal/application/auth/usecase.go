package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/dto"
	"github.com/jhoicas/pyme-api/internal/domain"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
	"github.com/jhoicas/pyme-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y gestión de credenciales.
type AuthUseCase struct {
	svc    *dataservice.Service
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(svc *dataservice.Service, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{svc: svc, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user := uc.svc.GetUserByUsername(in.Username)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// CreateUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrUsernameTaken si el username ya existe.
func (uc *AuthUseCase) CreateUser(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing := uc.svc.GetUserByUsername(in.Username); existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	perms := entity.Permissions{}
	if in.Permissions != nil {
		perms = *in.Permissions
	} else if role == entity.RoleAdmin {
		perms = entity.AllPermissions()
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         role,
		Permissions:  perms,
		Active:       active,
	}
	stored, err := uc.svc.CreateUser(user)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(stored), nil
}

// UpdateUser aplica cambios parciales sobre un usuario existente.
func (uc *AuthUseCase) UpdateUser(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user := uc.svc.GetUser(id)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Permissions != nil {
		user.Permissions = *in.Permissions
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	if err := uc.svc.UpdateUser(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ToUserResponse proyecta un usuario a su representación pública, sin hash.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		FullName:    u.FullName,
		Role:        u.Role,
		Permissions: u.Permissions,
		Active:      u.Active,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
