package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/application/metrics"
	"github.com/jhoicas/Storefront-api/internal/domain"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
	"github.com/jhoicas/Storefront-api/pkg/jwt"
)

// AdminUserID id fijo del administrador sintético.
const AdminUserID = "admin-1"

const demoUserPrefix = "demo-"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminCredential credencial única del administrador; no vive en la colección de usuarios.
type AdminCredential struct {
	Email    string
	Password string
	Name     string
}

// Config opciones del servicio de identidad.
type Config struct {
	JWT        JWTConfig
	Admin      AdminCredential
	BcryptCost int
}

// NewUser datos para crear una cuenta.
type NewUser struct {
	Username string
	Password string
	FullName string
}

// AuthUseCase casos de uso de autenticación: registro, login y sesiones.
type AuthUseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	tx       repository.TxRunner
	cfg      Config
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, sessions repository.SessionRepository, tx repository.TxRunner, cfg Config) *AuthUseCase {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Admin.Name == "" {
		cfg.Admin.Name = "Super Admin"
	}
	return &AuthUseCase{users: users, sessions: sessions, tx: tx, cfg: cfg, now: time.Now}
}

// Register crea la cuenta y establece la sesión. Devuelve ErrDuplicateUsername si el username ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.SessionResponse, error) {
	var user *entity.User
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		user, err = uc.CreateUserInTx(ctx, repos.Users, NewUser{Username: in.Username, Password: in.Password, FullName: in.FullName})
		return err
	})
	if err != nil {
		return nil, err
	}
	metrics.AuthRegistrations.Inc()
	return uc.StartSession(ctx, user)
}

// CreateUserInTx valida unicidad, hashea el password y persiste usando el repo del caller (misma transacción).
func (uc *AuthUseCase) CreateUserInTx(ctx context.Context, users repository.UserRepository, in NewUser) (*entity.User, error) {
	username := NormalizeIdentifier(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("username y password son obligatorios: %w", domain.ErrInvalidInput)
	}
	if uc.cfg.Admin.Email != "" && username == uc.cfg.Admin.Email {
		return nil, domain.ErrDuplicateUsername
	}
	existing, err := users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		name = username
	}
	id := uuid.New().String()
	user := &entity.User{
		ID:           id,
		Username:     username,
		Email:        username,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleUser,
		Status:       entity.StatusActive,
		Avatar:       DefaultAvatar(id),
		CreatedAt:    uc.now(),
	}
	if err := users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, err
	}
	return user, nil
}

// Login verifica, en orden: credencial de administrador, usuarios almacenados y
// el usuario de demostración para un almacén vacío.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	identifier := NormalizeIdentifier(in.Identifier)

	if uc.isAdminCredential(identifier, in.Password) {
		metrics.AuthLogins.WithLabelValues("admin").Inc()
		return uc.StartSession(ctx, uc.adminUser())
	}

	candidates, err := uc.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	for _, u := range candidates {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
			continue
		}
		if u.IsDisabled() {
			metrics.AuthLogins.WithLabelValues("disabled").Inc()
			return nil, domain.ErrAccountDisabled
		}
		metrics.AuthLogins.WithLabelValues("success").Inc()
		return uc.StartSession(ctx, u)
	}

	// Almacén sin inicializar: usuario desechable para continuidad de la demo.
	if strings.Contains(identifier, "@") {
		n, err := uc.users.Count(ctx)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			metrics.AuthLogins.WithLabelValues("demo").Inc()
			return uc.StartSession(ctx, uc.demoUser(identifier))
		}
	}

	metrics.AuthLogins.WithLabelValues("invalid").Inc()
	return nil, domain.ErrInvalidCredentials
}

// StartSession registra la sesión del lado servidor y firma el JWT asociado. La última escritura gana.
func (uc *AuthUseCase) StartSession(ctx context.Context, user *entity.User) (*dto.SessionResponse, error) {
	sessionID := uuid.New().String()
	token, exp, err := jwt.Generate(uc.cfg.JWT.Secret, sessionID, user.ID, user.Role, uc.cfg.JWT.Issuer, uc.cfg.JWT.ExpMinutes)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	public := *user
	public.PasswordHash = ""
	sess := &entity.Session{ID: sessionID, User: public, CreatedAt: now, ExpiresAt: exp}
	if err := uc.sessions.Save(ctx, sess, exp.Sub(now)); err != nil {
		return nil, err
	}
	return &dto.SessionResponse{Token: token, ExpiresAt: exp, User: *ToUserResponse(&public)}, nil
}

// Authenticate valida el token y devuelve la sesión viva asociada.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := jwt.Parse(uc.cfg.JWT.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", domain.ErrInvalidCredentials)
	}
	sess, err := uc.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("sesión cerrada o expirada: %w", domain.ErrInvalidCredentials)
	}
	if err := uc.refreshSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// refreshSession vuelve a leer la cuenta de la sesión: una cuenta eliminada cierra la sesión,
// una deshabilitada la rechaza y en otro caso se toman rol, nombre y estado actuales.
// El administrador sintético y los usuarios demo no viven en el almacén.
func (uc *AuthUseCase) refreshSession(ctx context.Context, sess *entity.Session) error {
	if sess.User.ID == AdminUserID || strings.HasPrefix(sess.User.ID, demoUserPrefix) {
		return nil
	}
	u, err := uc.users.GetByID(ctx, sess.User.ID)
	if err != nil {
		return err
	}
	if u == nil {
		if err := uc.sessions.Delete(ctx, sess.ID); err != nil {
			return err
		}
		return fmt.Errorf("cuenta eliminada: %w", domain.ErrInvalidCredentials)
	}
	if u.IsDisabled() {
		return domain.ErrAccountDisabled
	}
	u.PasswordHash = ""
	sess.User = *u
	return nil
}

// Logout elimina la sesión. Es idempotente.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return uc.sessions.Delete(ctx, sessionID)
}

// CurrentSession devuelve el usuario de la sesión o (nil, nil) si no hay sesión.
// Una cuenta deshabilitada devuelve domain.ErrAccountDisabled.
func (uc *AuthUseCase) CurrentSession(ctx context.Context, sessionID string) (*dto.UserResponse, error) {
	sess, err := uc.sessions.Get(ctx, sessionID)
	if err != nil || sess == nil {
		return nil, err
	}
	if err := uc.refreshSession(ctx, sess); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, nil
		}
		return nil, err
	}
	return ToUserResponse(&sess.User), nil
}

func (uc *AuthUseCase) isAdminCredential(identifier, password string) bool {
	admin := uc.cfg.Admin
	if admin.Email == "" || admin.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(identifier), []byte(admin.Email)) == 1 &&
		subtle.ConstantTimeCompare([]byte(password), []byte(admin.Password)) == 1
}

func (uc *AuthUseCase) adminUser() *entity.User {
	return &entity.User{
		ID:        AdminUserID,
		Username:  uc.cfg.Admin.Email,
		Email:     uc.cfg.Admin.Email,
		Name:      uc.cfg.Admin.Name,
		Role:      entity.RoleAdmin,
		Status:    entity.StatusActive,
		Avatar:    DefaultAvatar(AdminUserID),
		CreatedAt: uc.now(),
	}
}

func (uc *AuthUseCase) demoUser(email string) *entity.User {
	id := demoUserPrefix + uuid.New().String()
	name, _, _ := strings.Cut(email, "@")
	return &entity.User{
		ID:        id,
		Username:  email,
		Email:     email,
		Name:      name,
		Role:      entity.RoleUser,
		Status:    entity.StatusActive,
		Avatar:    DefaultAvatar(id),
		CreatedAt: uc.now(),
	}
}

// NormalizeIdentifier recorta espacios y normaliza a NFC para comparar usernames de forma estable.
func NormalizeIdentifier(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// DefaultAvatar avatar generado para cuentas sin imagen.
func DefaultAvatar(userID string) string {
	return "https://picsum.photos/seed/" + userID + "/100/100"
}

// ToUserResponse proyección pública del usuario.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}
