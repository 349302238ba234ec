package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/application/metrics"
	"github.com/jhoicas/Storefront-api/internal/application/ports"
	"github.com/jhoicas/Storefront-api/internal/domain"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
	"github.com/jhoicas/Storefront-api/pkg/logger"
)

// Valores por defecto de un negocio recién aprovisionado.
const (
	DefaultOperatingHours = "Mon-Fri: 9AM - 5PM"
	DefaultBankName       = "Not Configured"
	DefaultAccountNumber  = "0000000000"
	DefaultWelcomeMessage = "Welcome! How can we assist you today?"
	DefaultThemeColor     = "#0ea5e9"
)

// BusinessUseCase aprovisionamiento y edición del perfil de tienda.
type BusinessUseCase struct {
	repo   repository.BusinessRepository
	ai     *AIUseCase
	events ports.EventPublisher
	log    *logger.Logger
	now    func() time.Time
}

// NewBusinessUseCase construye el caso de uso. events puede ser nil (sin difusión).
func NewBusinessUseCase(repo repository.BusinessRepository, ai *AIUseCase, events ports.EventPublisher, log *logger.Logger) *BusinessUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if ai == nil {
		ai = NewAIUseCase(nil, log)
	}
	return &BusinessUseCase{repo: repo, ai: ai, events: events, log: log, now: time.Now}
}

// GetByOwner devuelve el primer negocio del dueño o (nil, nil).
func (uc *BusinessUseCase) GetByOwner(ctx context.Context, ownerID string) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByOwner(ctx, ownerID)
	if err != nil || b == nil {
		return nil, err
	}
	return toBusinessResponse(b, true), nil
}

// GetByID obtiene un negocio por ID o (nil, nil).
func (uc *BusinessUseCase) GetByID(ctx context.Context, id string) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil || b == nil {
		return nil, err
	}
	return toBusinessResponse(b, true), nil
}

// Create aprovisiona un negocio para owner aplicando los valores por defecto.
func (uc *BusinessUseCase) Create(ctx context.Context, owner *entity.User, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	return uc.CreateInTx(ctx, uc.repo, owner, in)
}

// CreateInTx como Create pero sobre el repositorio del caller (misma transacción).
// No verifica si el dueño ya tiene un negocio.
func (uc *BusinessUseCase) CreateInTx(ctx context.Context, repo repository.BusinessRepository, owner *entity.User, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	if owner == nil {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("el nombre del negocio es obligatorio: %w", domain.ErrInvalidInput)
	}
	now := uc.now()
	b := &entity.Business{
		ID:             uuid.New().String(),
		OwnerID:        owner.ID,
		Name:           name,
		Description:    in.Description,
		Address:        in.Address,
		OperatingHours: orDefault(in.OperatingHours, DefaultOperatingHours),
		LogoURL:        in.LogoURL,
		WhatsAppNumber: in.WhatsAppNumber,
		WelcomeMessage: orDefault(in.WelcomeMessage, DefaultWelcomeMessage),
		BankName:       orDefault(in.BankName, DefaultBankName),
		AccountName:    orDefault(in.AccountName, DefaultBankName),
		AccountNumber:  orDefault(in.AccountNumber, DefaultAccountNumber),
		Products:       starterProducts(),
		ThemeColor:     orDefault(in.ThemeColor, DefaultThemeColor),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toBusinessResponse(b, true), nil
}

// GetOrDefaultForOwner devuelve el negocio guardado o un perfil por defecto sin persistir
// (Persisted=false) con id biz-default-<userID>.
func (uc *BusinessUseCase) GetOrDefaultForOwner(ctx context.Context, owner *entity.User) (*dto.BusinessResponse, error) {
	if owner == nil {
		return nil, domain.ErrForbidden
	}
	b, err := uc.repo.GetByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	if b != nil {
		return toBusinessResponse(b, true), nil
	}
	now := uc.now()
	return toBusinessResponse(&entity.Business{
		ID:             "biz-default-" + owner.ID,
		OwnerID:        owner.ID,
		Name:           owner.Name + "'s Enterprise",
		Description:    "High-end digital services and consultation.",
		OperatingHours: DefaultOperatingHours,
		WhatsAppNumber: "15550001234",
		WelcomeMessage: DefaultWelcomeMessage,
		BankName:       "Global Bank",
		AccountName:    owner.Name,
		AccountNumber:  "123-456-7890",
		Products:       starterProducts(),
		ThemeColor:     DefaultThemeColor,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, false), nil
}

// Update reemplaza el perfil completo (upsert por id). Solo el dueño o un ADMIN pueden
// modificar un registro existente. in.Version debe coincidir con la versión almacenada.
func (uc *BusinessUseCase) Update(ctx context.Context, actor *entity.User, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.ID) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("id y nombre son obligatorios: %w", domain.ErrInvalidInput)
	}
	products, err := normalizeProducts(in.Products)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	ownerID, createdAt := actor.ID, now
	if existing != nil {
		if !existing.OwnedBy(actor.ID) && actor.Role != entity.RoleAdmin {
			return nil, domain.ErrForbidden
		}
		ownerID, createdAt = existing.OwnerID, existing.CreatedAt
	}

	b := &entity.Business{
		ID:             in.ID,
		OwnerID:        ownerID,
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		Address:        in.Address,
		OperatingHours: in.OperatingHours,
		LogoURL:        in.LogoURL,
		WhatsAppNumber: in.WhatsAppNumber,
		WelcomeMessage: in.WelcomeMessage,
		BankName:       in.BankName,
		AccountName:    in.AccountName,
		AccountNumber:  in.AccountNumber,
		Products:       products,
		ThemeColor:     in.ThemeColor,
		CreatedAt:      createdAt,
		UpdatedAt:      now,
		Version:        in.Version,
	}
	if err := uc.repo.Upsert(ctx, b); err != nil {
		return nil, err
	}
	uc.publishUpdated(ctx, b)
	return toBusinessResponse(b, true), nil
}

// AddProduct agrega un producto al catálogo del negocio del actor.
func (uc *BusinessUseCase) AddProduct(ctx context.Context, actor *entity.User, p dto.ProductDTO) (*dto.BusinessResponse, error) {
	current, err := uc.GetOrDefaultForOwner(ctx, actor)
	if err != nil {
		return nil, err
	}
	in := toUpdateRequest(current)
	in.Products = append(in.Products, p)
	return uc.Update(ctx, actor, in)
}

// UpdateProduct reemplaza el producto productID. Devuelve ErrNotFound si no existe.
func (uc *BusinessUseCase) UpdateProduct(ctx context.Context, actor *entity.User, productID string, p dto.ProductDTO) (*dto.BusinessResponse, error) {
	current, err := uc.GetOrDefaultForOwner(ctx, actor)
	if err != nil {
		return nil, err
	}
	in := toUpdateRequest(current)
	idx := indexOfProduct(in.Products, productID)
	if idx < 0 {
		return nil, fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
	}
	p.ID = productID
	in.Products[idx] = p
	return uc.Update(ctx, actor, in)
}

// DeleteProduct quita el producto productID del catálogo.
func (uc *BusinessUseCase) DeleteProduct(ctx context.Context, actor *entity.User, productID string) (*dto.BusinessResponse, error) {
	current, err := uc.GetOrDefaultForOwner(ctx, actor)
	if err != nil {
		return nil, err
	}
	in := toUpdateRequest(current)
	idx := indexOfProduct(in.Products, productID)
	if idx < 0 {
		return nil, fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
	}
	in.Products = append(in.Products[:idx], in.Products[idx+1:]...)
	return uc.Update(ctx, actor, in)
}

// GenerateWelcomeMessage pide al colaborador de IA un saludo y lo guarda en el perfil.
func (uc *BusinessUseCase) GenerateWelcomeMessage(ctx context.Context, actor *entity.User) (*dto.WelcomeMessageResponse, error) {
	current, err := uc.GetOrDefaultForOwner(ctx, actor)
	if err != nil {
		return nil, err
	}
	text := uc.ai.WelcomeMessage(ctx, current.Name, current.Description)
	in := toUpdateRequest(current)
	in.WelcomeMessage = text
	saved, err := uc.Update(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	return &dto.WelcomeMessageResponse{WelcomeMessage: text, Business: *saved}, nil
}

func (uc *BusinessUseCase) publishUpdated(ctx context.Context, b *entity.Business) {
	if uc.events == nil {
		return
	}
	err := uc.events.Publish(ctx, ports.SubjectBusinessUpdated, ports.BusinessUpdatedEvent{
		BusinessID: b.ID,
		OwnerID:    b.OwnerID,
		Name:       b.Name,
		LogoURL:    b.LogoURL,
		Version:    b.Version,
	})
	if err != nil {
		metrics.EventsPublished.WithLabelValues(ports.SubjectBusinessUpdated, "error").Inc()
		uc.log.Warn().Err(err).Str("business_id", b.ID).Msg("no se pudo publicar business.updated")
		return
	}
	metrics.EventsPublished.WithLabelValues(ports.SubjectBusinessUpdated, "ok").Inc()
}

// WhatsAppLink deep link wa.me con el saludo precargado. wa.me solo acepta dígitos.
func WhatsAppLink(number, welcome string) string {
	if welcome == "" {
		welcome = "Hi"
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	return "https://wa.me/" + digits + "?text=" + strings.ReplaceAll(url.QueryEscape(welcome), "+", "%20")
}

// CheckoutURL enlace público al checkout del negocio.
func CheckoutURL(baseURL, businessID string) string {
	return strings.TrimRight(baseURL, "/") + "/#/checkout/" + businessID
}

func normalizeProducts(in []dto.ProductDTO) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, p := range in {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("el nombre del producto es obligatorio: %w", domain.ErrInvalidInput)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("precio negativo en %q: %w", name, domain.ErrInvalidInput)
		}
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("producto duplicado %s: %w", id, domain.ErrInvalidInput)
		}
		seen[id] = struct{}{}
		out = append(out, entity.Product{ID: id, Name: name, Price: p.Price, Description: p.Description})
	}
	return out, nil
}

func starterProducts() []entity.Product {
	return []entity.Product{
		{ID: uuid.New().String(), Name: "Basic Consultation", Price: decimal.NewFromInt(99), Description: "1-hour session"},
		{ID: uuid.New().String(), Name: "Premium Package", Price: decimal.NewFromInt(299), Description: "Full service bundle"},
		{ID: uuid.New().String(), Name: "Monthly Support", Price: decimal.NewFromInt(49), Description: "Ongoing maintenance"},
	}
}

func indexOfProduct(products []dto.ProductDTO, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func toBusinessResponse(b *entity.Business, persisted bool) *dto.BusinessResponse {
	products := make([]dto.ProductDTO, 0, len(b.Products))
	for _, p := range b.Products {
		products = append(products, dto.ProductDTO{ID: p.ID, Name: p.Name, Price: p.Price, Description: p.Description})
	}
	return &dto.BusinessResponse{
		ID:             b.ID,
		OwnerID:        b.OwnerID,
		Name:           b.Name,
		Description:    b.Description,
		Address:        b.Address,
		OperatingHours: b.OperatingHours,
		LogoURL:        b.LogoURL,
		WhatsAppNumber: b.WhatsAppNumber,
		WelcomeMessage: b.WelcomeMessage,
		BankName:       b.BankName,
		AccountName:    b.AccountName,
		AccountNumber:  b.AccountNumber,
		Products:       products,
		ThemeColor:     b.ThemeColor,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
		Version:        b.Version,
		Persisted:      persisted,
	}
}

func toUpdateRequest(b *dto.BusinessResponse) dto.UpdateBusinessRequest {
	products := make([]dto.ProductDTO, len(b.Products))
	copy(products, b.Products)
	return dto.UpdateBusinessRequest{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		Address:        b.Address,
		OperatingHours: b.OperatingHours,
		LogoURL:        b.LogoURL,
		WhatsAppNumber: b.WhatsAppNumber,
		WelcomeMessage: b.WelcomeMessage,
		BankName:       b.BankName,
		AccountName:    b.AccountName,
		AccountNumber:  b.AccountNumber,
		Products:       products,
		ThemeColor:     b.ThemeColor,
		Version:        b.Version,
	}
}
