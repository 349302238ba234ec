package store

import (
	"time"

	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Forma JSON de cada colección. Los campos siguen el esquema camelCase de los documentos.

type userDoc struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"passwordHash"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Status       string    `json:"status,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newUserDoc(u *entity.User) *userDoc {
	return &userDoc{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         u.Role,
		Status:       u.Status,
		Avatar:       u.Avatar,
		CreatedAt:    u.CreatedAt,
	}
}

func (d *userDoc) toEntity(version int64) *entity.User {
	status := d.Status
	if status == "" {
		status = entity.StatusActive // registros heredados sin estado
	}
	return &entity.User{
		ID:           d.ID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		Role:         d.Role,
		Status:       status,
		Avatar:       d.Avatar,
		CreatedAt:    d.CreatedAt,
		Version:      version,
	}
}

type productDoc struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

type businessDoc struct {
	ID             string       `json:"id"`
	OwnerID        string       `json:"ownerId"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Address        string       `json:"address,omitempty"`
	OperatingHours string       `json:"operatingHours,omitempty"`
	LogoURL        string       `json:"logoUrl,omitempty"`
	WhatsAppNumber string       `json:"whatsappNumber"`
	WelcomeMessage string       `json:"welcomeMessage"`
	BankName       string       `json:"bankName"`
	AccountName    string       `json:"accountName"`
	AccountNumber  string       `json:"accountNumber"`
	Products       []productDoc `json:"products"`
	ThemeColor     string       `json:"themeColor"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

func newBusinessDoc(b *entity.Business) *businessDoc {
	products := make([]productDoc, 0, len(b.Products))
	for _, p := range b.Products {
		products = append(products, productDoc{ID: p.ID, Name: p.Name, Price: p.Price, Description: p.Description})
	}
	return &businessDoc{
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
	}
}

func (d *businessDoc) toEntity(version int64) *entity.Business {
	products := make([]entity.Product, 0, len(d.Products))
	for _, p := range d.Products {
		products = append(products, entity.Product{ID: p.ID, Name: p.Name, Price: p.Price, Description: p.Description})
	}
	return &entity.Business{
		ID:             d.ID,
		OwnerID:        d.OwnerID,
		Name:           d.Name,
		Description:    d.Description,
		Address:        d.Address,
		OperatingHours: d.OperatingHours,
		LogoURL:        d.LogoURL,
		WhatsAppNumber: d.WhatsAppNumber,
		WelcomeMessage: d.WelcomeMessage,
		BankName:       d.BankName,
		AccountName:    d.AccountName,
		AccountNumber:  d.AccountNumber,
		Products:       products,
		ThemeColor:     d.ThemeColor,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		Version:        version,
	}
}

type auditDoc struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	AdminName  string    `json:"adminName"`
	TargetUser string    `json:"targetUser"`
	Timestamp  time.Time `json:"timestamp"`
	Details    string    `json:"details,omitempty"`
}

type bankDoc struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	IsVisible     bool   `json:"isVisible"`
}

type bootstrapDoc struct {
	CompletedAt time.Time `json:"completedAt"`
}

type orderDoc struct {
	ID               string          `json:"id"`
	BusinessID       string          `json:"businessId"`
	CustomerName     string          `json:"customerName"`
	CustomerWhatsApp string          `json:"customerWhatsapp"`
	OrderReference   string          `json:"orderReference"`
	Amount           decimal.Decimal `json:"amount"`
	ProofURL         string          `json:"proofUrl,omitempty"`
	Status           string          `json:"status"`
	ProofValid       bool            `json:"proofValid"`
	ProofReason      string          `json:"proofReason,omitempty"`
	CreatedAt        time.Time       `json:"timestamp"`
}

func newOrderDoc(o *entity.Order) *orderDoc {
	return &orderDoc{
		ID:               o.ID,
		BusinessID:       o.BusinessID,
		CustomerName:     o.CustomerName,
		CustomerWhatsApp: o.CustomerWhatsApp,
		OrderReference:   o.OrderReference,
		Amount:           o.Amount,
		ProofURL:         o.ProofURL,
		Status:           o.Status,
		ProofValid:       o.ProofValid,
		ProofReason:      o.ProofReason,
		CreatedAt:        o.CreatedAt,
	}
}

func (d *orderDoc) toEntity() *entity.Order {
	return &entity.Order{
		ID:               d.ID,
		BusinessID:       d.BusinessID,
		CustomerName:     d.CustomerName,
		CustomerWhatsApp: d.CustomerWhatsApp,
		OrderReference:   d.OrderReference,
		Amount:           d.Amount,
		ProofURL:         d.ProofURL,
		Status:           d.Status,
		ProofValid:       d.ProofValid,
		ProofReason:      d.ProofReason,
		CreatedAt:        d.CreatedAt,
	}
}
