package dto

// SignupRequest formulario de alta por invitación: usuario + negocio + datos de pago.
type SignupRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=120"`
	Password       string `json:"password" validate:"required,min=1,max=72"`
	FullName       string `json:"full_name" validate:"omitempty,max=200"`
	BusinessName   string `json:"business_name" validate:"required,max=200"`
	Description    string `json:"description" validate:"max=2000"`
	WhatsAppNumber string `json:"whatsapp_number" validate:"required,max=32"`
	Address        string `json:"address,omitempty"`
	OperatingHours string `json:"operating_hours,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	BankName       string `json:"bank_name,omitempty"`
	AccountName    string `json:"account_name,omitempty"`
	AccountNumber  string `json:"account_number,omitempty"`
}

// SignupResponse sesión establecida y negocio creado.
type SignupResponse struct {
	Session  SessionResponse  `json:"session"`
	Business BusinessResponse `json:"business"`
}

// InvitationResponse resultado de validar un código de invitación.
type InvitationResponse struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}
