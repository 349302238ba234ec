package entity

// SystemBankDetails datos bancarios de la plataforma (monetización). Registro único.
type SystemBankDetails struct {
	BankName      string
	AccountName   string
	AccountNumber string
	IsVisible     bool // si false, los usuarios no administradores no lo ven
}
