package entity

import "time"

// Acciones registradas en la bitácora de auditoría.
const (
	AuditUserBanned   = "USER_BANNED"
	AuditUserUnbanned = "USER_UNBANNED"
	AuditUserDeleted  = "USER_DELETED"
	AuditSystemUpdate = "SYSTEM_UPDATE"
)

// AuditLogEntry es inmutable una vez creada.
type AuditLogEntry struct {
	ID         string
	Action     string
	AdminName  string
	TargetUser string
	Timestamp  time.Time
	Details    string
}
