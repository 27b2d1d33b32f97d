package tenant

import "gorm.io/gorm"

// ClientScope restricts a query to rows owned by one client. Every
// client-owned table carries a client_id column.
func ClientScope(clientID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("client_id = ?", clientID)
	}
}
