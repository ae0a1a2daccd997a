package models

// AuditLog records mutations of positions and bilans.
type AuditLog struct {
	Entry
	Subject      string `gorm:"not null;index" json:"subject"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
