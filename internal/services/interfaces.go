package services

import (
	"time"

	"github.com/guillaumevincent/monpatrimoine/internal/bilan"
	"github.com/guillaumevincent/monpatrimoine/internal/models"
	"github.com/guillaumevincent/monpatrimoine/internal/pagination"
)

// PositionDetail is a position together with its category icon and its most
// recent value record.
type PositionDetail struct {
	models.Position
	Icon   string              `json:"icon"`
	Latest *models.ValueRecord `json:"latest,omitempty"`
}

// PositionServicer defines the contract for position-related business logic.
type PositionServicer interface {
	CreatePosition(label string, category models.Category) (*PositionDetail, error)
	ListPositions(activeOnly bool) ([]PositionDetail, error)
	GetPosition(id string) (*PositionDetail, error)
	UpdatePosition(id, label string, category models.Category) (*PositionDetail, error)
	TogglePositionActive(id string) (*PositionDetail, error)
	DeletePosition(id string) error
}

// BilanForm holds what the entry form of a bilan needs: the stored date,
// whether a bilan already exists for it, the positions to fill in and the
// amounts already recorded.
type BilanForm struct {
	Date      string            `json:"date"`
	Exists    bool              `json:"exists"`
	Positions []models.Position `json:"positions"`
	Amounts   map[string]int64  `json:"amounts"`
}

// BilanServicer defines the contract for entering and removing bilans.
type BilanServicer interface {
	ListBilanDates() ([]string, error)
	GetBilanForm(date string) (*BilanForm, error)
	SubmitBilan(date string, amounts map[string]int64) (*BilanForm, error)
	DeleteBilan(date string) (string, error)
}

// SnapshotServicer defines the contract for reading aggregated wealth.
type SnapshotServicer interface {
	GetSnapshots() ([]bilan.Snapshot, error)
	GetSnapshotPage(page pagination.PageRequest) (*pagination.PageResponse[bilan.Snapshot], error)
}

// AuthServicer defines the contract for the single-owner login.
type AuthServicer interface {
	Login(password string) (token string, expiresAt time.Time, err error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(subject, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
	ListAuditLogs(page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}
