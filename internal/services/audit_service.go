package services

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	apperrors "github.com/indianbuddy/personal-finance-manager/internal/errors"
	"github.com/indianbuddy/personal-finance-manager/internal/logger"
	"github.com/indianbuddy/personal-finance-manager/internal/models"
	"github.com/indianbuddy/personal-finance-manager/internal/pagination"
)

// auditService records ledger mutations in the audit database.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer backed by db.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(ctx context.Context, action string, tx models.Transaction) {
	changes := map[string]any{
		"description": tx.Description,
		"timestamp":   tx.Timestamp,
	}
	changesJSON := "{}"
	if data, err := json.Marshal(changes); err != nil {
		logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", action)
	} else {
		changesJSON = string(data)
	}

	entry := &models.AuditLog{
		Action:        action,
		TransactionID: tx.ID,
		Type:          tx.Type,
		Category:      tx.Category,
		Amount:        tx.Amount.String(),
		Date:          tx.Date.String(),
		Changes:       changesJSON,
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"action", action,
			"transaction_id", tx.ID,
		)
	}
}

// List returns audit entries, newest first.
func (s *auditService) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	page.Defaults()

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.AuditLog
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&entries).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(entries, page.Page, page.PageSize, total)
	return &resp, nil
}

// nopAuditService is used when no audit database is configured.
type nopAuditService struct{}

// NewNopAuditService returns an AuditServicer that records nothing.
func NewNopAuditService() AuditServicer {
	return nopAuditService{}
}

func (nopAuditService) Log(context.Context, string, models.Transaction) {}

func (nopAuditService) List(context.Context, pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	return nil, apperrors.WithMessage(apperrors.ErrUnavailable, "Audit trail is not enabled")
}
