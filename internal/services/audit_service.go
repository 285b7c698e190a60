// internal/services/audit_service.go
package services

import (
	"gorm.io/gorm"

	"github.com/lojaviva/loja-backend/internal/models"
	"github.com/lojaviva/loja-backend/internal/utils"
)

// AuditService exposes the audit trail the logging middleware writes.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

func (s *AuditService) ListLogs(params utils.PaginationParams) ([]models.AuditLog, int64, error) {
	query := s.db.Model(&models.AuditLog{})

	if params.Search != "" {
		query = query.Where("action LIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	query = utils.ApplySort(query, params, []string{"created_at", "action", "resource_type"})
	query = utils.ApplyPagination(query, params)
	if err := query.Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
