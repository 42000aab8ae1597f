package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
	"percytext.backend/internal/infrastructure/models"
)

// LeadActivityRepository implements lead activity data operations
type LeadActivityRepository struct {
	db *gorm.DB
}

// NewLeadActivityRepository creates a new lead activity repository
func NewLeadActivityRepository(db *gorm.DB) *LeadActivityRepository {
	return &LeadActivityRepository{db: db}
}

// Create creates a new lead activity
func (r *LeadActivityRepository) Create(ctx context.Context, activity *entities.LeadActivity) error {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	m, err := activityToModel(activity)
	if err != nil {
		return err
	}
	if err := getDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a lead activity by ID
func (r *LeadActivityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.LeadActivity, error) {
	var m models.LeadActivity
	if err := getDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return activityToEntity(&m)
}

// GetByLeadID gets the activity history of a lead, newest first
func (r *LeadActivityRepository) GetByLeadID(ctx context.Context, leadID uuid.UUID) ([]*entities.LeadActivity, error) {
	var activityModels []models.LeadActivity
	err := getDB(ctx, r.db).WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("created_at DESC").
		Find(&activityModels).Error
	if err != nil {
		return nil, err
	}

	activities := make([]*entities.LeadActivity, 0, len(activityModels))
	for i := range activityModels {
		activity, err := activityToEntity(&activityModels[i])
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, nil
}

// SetHubspotActivityID records the synced CRM engagement id on an activity
func (r *LeadActivityRepository) SetHubspotActivityID(ctx context.Context, id uuid.UUID, activityID string) error {
	result := getDB(ctx, r.db).WithContext(ctx).Model(&models.LeadActivity{}).Where("id = ?", id).Updates(map[string]interface{}{
		"hubspot_activity_id": activityID,
		"updated_at":          time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func activityToModel(a *entities.LeadActivity) (*models.LeadActivity, error) {
	var metadata *string
	if len(a.Metadata) > 0 {
		raw, err := json.Marshal(a.Metadata)
		if err != nil {
			return nil, err
		}
		s := string(raw)
		metadata = &s
	}

	return &models.LeadActivity{
		ID:                a.ID,
		LeadID:            a.LeadID,
		Type:              string(a.Type),
		Status:            string(a.Status),
		Title:             a.Title,
		Description:       a.Description.Ptr(),
		Outcome:           a.Outcome.Ptr(),
		Notes:             a.Notes.Ptr(),
		AssignedTo:        a.AssignedTo.Ptr(),
		ScheduledDate:     a.ScheduledDate.Ptr(),
		CompletedDate:     a.CompletedDate.Ptr(),
		Duration:          a.Duration.Ptr(),
		HubspotActivityID: a.HubspotActivityID.Ptr(),
		Metadata:          metadata,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}, nil
}

func activityToEntity(m *models.LeadActivity) (*entities.LeadActivity, error) {
	var metadata map[string]interface{}
	if m.Metadata != nil && *m.Metadata != "" {
		if err := json.Unmarshal([]byte(*m.Metadata), &metadata); err != nil {
			return nil, err
		}
	}

	return &entities.LeadActivity{
		ID:                m.ID,
		LeadID:            m.LeadID,
		Type:              entities.LeadActivityType(m.Type),
		Status:            entities.LeadActivityStatus(m.Status),
		Title:             m.Title,
		Description:       null.StringFromPtr(m.Description),
		Outcome:           null.StringFromPtr(m.Outcome),
		Notes:             null.StringFromPtr(m.Notes),
		AssignedTo:        null.StringFromPtr(m.AssignedTo),
		ScheduledDate:     null.TimeFromPtr(m.ScheduledDate),
		CompletedDate:     null.TimeFromPtr(m.CompletedDate),
		Duration:          null.StringFromPtr(m.Duration),
		HubspotActivityID: null.StringFromPtr(m.HubspotActivityID),
		Metadata:          metadata,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}, nil
}
