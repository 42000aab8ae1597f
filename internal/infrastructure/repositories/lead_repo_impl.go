package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
	"percytext.backend/internal/infrastructure/models"
)

// LeadRepository implements lead data operations
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	now := time.Now()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	m := leadToModel(lead)
	if err := getDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a lead by ID
func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Lead, error) {
	var m models.Lead
	if err := getDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return leadToEntity(&m), nil
}

// GetByEmail gets the most recent lead with the given email
func (r *LeadRepository) GetByEmail(ctx context.Context, email string) (*entities.Lead, error) {
	var m models.Lead
	err := getDB(ctx, r.db).WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return leadToEntity(&m), nil
}

// Update updates a lead
func (r *LeadRepository) Update(ctx context.Context, lead *entities.Lead) error {
	lead.UpdatedAt = time.Now()
	m := leadToModel(lead)

	result := getDB(ctx, r.db).WithContext(ctx).
		Model(&models.Lead{}).
		Where("id = ?", lead.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus updates a lead's pipeline status
func (r *LeadRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.LeadStatus) error {
	return r.updateFields(ctx, id, map[string]interface{}{"status": string(status)})
}

// UpdatePriority updates a lead's priority
func (r *LeadRepository) UpdatePriority(ctx context.Context, id uuid.UUID, priority entities.LeadPriority) error {
	return r.updateFields(ctx, id, map[string]interface{}{"priority": string(priority)})
}

// Assign assigns a lead to a user
func (r *LeadRepository) Assign(ctx context.Context, id uuid.UUID, assignedTo string) error {
	return r.updateFields(ctx, id, map[string]interface{}{"assigned_to": assignedTo})
}

// SetHubspotContactID records the synced CRM contact id on a lead
func (r *LeadRepository) SetHubspotContactID(ctx context.Context, id uuid.UUID, contactID string) error {
	return r.updateFields(ctx, id, map[string]interface{}{"hubspot_contact_id": contactID})
}

func (r *LeadRepository) updateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := getDB(ctx, r.db).WithContext(ctx).Model(&models.Lead{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists leads matching the filters, newest first, with the total count
// before pagination
func (r *LeadRepository) List(ctx context.Context, filters entities.LeadFilters, limit, offset int) ([]*entities.Lead, int64, error) {
	query := getDB(ctx, r.db).WithContext(ctx).Model(&models.Lead{})

	if filters.Status != "" {
		query = query.Where("status = ?", string(filters.Status))
	}
	if filters.Priority != "" {
		query = query.Where("priority = ?", string(filters.Priority))
	}
	if filters.AssignedTo != "" {
		query = query.Where("assigned_to = ?", filters.AssignedTo)
	}
	if filters.BrandID != "" {
		query = query.Where("brand_id = ?", filters.BrandID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// limit <= 0 means no pagination
	if limit <= 0 {
		limit = -1
	}

	var leadModels []models.Lead
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&leadModels).Error
	if err != nil {
		return nil, 0, err
	}

	leads := make([]*entities.Lead, 0, len(leadModels))
	for i := range leadModels {
		leads = append(leads, leadToEntity(&leadModels[i]))
	}
	return leads, total, nil
}

// Search finds leads whose name, email or company contains the query
func (r *LeadRepository) Search(ctx context.Context, query string) ([]*entities.Lead, error) {
	term := "%" + query + "%"
	var leadModels []models.Lead
	err := getDB(ctx, r.db).WithContext(ctx).
		Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR LOWER(company) LIKE LOWER(?)",
			term, term, term, term,
		).
		Order("created_at DESC").
		Find(&leadModels).Error
	if err != nil {
		return nil, err
	}

	leads := make([]*entities.Lead, 0, len(leadModels))
	for i := range leadModels {
		leads = append(leads, leadToEntity(&leadModels[i]))
	}
	return leads, nil
}

func leadToModel(l *entities.Lead) *models.Lead {
	return &models.Lead{
		ID:               l.ID,
		FirstName:        l.FirstName,
		LastName:         l.LastName,
		Email:            l.Email,
		Phone:            l.Phone.Ptr(),
		Company:          l.Company.Ptr(),
		JobTitle:         l.JobTitle.Ptr(),
		Website:          l.Website.Ptr(),
		Industry:         l.Industry.Ptr(),
		CompanySize:      l.CompanySize.Ptr(),
		Message:          l.Message.Ptr(),
		HowDidYouHear:    l.HowDidYouHear.Ptr(),
		Source:           string(l.Source),
		Status:           string(l.Status),
		Priority:         string(l.Priority),
		BrandID:          l.BrandID.Ptr(),
		HubspotContactID: l.HubspotContactID.Ptr(),
		HubspotCompanyID: l.HubspotCompanyID.Ptr(),
		Notes:            l.Notes.Ptr(),
		AssignedTo:       l.AssignedTo.Ptr(),
		LastContactDate:  l.LastContactDate.Ptr(),
		NextFollowUpDate: l.NextFollowUpDate.Ptr(),
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func leadToEntity(m *models.Lead) *entities.Lead {
	return &entities.Lead{
		ID:               m.ID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Email:            m.Email,
		Phone:            null.StringFromPtr(m.Phone),
		Company:          null.StringFromPtr(m.Company),
		JobTitle:         null.StringFromPtr(m.JobTitle),
		Website:          null.StringFromPtr(m.Website),
		Industry:         null.StringFromPtr(m.Industry),
		CompanySize:      null.StringFromPtr(m.CompanySize),
		Message:          null.StringFromPtr(m.Message),
		HowDidYouHear:    null.StringFromPtr(m.HowDidYouHear),
		Source:           entities.LeadSource(m.Source),
		Status:           entities.LeadStatus(m.Status),
		Priority:         entities.LeadPriority(m.Priority),
		BrandID:          null.StringFromPtr(m.BrandID),
		HubspotContactID: null.StringFromPtr(m.HubspotContactID),
		HubspotCompanyID: null.StringFromPtr(m.HubspotCompanyID),
		Notes:            null.StringFromPtr(m.Notes),
		AssignedTo:       null.StringFromPtr(m.AssignedTo),
		LastContactDate:  null.TimeFromPtr(m.LastContactDate),
		NextFollowUpDate: null.TimeFromPtr(m.NextFollowUpDate),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
