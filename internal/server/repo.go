package server

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlanRepo abstracts plan storage for the handlers.
type PlanRepo interface {
	Create(name string, data datatypes.JSON) (uuid.UUID, error)
	List() ([]PlanRecord, error)
	Get(id uuid.UUID) (*PlanRecord, error)
	Update(id uuid.UUID, name string, data datatypes.JSON) error
	Delete(id uuid.UUID) error
}

type gormPlanRepo struct {
	db *gorm.DB
}

// NewPlanRepo creates the gorm-backed plan repository.
func NewPlanRepo(db *gorm.DB) PlanRepo {
	return &gormPlanRepo{db: db}
}

func (r *gormPlanRepo) Create(name string, data datatypes.JSON) (uuid.UUID, error) {
	record := PlanRecord{
		UUID:      uuid.New(),
		Name:      name,
		Data:      data,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	err := r.db.Create(&record).Error
	return record.UUID, err
}

func (r *gormPlanRepo) List() ([]PlanRecord, error) {
	var records []PlanRecord
	err := r.db.Order("updated_at desc").Find(&records).Error
	return records, err
}

func (r *gormPlanRepo) Get(id uuid.UUID) (*PlanRecord, error) {
	var record PlanRecord
	if err := r.db.First(&record, "uuid = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *gormPlanRepo) Update(id uuid.UUID, name string, data datatypes.JSON) error {
	return r.db.Model(&PlanRecord{}).
		Where("uuid = ?", id).
		Updates(map[string]interface{}{
			"name":       name,
			"data":       data,
			"updated_at": time.Now(),
		}).Error
}

func (r *gormPlanRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&PlanRecord{}, "uuid = ?", id).Error
}
