// Package server implements the plan persistence REST service.
package server

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PlanRecord is the database model for one stored plan. Data holds the
// serialized plan document (project.Document) as JSON; the server does
// not interpret it beyond storage.
type PlanRecord struct {
	UUID      uuid.UUID      `gorm:"primarykey" json:"uuid"`
	Name      string         `gorm:"not null" json:"name"`
	Data      datatypes.JSON `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
