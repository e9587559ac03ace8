// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// support-resource directory.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/schoolsafe/go-report-backend/internal/domain"
)

// ListResources returns the whole directory ordered by name.
func ListResources(ctx context.Context, db *gorm.DB) ([]domain.Resource, error) {
	var out []domain.Resource
	err := db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

// GetResource fetches one directory entry or ErrNotFound.
func GetResource(ctx context.Context, db *gorm.DB, id uint) (*domain.Resource, error) {
	var r domain.Resource
	if err := db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateResource inserts a new directory entry.
func CreateResource(ctx context.Context, db *gorm.DB, r *domain.Resource) error {
	return db.WithContext(ctx).Create(r).Error
}

// UpdateResource saves all mutable fields of an existing entry. Returns
// ErrNotFound when the row is missing.
func UpdateResource(ctx context.Context, db *gorm.DB, r *domain.Resource) error {
	res := db.WithContext(ctx).
		Model(&domain.Resource{}).
		Where("id = ?", r.ID).
		Updates(map[string]any{
			"name":        r.Name,
			"description": r.Description,
			"category":    r.Category,
			"phone":       r.Phone,
			"website":     r.Website,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteResource removes a directory entry. Returns ErrNotFound when the row
// is missing.
func DeleteResource(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Resource{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
