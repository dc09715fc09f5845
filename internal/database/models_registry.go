package database

import "blogapi/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Order matters: parents before children.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.Post{},
		&models.Comment{},
	}
}
