package course

import "gorm.io/datatypes"

type CreateCourseDTO struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    Category       `json:"category"`
	Tags        datatypes.JSON `json:"tags"`
}

type UpdateCourseDTO struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Category    *Category       `json:"category"`
	Tags        *datatypes.JSON `json:"tags"`
}
