package models

import "fmt"

// Course represents a curriculum offering. The modality discriminator selects
// the variant: in-person courses carry a room, remote courses a platform.
// The modality is fixed at creation and never changes for the row's lifetime.
type Course struct {
	ID         int64    `json:"id" db:"id" example:"1"`
	Name       string   `json:"name" db:"name" example:"Information Systems"`
	Code       string   `json:"code" db:"code" example:"SI001"`
	TotalHours int      `json:"totalHours" db:"total_hours" example:"3600"`
	Modality   Modality `json:"modality" db:"modality" example:"IN_PERSON" enums:"IN_PERSON,REMOTE"`
	Room       *string  `json:"room,omitempty" db:"room"`         // In-person only
	Platform   *string  `json:"platform,omitempty" db:"platform"` // Remote only
}

// Summary returns a one-line human-readable description of the course.
// The variant-specific part is always appended after the shared prefix.
func (c *Course) Summary() string {
	base := fmt.Sprintf("Course: %s | Code: %s | Hours: %dh", c.Name, c.Code, c.TotalHours)
	switch c.Modality {
	case ModalityInPerson:
		room := ""
		if c.Room != nil {
			room = *c.Room
		}
		return base + " | Modality: In-person | Room: " + room
	case ModalityRemote:
		platform := ""
		if c.Platform != nil {
			platform = *c.Platform
		}
		return base + " | Modality: Remote | Platform: " + platform
	default:
		return base
	}
}
