package models

// Modality defines how a course is delivered
type Modality string

const (
	ModalityInPerson Modality = "IN_PERSON"
	ModalityRemote   Modality = "REMOTE"
)

// IsValid reports whether the modality is one of the known variants
func (m Modality) IsValid() bool {
	return m == ModalityInPerson || m == ModalityRemote
}
