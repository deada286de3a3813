package reports

import "time"

// Status sigue el ciclo de vida de una denuncia.
type Status string

const (
	StatusSubmitted     Status = "submitted"
	StatusInvestigating Status = "investigating"
	StatusResolved      Status = "resolved"
	StatusDismissed     Status = "dismissed"
)

// Report es una denuncia de maltrato enviada desde la app.
// Las denuncias nunca se borran; solo los admins mutan status y notas.
type Report struct {
	ID          int64
	Type        string // neglect, abuse, abandonment, ...(texto libre del form)
	Location    string
	Description string

	// ContactInfo queda vacío cuando la denuncia es anónima.
	ContactInfo *string
	Anonymous   bool

	Status     Status
	AdminNotes *string
	AssignedTo *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusSubmitted, StatusInvestigating, StatusResolved, StatusDismissed:
		return true
	}
	return false
}
