package entity

import (
	"fmt"
	"time"
)

// ContactStatus estado de un contacto dentro del CRM. Enumeración cerrada.
type ContactStatus string

const (
	StatusLead     ContactStatus = "Lead"
	StatusCustomer ContactStatus = "Customer"
	StatusPartner  ContactStatus = "Partner"
	StatusInactive ContactStatus = "Inactive"
)

// ContactStatuses todos los estados válidos, en orden de presentación.
var ContactStatuses = []ContactStatus{StatusLead, StatusCustomer, StatusPartner, StatusInactive}

// ParseContactStatus valida que el texto sea uno de los estados cerrados.
func ParseContactStatus(s string) (ContactStatus, error) {
	for _, st := range ContactStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("estado de contacto desconocido: %q", s)
}

// DateLayout formato de fecha usado en los CSV (Last Contact, Close Date).
const DateLayout = "2006-01-02"

// Contact representa un contacto del CRM. Name se usa como clave de búsqueda;
// la unicidad no se garantiza (las coincidencias ambiguas resuelven al primero
// en orden de almacenamiento).
type Contact struct {
	Name        string
	Company     string
	Email       string
	Phone       string
	Status      ContactStatus
	LastContact time.Time
}
