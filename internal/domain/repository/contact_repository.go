package repository

import "github.com/kumisdelbalcon/balcon-api/internal/domain/entity"

// ContactRepository define el puerto de persistencia para contactos del CRM.
// La búsqueda es por nombre; si varios contactos comparten nombre, la
// resolución es por orden de almacenamiento.
type ContactRepository interface {
	List() ([]entity.Contact, error)
	GetByName(name string) (*entity.Contact, error)
	Create(contact entity.Contact) error
	Update(name string, contact entity.Contact) error
	Delete(name string) error
}
