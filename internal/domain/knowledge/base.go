// Package knowledge expone la base de conocimiento en memoria que consulta el
// asistente: la carta del comercio y una instantánea de contactos y negocios
// del CRM. Todas las consultas son de solo lectura.
package knowledge

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
)

// Base instantánea de datos estructurados para una resolución de chat.
// No se muta después de construida.
type Base struct {
	Catalog  []entity.MenuCategory
	Contacts []entity.Contact
	Deals    []entity.Deal
}

// Counts agregados del CRM.
type Counts struct {
	ContactCount  int
	DealCount     int
	PipelineValue decimal.Decimal
}

// NewBase construye la base. Cualquier campo puede ir vacío.
func NewBase(catalog []entity.MenuCategory, contacts []entity.Contact, deals []entity.Deal) *Base {
	return &Base{Catalog: catalog, Contacts: contacts, Deals: deals}
}

// FindMenuItem busca un producto por nombre dentro de la consulta.
// Coincide si la consulta contiene el nombre normalizado del producto, si el
// nombre contiene la consulta, o si todas las palabras (largo > 2) del nombre
// aparecen en la consulta. Insensible a mayúsculas; sensible a tildes
// (limitación conocida: "bunuelo" no encuentra "Buñuelo").
func (b *Base) FindMenuItem(query string) (entity.MenuItem, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entity.MenuItem{}, false
	}
	for _, cat := range b.Catalog {
		for _, it := range cat.Items {
			name := strings.ToLower(it.Name)
			if strings.Contains(q, name) || strings.Contains(name, q) {
				return it, true
			}
			if allSignificantWordsIn(name, q) {
				return it, true
			}
		}
	}
	return entity.MenuItem{}, false
}

// allSignificantWordsIn aplica la coincidencia por palabras clave: toda
// palabra del nombre con más de 2 caracteres debe aparecer en la consulta.
func allSignificantWordsIn(name, q string) bool {
	var found bool
	for _, w := range strings.Fields(name) {
		if len([]rune(w)) <= 2 {
			continue
		}
		if !strings.Contains(q, w) {
			return false
		}
		found = true
	}
	return found
}

// FindCategory devuelve la categoría cuya lista de palabras clave contiene
// alguna palabra presente en la consulta. Las categorías se evalúan en orden
// de la carta.
func (b *Base) FindCategory(query string) (entity.MenuCategory, bool) {
	q := strings.ToLower(query)
	for _, cat := range b.Catalog {
		for _, kw := range categoryKeywords[cat.Label] {
			if strings.Contains(q, kw) {
				return cat, true
			}
		}
	}
	return entity.MenuCategory{}, false
}

// FindContact busca un contacto por fragmento de nombre (subcadena,
// insensible a mayúsculas). Si varios coinciden devuelve el primero en orden
// de almacenamiento; la ambigüedad no se señala (limitación conocida).
func (b *Base) FindContact(fragment string) (entity.Contact, bool) {
	frag := strings.ToLower(strings.TrimSpace(fragment))
	if frag == "" {
		return entity.Contact{}, false
	}
	for _, c := range b.Contacts {
		if strings.Contains(strings.ToLower(c.Name), frag) {
			return c, true
		}
	}
	return entity.Contact{}, false
}

// TopDeals devuelve los n negocios de mayor valor, descendente.
func (b *Base) TopDeals(n int) []entity.Deal {
	deals := make([]entity.Deal, len(b.Deals))
	copy(deals, b.Deals)
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].Value.GreaterThan(deals[j].Value)
	})
	if n < len(deals) {
		deals = deals[:n]
	}
	return deals
}

// AggregateCounts devuelve los totales del CRM.
func (b *Base) AggregateCounts() Counts {
	total := decimal.Zero
	for _, d := range b.Deals {
		total = total.Add(d.Value)
	}
	return Counts{
		ContactCount:  len(b.Contacts),
		DealCount:     len(b.Deals),
		PipelineValue: total,
	}
}
