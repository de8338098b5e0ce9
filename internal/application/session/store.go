// Package session mantiene el estado por sesión: carrito y conversación.
// No hay singleton de proceso; el estado viaja explícitamente a los casos de
// uso. Cada sesión es un flujo secuencial de interacciones de un solo
// usuario, así que el estado de una sesión no se protege contra escrituras
// concurrentes; el mutex solo cuida el mapa.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
)

// State estado de una sesión.
type State struct {
	ID           string
	Cart         entity.Cart
	Conversation entity.Conversation
}

// Store registro en memoria de sesiones activas.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*State
}

// NewStore construye el registro vacío.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*State)}
}

// GetOrCreate devuelve la sesión con ese ID, creándola si no existe.
// Con ID vacío genera una sesión nueva con UUID.
func (s *Store) GetOrCreate(id string) *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		id = uuid.New().String()
	}
	st, ok := s.sessions[id]
	if !ok {
		st = &State{ID: id}
		s.sessions[id] = st
	}
	return st
}

// Get devuelve la sesión si existe.
func (s *Store) Get(id string) (*State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[id]
	return st, ok
}
