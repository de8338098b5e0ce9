package entity

// Role emisor de un mensaje del chat.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message un turno de la conversación.
type Message struct {
	Role    Role
	Content string
}

// Conversation historial de mensajes de una sesión. Solo crece por Append;
// nunca se reordena ni se muta en sitio. Clear lo reemplaza por una secuencia vacía.
// Un solo escritor por diseño: cada sesión es un flujo secuencial de interacciones.
type Conversation struct {
	msgs []Message
}

// Append agrega un mensaje al final del historial.
func (c *Conversation) Append(role Role, content string) {
	c.msgs = append(c.msgs, Message{Role: role, Content: content})
}

// Messages devuelve una copia del historial en orden.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.msgs))
	copy(out, c.msgs)
	return out
}

// Len cantidad de mensajes.
func (c *Conversation) Len() int {
	return len(c.msgs)
}

// Clear descarta todo el historial.
func (c *Conversation) Clear() {
	c.msgs = nil
}
