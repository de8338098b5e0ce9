package dto

// ChatRequest mensaje entrante del usuario. SessionID vacío crea una sesión nueva.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatReply respuesta del asistente.
// Source indica el nivel que produjo el texto: local (regla de la base de
// conocimiento), remote (modelo externo) o fallback (respuesta enlatada).
type ChatReply struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Source    string `json:"source"`
	Model     string `json:"model,omitempty"` // solo cuando Source es remote
}
