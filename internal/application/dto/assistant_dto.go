package dto

// EmailDraftRequest petición de borrador de correo de seguimiento.
// Tone: "Formal", "Amigable" (por defecto) o "Persuasivo".
type EmailDraftRequest struct {
	Contact string `json:"contact"`
	Tone    string `json:"tone"`
}

// AssistantResponse texto generado por el asistente de ventas.
// Source: remote (modelo externo) o local (plantilla de respaldo).
type AssistantResponse struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Model  string `json:"model,omitempty"`
}
