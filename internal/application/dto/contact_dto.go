package dto

// CreateContactRequest alta de contacto. Status por defecto: Lead.
type CreateContactRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Status  string `json:"status"`
}

// UpdateContactRequest edición de contacto. LastContact en formato 2006-01-02.
type UpdateContactRequest struct {
	Company     string `json:"company"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Status      string `json:"status"`
	LastContact string `json:"last_contact"`
}

// ContactResponse un contacto del CRM.
type ContactResponse struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Status      string `json:"status"`
	LastContact string `json:"last_contact"`
}
