package metadomain

type LeadField struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// RawLead é o lead como a Graph API devolve
type RawLead struct {
	ID          string      `json:"id"`
	CreatedTime string      `json:"created_time"`
	AdID        string      `json:"ad_id,omitempty"`
	FormID      string      `json:"form_id,omitempty"`
	FieldData   []LeadField `json:"field_data"`
}

// Lead é o lead achatado que o painel consome
type Lead struct {
	ID          string            `json:"id"`
	CreatedTime string            `json:"created_time"`
	AdID        string            `json:"ad_id"`
	FormID      string            `json:"form_id"`
	Nome        string            `json:"nome"`
	Email       string            `json:"email"`
	Telefone    string            `json:"telefone"`
	FieldData   map[string]string `json:"field_data"`
}
