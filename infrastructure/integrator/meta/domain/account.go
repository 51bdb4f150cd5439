package metadomain

import "strings"

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AdAccount struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"account_id,omitempty"`
	Name          string    `json:"name"`
	AccountStatus int       `json:"account_status,omitempty"`
	Currency      string    `json:"currency,omitempty"`
	TimezoneName  string    `json:"timezone_name,omitempty"`
	AmountSpent   string    `json:"amount_spent,omitempty"`
	Business      *Business `json:"business,omitempty"`
}

// NormalizeAccountID garante o prefixo act_ no id da conta de anúncios
func NormalizeAccountID(id string) string {
	id = strings.TrimSpace(id)
	if strings.HasPrefix(id, "act_") {
		return id
	}
	return "act_" + id
}
