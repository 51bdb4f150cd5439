package metadomain

import "encoding/json"

// RawMessage guarda objetos da Graph API que são repassados sem remodelar
type RawMessage = json.RawMessage

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors  *Cursors `json:"cursors,omitempty"`
	Next     string   `json:"next,omitempty"`
	Previous string   `json:"previous,omitempty"`
}

// Page é uma página de uma listagem da Graph API
type Page struct {
	Data   []RawMessage `json:"data"`
	Paging *Paging           `json:"paging,omitempty"`
}

// InsightsEdge é o campo "insights" anexado a campanhas, conjuntos e anúncios.
// Error recebe o retorno de InlineError quando a busca falha.
type InsightsEdge struct {
	Data   []RawMessage `json:"data"`
	Paging *Paging           `json:"paging,omitempty"`
	Error  any               `json:"error,omitempty"`
}
