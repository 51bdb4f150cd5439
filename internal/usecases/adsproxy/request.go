package adsproxy

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jbapex/planeje-sub002/internal/domain"
	"github.com/jbapex/planeje-sub002/pkg/apiErrors"
	"github.com/jbapex/planeje-sub002/pkg/utils"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errNotAnObject = errors.New("request body must be a JSON object")

// Request é o corpo {action, ...params} da chamada
type Request map[string]any

func ParseRequest(body []byte) (Request, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errNotAnObject
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errNotAnObject
	}
	return req, nil
}

// Action devolve o action quando ele existe e é uma string não vazia
func (r Request) Action() (string, bool) {
	action, ok := r["action"].(string)
	if !ok {
		return "", false
	}
	action = strings.TrimSpace(action)
	return action, action != ""
}

// String lê um parâmetro textual; ids numéricos também são aceitos
func (r Request) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// Int lê um inteiro enviado como número ou string; 0 quando ausente, inválido
// ou fora de [0, math.MaxInt32]
func (r Request) Int(key string) int {
	switch v := r[key].(type) {
	case float64:
		if math.IsNaN(v) || v < 0 || v > math.MaxInt32 {
			return 0
		}
		return int(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil || n < 0 {
			return 0
		}
		return int(n)
	}
	return 0
}

// idKeys são os parâmetros que viram segmento de caminho na Graph API
var idKeys = []string{
	"adId", "formId", "leadId", "adAccountId", "campaignId",
	"adsetId", "pageId", "instagramAccountId",
}

// invalidID devolve o primeiro id com caractere que alteraria o caminho da URL
func (r Request) invalidID() (string, bool) {
	for _, key := range idKeys {
		if strings.ContainsAny(r.String(key), "/?#") {
			return key, true
		}
	}
	return "", false
}

// StringSlice aceita tanto ["a","b"] quanto "a,b"
func (r Request) StringSlice(key string) []string {
	var raw []string

	switch v := r[key].(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	case string:
		raw = strings.Split(v, ",")
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FirstString devolve o primeiro parâmetro preenchido, na ordem dada, e o nome dele
func (r Request) FirstString(keys ...string) (string, string) {
	for _, key := range keys {
		if v := r.String(key); v != "" {
			return v, key
		}
	}
	return "", ""
}

// insightFilters lê since/until/datePreset e os ajustes de agregação dos insights
func (r Request) insightFilters() (*domain.InsightFilters, Response) {
	since, until, errResp := r.dateRange()
	if errResp != nil {
		return nil, errResp
	}

	return &domain.InsightFilters{
		StartDate:     since,
		EndDate:       until,
		DatePreset:    r.String("datePreset"),
		Level:         r.String("level"),
		TimeIncrement: r.String("timeIncrement"),
		Fields:        r.StringSlice("fields"),
	}, nil
}

func (r Request) metricQuery() (*domain.MetricQuery, Response) {
	since, until, errResp := r.dateRange()
	if errResp != nil {
		return nil, errResp
	}

	return &domain.MetricQuery{
		Metrics:   r.StringSlice("metrics"),
		Period:    r.String("period"),
		Since:     since,
		Until:     until,
		Timeframe: r.String("timeframe"),
		Breakdown: r.String("breakdown"),
	}, nil
}

func (r Request) dateRange() (*time.Time, *time.Time, Response) {
	since, err := utils.ParseDate(r.String("since"))
	if err != nil {
		return nil, nil, errorResponse(apiErrors.ErrInvalidRequest, fmt.Sprintf("invalid since date: %s", r.String("since")))
	}

	until, err := utils.ParseDate(r.String("until"))
	if err != nil {
		return nil, nil, errorResponse(apiErrors.ErrInvalidRequest, fmt.Sprintf("invalid until date: %s", r.String("until")))
	}

	if since != nil && until != nil && since.After(*until) {
		return nil, nil, errorResponse(apiErrors.ErrInvalidRequest, "since must not be after until")
	}

	return since, until, nil
}
