package metaclient

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const usageWarningThreshold = 75

type appUsage struct {
	CallCount    int `json:"call_count"`
	TotalCPUTime int `json:"total_cputime"`
	TotalTime    int `json:"total_time"`
}

func (u appUsage) peak() int {
	return max(u.CallCount, u.TotalCPUTime, u.TotalTime)
}

// appSecretProof é o HMAC-SHA256 do token com o app secret, quando configurado
func (c *MetaClient) appSecretProof(token string) string {
	if c.Cfg.Meta.AppSecret == "" {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(c.Cfg.Meta.AppSecret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func (c *MetaClient) endpoint(path string) string {
	return c.Cfg.Meta.URL + "/" + strings.TrimPrefix(path, "/")
}

// withAuth copia os parâmetros e adiciona o token (o do cliente, se accessToken vier vazio)
func (c *MetaClient) withAuth(params url.Values, accessToken string) url.Values {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}

	if accessToken == "" {
		accessToken = c.token
	}
	q.Set("access_token", accessToken)
	if proof := c.appSecretProof(accessToken); proof != "" {
		q.Set("appsecret_proof", proof)
	}

	return q
}

func (c *MetaClient) get(ctx context.Context, path string, params url.Values, accessToken string) ([]byte, error) {
	reqURL := c.endpoint(path) + "?" + c.withAuth(params, accessToken).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "meta: building request for %s", path)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, path)
}

// getNext segue um paging.next, que já traz o token e os filtros da primeira página
func (c *MetaClient) getNext(ctx context.Context, next string) ([]byte, error) {
	u, err := url.Parse(next)
	if err != nil {
		return nil, errors.Wrap(err, "meta: invalid paging.next")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "meta: building request for %s", u.Path)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, u.Path)
}

func (c *MetaClient) post(ctx context.Context, path string, form url.Values, accessToken string) ([]byte, error) {
	body := c.withAuth(form, accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), strings.NewReader(body.Encode()))
	if err != nil {
		return nil, errors.Wrapf(err, "meta: building request for %s", path)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	return c.do(req, path)
}

// do executa a requisição. path só é usado em logs e erros, nunca a URL com o token.
func (c *MetaClient) do(req *http.Request, path string) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		// *url.Error carrega a URL completa, incluindo o access_token
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, errors.Wrapf(err, "meta: %s %s", req.Method, path)
	}
	defer resp.Body.Close()

	logUsage(resp.Header, path)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "meta: reading response of %s", path)
	}

	return handleResponse(resp.StatusCode, body, path)
}

// handleResponse trata o corpo {"error": {...}} da Graph API, que pode vir até com HTTP 200
func handleResponse(statusCode int, body []byte, path string) ([]byte, error) {
	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
		logrus.WithFields(logrus.Fields{
			"path":       path,
			"status":     statusCode,
			"code":       errResp.Error.Code,
			"subcode":    errResp.Error.ErrorSubcode,
			"fbtrace_id": errResp.Error.FBTraceID,
		}).Warn("meta: graph api returned an error")
		return nil, errResp.Error
	}

	if statusCode >= http.StatusBadRequest {
		return nil, errors.Errorf("meta: %s returned HTTP %d", path, statusCode)
	}

	return body, nil
}

// logUsage avisa quando o consumo de cota passa de 75%
func logUsage(headers http.Header, path string) {
	if raw := headers.Get("X-Business-Use-Case-Usage"); raw != "" {
		var parsed map[string][]appUsage
		if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
			for businessID, entries := range parsed {
				for _, usage := range entries {
					if usage.peak() > usageWarningThreshold {
						logrus.WithFields(logrus.Fields{
							"path":        path,
							"business_id": businessID,
							"usage":       usage.peak(),
						}).Warn("meta: business use case usage is high")
					}
				}
			}
		}
	}

	if raw := headers.Get("X-App-Usage"); raw != "" {
		var usage appUsage
		if err := json.Unmarshal([]byte(raw), &usage); err == nil && usage.peak() > usageWarningThreshold {
			logrus.WithFields(logrus.Fields{
				"path":  path,
				"usage": usage.peak(),
			}).Warn("meta: app usage is high")
		}
	}
}

func (c *MetaClient) getObject(ctx context.Context, path string, params url.Values, accessToken string, out any) error {
	body, err := c.get(ctx, path, params, accessToken)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "meta: decoding response of %s", path)
	}

	return nil
}

// getAll percorre paging.next acumulando os itens de data.
// Para quando não há próxima página, quando uma página vem vazia, quando um cursor
// se repete, ao atingir MaxPages ou PaginationTimeout, ou ao juntar maxItems (0 = sem limite).
// Erro na primeira página é devolvido; nas seguintes, devolve o que já foi coletado.
func (c *MetaClient) getAll(ctx context.Context, path string, params url.Values, maxItems int) ([]metadomain.RawMessage, error) {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	if q.Get("limit") == "" {
		limit := c.Cfg.Meta.PageLimit
		if maxItems > 0 && (limit <= 0 || maxItems < limit) {
			limit = maxItems
		}
		if limit > 0 {
			q.Set("limit", strconv.Itoa(limit))
		}
	}

	var deadline time.Time
	if c.Cfg.Meta.PaginationTimeout > 0 {
		deadline = time.Now().Add(c.Cfg.Meta.PaginationTimeout)
	}

	logger := logrus.WithField("path", path)

	body, err := c.get(ctx, path, q, "")
	if err != nil {
		return nil, err
	}

	items := make([]metadomain.RawMessage, 0)
	seen := make(map[string]struct{})

	for pages := 1; ; pages++ {
		var page metadomain.Page
		if err := json.Unmarshal(body, &page); err != nil {
			if pages == 1 {
				return nil, errors.Wrapf(err, "meta: decoding page of %s", path)
			}
			logger.WithError(err).Warn("meta: invalid page, returning partial result")
			break
		}

		if len(page.Data) == 0 {
			break
		}
		items = append(items, page.Data...)

		if maxItems > 0 && len(items) >= maxItems {
			items = items[:maxItems]
			break
		}

		if page.Paging == nil || page.Paging.Next == "" {
			break
		}

		next := page.Paging.Next
		if _, ok := seen[next]; ok {
			logger.WithField("pages", pages).Warn("meta: paging.next repeated, stopping pagination")
			break
		}
		seen[next] = struct{}{}

		if c.Cfg.Meta.MaxPages > 0 && pages >= c.Cfg.Meta.MaxPages {
			logger.WithField("pages", pages).Warn("meta: page limit reached, stopping pagination")
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			logger.WithField("pages", pages).Warn("meta: pagination timeout reached, stopping pagination")
			break
		}

		body, err = c.getNext(ctx, next)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"pages": pages,
				"items": len(items),
				"error": err.Error(),
			}).Warn("meta: failed to fetch next page, returning partial result")
			break
		}
	}

	return items, nil
}

func decodeItems[T any](raw []metadomain.RawMessage) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			return nil, errors.Wrap(err, "meta: decoding item")
		}
		out = append(out, item)
	}
	return out, nil
}

func getAllAs[T any](ctx context.Context, c *MetaClient, path string, params url.Values, maxItems int) ([]T, error) {
	raw, err := c.getAll(ctx, path, params, maxItems)
	if err != nil {
		return nil, err
	}
	return decodeItems[T](raw)
}
