package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"corpculture/internal/config"
	"corpculture/internal/domain/entities"
	"corpculture/internal/usecase/interfaces"
)

var ErrMissingAPIBaseURL = errors.New("missing CORPCULTURE_API_URL")

const defaultRequestTimeout = 30 * time.Second

// CorpcultureGateway talks to the upstream corpculture REST API.
//
// Every endpoint answers the same envelope {success, message?, <resourceKey>};
// success=false or a non-2xx status becomes *entities.RemoteError carrying the
// server-supplied message. No retries: callers surface the error and the user
// re-invokes the action.
type CorpcultureGateway struct {
	baseURL string
	token   string
	client  *http.Client
}

var _ interfaces.IRemoteGateway = (*CorpcultureGateway)(nil)

func NewCorpcultureGateway(baseURL, token string) (*CorpcultureGateway, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingAPIBaseURL
	}
	return &CorpcultureGateway{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

// NewCorpcultureGatewayFromEnv reads CORPCULTURE_API_URL and
// CORPCULTURE_API_TOKEN.
func NewCorpcultureGatewayFromEnv() (*CorpcultureGateway, error) {
	return NewCorpcultureGateway(os.Getenv("CORPCULTURE_API_URL"), os.Getenv("CORPCULTURE_API_TOKEN"))
}

func (g *CorpcultureGateway) Fetch(ctx context.Context, resource, id string) (map[string]any, error) {
	result, err := g.do(ctx, http.MethodGet, resourcePath(resource, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return payloadObject(result, resource), nil
}

func (g *CorpcultureGateway) List(ctx context.Context, resource string, params map[string]string) ([]map[string]any, error) {
	query := url.Values{}
	for key, value := range params {
		query.Set(key, value)
	}
	result, err := g.do(ctx, http.MethodGet, resourcePath(resource, ""), query, nil)
	if err != nil {
		return nil, err
	}
	return payloadList(result, resource), nil
}

func (g *CorpcultureGateway) Create(ctx context.Context, resource string, payload map[string]any) (map[string]any, error) {
	result, err := g.do(ctx, http.MethodPost, resourcePath(resource, ""), nil, payload)
	if err != nil {
		return nil, err
	}
	return payloadObject(result, resource), nil
}

func (g *CorpcultureGateway) Update(ctx context.Context, resource, id string, payload map[string]any) (map[string]any, error) {
	result, err := g.do(ctx, http.MethodPut, resourcePath(resource, id), nil, payload)
	if err != nil {
		return nil, err
	}
	return payloadObject(result, resource), nil
}

func (g *CorpcultureGateway) Delete(ctx context.Context, resource, id string) error {
	_, err := g.do(ctx, http.MethodDelete, resourcePath(resource, id), nil, nil)
	return err
}

func (g *CorpcultureGateway) Count(ctx context.Context, resource string) (int64, error) {
	result, err := g.do(ctx, http.MethodGet, resourcePath(resource, "count"), nil, nil)
	if err != nil {
		return 0, err
	}
	if count, ok := result["count"].(float64); ok {
		return int64(count), nil
	}
	return 0, &entities.RemoteError{Message: fmt.Sprintf("malformed count response for %s", resource)}
}

func (g *CorpcultureGateway) NextCounter(ctx context.Context, resource string) (entities.SequenceCounter, error) {
	result, err := g.do(ctx, http.MethodGet, resourcePath(resource, "sequence"), nil, nil)
	if err != nil {
		return entities.SequenceCounter{}, err
	}

	counter := entities.SequenceCounter{}
	switch v := result["counter"].(type) {
	case float64:
		counter.Value = int64(v)
	case string:
		value, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return entities.SequenceCounter{}, &entities.RemoteError{Message: fmt.Sprintf("malformed sequence response for %s", resource)}
		}
		counter.Value = value
	default:
		return entities.SequenceCounter{}, &entities.RemoteError{Message: fmt.Sprintf("malformed sequence response for %s", resource)}
	}
	if template, ok := result["template"].(string); ok {
		counter.Template = template
	}
	return counter, nil
}

// UploadFile sends a multipart form body, the upstream's shape for image and
// document attachments.
func (g *CorpcultureGateway) UploadFile(ctx context.Context, resource, field, filename string, contents io.Reader) (map[string]any, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, contents); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+resourcePath(resource, "upload"), &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	result, err := g.send(req)
	if err != nil {
		return nil, err
	}
	return payloadObject(result, resource), nil
}

func (g *CorpcultureGateway) do(ctx context.Context, method, path string, query url.Values, body any) (map[string]any, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewBuffer(encoded)
	}

	fullURL := g.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return g.send(req)
}

func (g *CorpcultureGateway) send(req *http.Request) (map[string]any, error) {
	req.Header.Set("Accept", "application/json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		config.LogError(config.GetLogger(), "remote", "send", "request", map[string]any{"method": req.Method, "url": req.URL.String()}, err)
		return nil, &entities.RemoteError{Message: "could not reach the corpculture API"}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &entities.RemoteError{StatusCode: resp.StatusCode, Message: "failed to read response"}
	}

	var result map[string]any
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &entities.RemoteError{StatusCode: resp.StatusCode, Message: "malformed response from the corpculture API"}
	}

	message, _ := result["message"].(string)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &entities.RemoteError{StatusCode: resp.StatusCode, Message: message}
	}
	if success, ok := result["success"].(bool); ok && !success {
		return nil, &entities.RemoteError{StatusCode: resp.StatusCode, Message: message}
	}

	return result, nil
}

func resourcePath(resource, suffix string) string {
	path := "/api/v1/" + strings.Trim(resource, "/")
	if suffix != "" {
		path += "/" + suffix
	}
	return path
}

// payloadObject digs the entity out of the envelope. Endpoints key the
// payload by resource name, its singular, or a generic "data".
func payloadObject(result map[string]any, resource string) map[string]any {
	for _, key := range payloadKeys(resource) {
		if obj, ok := result[key].(map[string]any); ok {
			return obj
		}
	}
	for key, value := range result {
		if key == "success" || key == "message" {
			continue
		}
		if obj, ok := value.(map[string]any); ok {
			return obj
		}
	}
	return map[string]any{}
}

func payloadList(result map[string]any, resource string) []map[string]any {
	var raw []any
	for _, key := range payloadKeys(resource) {
		if list, ok := result[key].([]any); ok {
			raw = list
			break
		}
	}
	if raw == nil {
		for key, value := range result {
			if key == "success" || key == "message" {
				continue
			}
			if list, ok := value.([]any); ok {
				raw = list
				break
			}
		}
	}

	rows := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if row, ok := entry.(map[string]any); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func payloadKeys(resource string) []string {
	keys := []string{resource}
	if singular := strings.TrimSuffix(resource, "s"); singular != resource {
		keys = append(keys, singular)
	}
	return append(keys, "data")
}
