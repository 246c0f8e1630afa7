// Package client là thư viện gọi API quản lý nhà trọ: HTTP client có retry,
// chuẩn hóa hình dạng danh sách và bộ điều khiển danh sách dùng chung cho mọi tài nguyên.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Mặc định khi Options bỏ trống
const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = time.Second
	DefaultTimeout       = 10 * time.Second
)

// ErrNetwork lỗi không gửi được request tới máy chủ
var ErrNetwork = errors.New("không thể kết nối máy chủ")

// APIError lỗi do máy chủ trả về, giữ nguyên mã trạng thái và thông báo
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("máy chủ trả về %d: %s", e.StatusCode, e.Message)
}

// IsNotFound kiểm tra lỗi 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsValidation kiểm tra lỗi dữ liệu không hợp lệ (400)
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest
}

// Options cấu hình client
type Options struct {
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
	HTTPClient    *http.Client
}

// Client gọi backend JSON-over-HTTP.
// Các thao tác đọc theo ID và ghi được retry với backoff tuyến tính
// (độ trễ = số lần thử × RetryDelay); riêng tải danh sách không retry.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	retryAttempts int
	retryDelay    time.Duration
}

func New(opts Options) *Client {
	if opts.RetryAttempts <= 0 {
		opts.RetryAttempts = DefaultRetryAttempts
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		httpClient:    httpClient,
		retryAttempts: opts.RetryAttempts,
		retryDelay:    opts.RetryDelay,
	}
}

// do gửi request, đọc toàn bộ body trả về. retry=true thì thử lại khi lỗi mạng
// hoặc máy chủ lỗi 5xx; lỗi 4xx trả về ngay vì thử lại cũng không đổi kết quả.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, retry bool) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("không mã hóa được dữ liệu gửi đi: %w", err)
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	attempts := 1
	if retry {
		attempts = c.retryAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt-1) * c.retryDelay):
			}
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return nil, err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", ErrNetwork, err)
			continue
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", ErrNetwork, err)
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return data, nil
		}

		apiErr := &APIError{StatusCode: resp.StatusCode, Message: decodeErrorMessage(resp.StatusCode, data)}
		if resp.StatusCode < 500 {
			return nil, apiErr
		}
		lastErr = apiErr
	}
	return nil, lastErr
}

// decodeErrorMessage đọc trường message của body lỗi.
// message có thể là chuỗi hoặc mảng chuỗi, mảng được nối bằng ", ".
func decodeErrorMessage(statusCode int, body []byte) string {
	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Message) > 0 {
		var single string
		if err := json.Unmarshal(envelope.Message, &single); err == nil && single != "" {
			return single
		}
		var multiple []string
		if err := json.Unmarshal(envelope.Message, &multiple); err == nil && len(multiple) > 0 {
			return strings.Join(multiple, ", ")
		}
	}
	if statusCode == http.StatusNotFound {
		return "Không tìm thấy dữ liệu"
	}
	return "Yêu cầu thất bại"
}

// PageInfo thông tin phân trang của tài nguyên phân trang phía máy chủ
type PageInfo struct {
	Total int64
	Page  int
	Limit int
}

// normalizeList chấp nhận các hình dạng danh sách mà backend có thể trả về:
// mảng trần, { data: [...] }, { items: [...] } hoặc { users, total, page, limit }.
// Hình dạng lạ cho ra danh sách rỗng thay vì lỗi.
func normalizeList(body []byte) ([]json.RawMessage, PageInfo, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return []json.RawMessage{}, PageInfo{}, nil
	}

	if trimmed[0] == '[' {
		var bare []json.RawMessage
		if err := json.Unmarshal(trimmed, &bare); err != nil {
			return nil, PageInfo{}, fmt.Errorf("dữ liệu danh sách không đọc được: %w", err)
		}
		return bare, PageInfo{}, nil
	}

	var envelope struct {
		Data  []json.RawMessage `json:"data"`
		Items []json.RawMessage `json:"items"`
		Users []json.RawMessage `json:"users"`
		Total int64             `json:"total"`
		Page  int               `json:"page"`
		Limit int               `json:"limit"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, PageInfo{}, fmt.Errorf("dữ liệu danh sách không đọc được: %w", err)
	}

	switch {
	case envelope.Data != nil:
		return envelope.Data, PageInfo{}, nil
	case envelope.Items != nil:
		return envelope.Items, PageInfo{}, nil
	case envelope.Users != nil:
		return envelope.Users, PageInfo{Total: envelope.Total, Page: envelope.Page, Limit: envelope.Limit}, nil
	}
	return []json.RawMessage{}, PageInfo{}, nil
}

// Resource thao tác CRUD của một tài nguyên REST, kiểu E là entity của tài nguyên đó
type Resource[E any] struct {
	client *Client
	path   string
}

// NewResource tạo Resource cho đường dẫn như "/api/rooms"
func NewResource[E any](c *Client, path string) *Resource[E] {
	return &Resource[E]{client: c, path: strings.TrimRight(path, "/")}
}

// List tải danh sách, không retry
func (r *Resource[E]) List(ctx context.Context, query url.Values) ([]E, PageInfo, error) {
	body, err := r.client.do(ctx, http.MethodGet, r.path, query, nil, false)
	if err != nil {
		return nil, PageInfo{}, err
	}

	raw, page, err := normalizeList(body)
	if err != nil {
		return nil, PageInfo{}, err
	}

	entities := make([]E, 0, len(raw))
	for _, item := range raw {
		var e E
		if err := json.Unmarshal(item, &e); err != nil {
			return nil, PageInfo{}, fmt.Errorf("phần tử danh sách không đọc được: %w", err)
		}
		entities = append(entities, e)
	}
	return entities, page, nil
}

// Get đọc một entity theo ID, có retry
func (r *Resource[E]) Get(ctx context.Context, id string) (E, error) {
	var e E
	body, err := r.client.do(ctx, http.MethodGet, r.path+"/"+url.PathEscape(id), nil, nil, true)
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return e, fmt.Errorf("dữ liệu trả về không đọc được: %w", err)
	}
	return e, nil
}

// Create gửi bản nháp entity (chưa có ID), có retry
func (r *Resource[E]) Create(ctx context.Context, draft any) (E, error) {
	var e E
	body, err := r.client.do(ctx, http.MethodPost, r.path, nil, draft, true)
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return e, fmt.Errorf("dữ liệu trả về không đọc được: %w", err)
	}
	return e, nil
}

// Update gửi bản vá một phần, có retry
func (r *Resource[E]) Update(ctx context.Context, id string, patch any) (E, error) {
	var e E
	body, err := r.client.do(ctx, http.MethodPut, r.path+"/"+url.PathEscape(id), nil, patch, true)
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return e, fmt.Errorf("dữ liệu trả về không đọc được: %w", err)
	}
	return e, nil
}

// Delete xóa entity, có retry
func (r *Resource[E]) Delete(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, http.MethodDelete, r.path+"/"+url.PathEscape(id), nil, nil, true)
	return err
}

// StatusResource tài nguyên có thêm thao tác đổi trạng thái.
// Chỉ tài nguyên nào backend mở PATCH /{id}/status mới dựng bằng kiểu này;
// tài nguyên thường dùng Resource thì gọi nhầm SetStatus sẽ bị chặn ngay
// tại bộ điều khiển, không ra tới mạng.
type StatusResource[E any] struct {
	*Resource[E]
}

// NewStatusResource tạo StatusResource cho đường dẫn như "/api/users"
func NewStatusResource[E any](c *Client, path string) *StatusResource[E] {
	return &StatusResource[E]{Resource: NewResource[E](c, path)}
}

// SetStatus đổi trạng thái qua PATCH /{id}/status, có retry
func (r *StatusResource[E]) SetStatus(ctx context.Context, id, status string) (E, error) {
	var e E
	body, err := r.client.do(ctx, http.MethodPatch, r.path+"/"+url.PathEscape(id)+"/status", nil,
		map[string]string{"status": status}, true)
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return e, fmt.Errorf("dữ liệu trả về không đọc được: %w", err)
	}
	return e, nil
}
