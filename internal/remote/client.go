package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/alexanderramin/planboard/internal/domain"
)

const (
	planningPath = "/tasks/task_planning/"
	tasksPath    = "/tasks/tasks/"
	healthPath   = "/healthcheck"
)

// Client talks to the planning server's JSON API. Every call is attempted
// once; failures are terminal for the gesture that issued them.
type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for cfg.BaseURL.
func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// PatchPlanning sends a partial update of a planning.
func (c *Client) PatchPlanning(ctx context.Context, id string, patch contract.PlanningPatch) (*contract.PlanningRecord, error) {
	var rec contract.PlanningRecord
	if err := c.do(ctx, http.MethodPatch, planningPath+url.PathEscape(id), patch, &rec, nil); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) DeletePlanning(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, planningPath+url.PathEscape(id), nil, nil, nil)
}

// CreatePlanning posts a new planning. The response must carry a usable id.
func (c *Client) CreatePlanning(ctx context.Context, req contract.PlanningCreate) (*contract.PlanningRecord, error) {
	var rec contract.PlanningRecord
	if err := c.do(ctx, http.MethodPost, planningPath, req, &rec, planningSchema); err != nil {
		return nil, err
	}
	return &rec, nil
}

// PatchTaskState sets the state of a task.
func (c *Client) PatchTaskState(ctx context.Context, taskID string, state domain.TaskState) (*contract.TaskRecord, error) {
	var rec contract.TaskRecord
	body := contract.TaskStatePatch{State: string(state)}
	if err := c.do(ctx, http.MethodPatch, tasksPath+url.PathEscape(taskID), body, &rec, nil); err != nil {
		return nil, err
	}
	return &rec, nil
}

// TaskDetail fetches the general-info view of a task.
func (c *Client) TaskDetail(ctx context.Context, taskID string) (*contract.TaskGeneralInfo, error) {
	var info contract.TaskGeneralInfo
	if err := c.do(ctx, http.MethodGet, tasksPath+url.PathEscape(taskID)+"/general-info", nil, &info, nil); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListPlannings fetches every planning known to the server.
func (c *Client) ListPlannings(ctx context.Context) ([]contract.PlanningRecord, error) {
	var recs []contract.PlanningRecord
	if err := c.do(ctx, http.MethodGet, planningPath, nil, &recs, planningListSchema); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]contract.TaskRecord, error) {
	var recs []contract.TaskRecord
	if err := c.do(ctx, http.MethodGet, tasksPath, nil, &recs, nil); err != nil {
		return nil, err
	}
	return recs, nil
}

// Health checks that the server answers its health endpoint.
func (c *Client) Health(ctx context.Context) (*contract.HealthStatus, error) {
	var st contract.HealthStatus
	if err := c.do(ctx, http.MethodGet, healthPath, nil, &st, nil); err != nil {
		return nil, err
	}
	return &st, nil
}

// do performs one request. A nil out discards the body; a non-nil schema
// validates it before decoding.
func (c *Client) do(ctx context.Context, method, path string, body, out any, schema *jsonschema.Schema) error {
	start := time.Now()
	requestID := uuid.NewString()

	if c.cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	status, err := c.doRequest(ctx, method, path, requestID, body, out, schema)
	if err != nil {
		err = classify(ctx, err)
	}

	c.observer.OnCallComplete(CallEvent{
		Method:    method,
		Path:      path,
		RequestID: requestID,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	return err
}

func (c *Client) doRequest(ctx context.Context, method, path, requestID string, body, out any, schema *jsonschema.Schema) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path
	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return httpResp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return httpResp.StatusCode, &APIError{
			Method: method,
			Path:   path,
			Status: httpResp.StatusCode,
			Detail: parseDetail(respBody),
		}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		if out != nil && schema != nil {
			return httpResp.StatusCode, fmt.Errorf("%w: empty body", ErrInvalidResponse)
		}
		return httpResp.StatusCode, nil
	}
	if schema != nil {
		if err := validateBody(schema, respBody); err != nil {
			return httpResp.StatusCode, err
		}
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return httpResp.StatusCode, fmt.Errorf("%w: decoding response: %v", ErrInvalidResponse, err)
	}
	return httpResp.StatusCode, nil
}

// classify maps transport failures onto the package sentinels.
func classify(ctx context.Context, err error) error {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr), errors.Is(err, ErrInvalidResponse):
		return err
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ErrTimeout
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return err
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
