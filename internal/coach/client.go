package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Gateway defines the interface for talking to the coach API.
// This interface is implemented by *Client and can be used for testing.
type Gateway interface {
	DailyByDate(ctx context.Context, date, userID string) ([]DailyRecord, error)
	WeekBack(ctx context.Context, date, userID string) ([]DailyRecord, error)
	SleepWeekBack(ctx context.Context, date, userID string) ([]SleepRecord, error)
	WeightWeekBack(ctx context.Context, date, userID string) ([]DailyRecord, error)
	HourlyByDate(ctx context.Context, date, userID string) ([]HourlyRecord, error)
	HeartRateByMinute(ctx context.Context, date string) ([]float64, error)
	Goals(ctx context.Context, userID string) ([]Goal, error)
	Goal(ctx context.Context, userID, metric string) (Goal, error)
	UpdateGoal(ctx context.Context, userID, metric string, value float64) error
	ConversationSubjects(ctx context.Context, userID string, offset, limit int) (SubjectPage, error)
	ConversationMessages(ctx context.Context, conversationID string) ([]ConversationMessage, error)
	AddWeightLog(ctx context.Context, entry WeightLogEntry) error
	SendMessage(ctx context.Context, req ChatRequest) (ChatResponse, error)
	Recommendations(ctx context.Context, date, userID string) ([]Recommendation, error)
	SuggestedQuestions(ctx context.Context) ([]SuggestedQuestion, error)
	MetricDetail(ctx context.Context, date, metric string) (Detail, error)
}

// Ensure Client implements Gateway at compile time.
var _ Gateway = (*Client)(nil)

// Client talks to the coach HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:8000"
	defaultUserAgent = "stride/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client using the provided base URL or host:port value.
func NewClient(apiURL string) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// DailyByDate retrieves the daily summary records for one date.
func (c *Client) DailyByDate(ctx context.Context, date, userID string) ([]DailyRecord, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/data/daily_data/by-date", RawQuery: dateUserQuery(date, userID).Encode()}
	var payload []DailyRecord
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// WeekBack retrieves the trailing week of daily summary records.
func (c *Client) WeekBack(ctx context.Context, date, userID string) ([]DailyRecord, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/data/daily_data/week-back", RawQuery: dateUserQuery(date, userID).Encode()}
	var payload weekBackResponse
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload.AvailableData, nil
}

// SleepWeekBack retrieves the trailing week of sleep records. Sleep is
// attributed to the night before the record date by the dashboard screens,
// not by the API.
func (c *Client) SleepWeekBack(ctx context.Context, date, userID string) ([]SleepRecord, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/data/daily_data/sleep-week-back", RawQuery: dateUserQuery(date, userID).Encode()}
	var payload sleepWeekBackResponse
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload.AvailableSleepData, nil
}

// WeightWeekBack retrieves the trailing week of weight log records.
func (c *Client) WeightWeekBack(ctx context.Context, date, userID string) ([]DailyRecord, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/data/weight_log/week-back", RawQuery: dateUserQuery(date, userID).Encode()}
	var payload weekBackResponse
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload.AvailableData, nil
}

// HourlyByDate retrieves hour-grained samples for one date.
func (c *Client) HourlyByDate(ctx context.Context, date, userID string) ([]HourlyRecord, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/data/hourly_merged/by-date", RawQuery: dateUserQuery(date, userID).Encode()}
	var payload []HourlyRecord
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// HeartRateByMinute retrieves the minute-grained heart rate series for one date.
func (c *Client) HeartRateByMinute(ctx context.Context, date string) ([]float64, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("bydate", date)
	rel := &url.URL{Path: "/data/heartrate/minute", RawQuery: values.Encode()}
	var payload heartRateResponse
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload.HeartRateValues, nil
}

// Goals retrieves all goals for a user.
func (c *Client) Goals(ctx context.Context, userID string) ([]Goal, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Goal
	if err := c.do(ctx, http.MethodGet, "/data/goals/"+userID, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Goal retrieves a single goal for a user and metric.
func (c *Client) Goal(ctx context.Context, userID, metric string) (Goal, error) {
	if c == nil {
		return Goal{}, fmt.Errorf("client is nil")
	}
	var payload Goal
	if err := c.do(ctx, http.MethodGet, "/data/goals/"+userID+"/"+metric, &payload); err != nil {
		return Goal{}, err
	}
	return payload, nil
}

// UpdateGoal creates or updates a goal for a user and metric.
func (c *Client) UpdateGoal(ctx context.Context, userID, metric string, value float64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("goal_value", strconv.FormatFloat(value, 'f', -1, 64))
	rel := &url.URL{
		Path:     "/data/goals/" + userID + "/" + strings.ToLower(metric),
		RawQuery: values.Encode(),
	}
	return c.doURL(ctx, http.MethodPost, rel, nil, nil)
}

// ConversationSubjects retrieves one page of the user's conversation list.
func (c *Client) ConversationSubjects(ctx context.Context, userID string, offset, limit int) (SubjectPage, error) {
	if c == nil {
		return SubjectPage{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("offset", strconv.Itoa(offset))
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	rel := &url.URL{Path: "/data/conversation_subjects/" + userID, RawQuery: values.Encode()}
	var payload SubjectPage
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return SubjectPage{}, err
	}
	return payload, nil
}

// ConversationMessages retrieves the full message history of a conversation.
func (c *Client) ConversationMessages(ctx context.Context, conversationID string) ([]ConversationMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(conversationID) == "" {
		return nil, fmt.Errorf("conversation id required")
	}
	var payload []ConversationMessage
	if err := c.do(ctx, http.MethodGet, "/data/conversation_messages/"+conversationID, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// AddWeightLog appends a weight log entry.
func (c *Client) AddWeightLog(ctx context.Context, entry WeightLogEntry) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/data/weight_log/add"}
	return c.doURL(ctx, http.MethodPost, rel, entry, nil)
}

// SendMessage posts one chat message and returns the coach reply.
func (c *Client) SendMessage(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	if c == nil {
		return ChatResponse{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(req.Message) == "" {
		return ChatResponse{}, fmt.Errorf("message required")
	}
	rel := &url.URL{Path: "/chat/chat"}
	var payload ChatResponse
	if err := c.doURL(ctx, http.MethodPost, rel, req, &payload); err != nil {
		return ChatResponse{}, err
	}
	return payload, nil
}

// Recommendations retrieves the coach recommendations for one date.
func (c *Client) Recommendations(ctx context.Context, date, userID string) ([]Recommendation, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/chat/recommendations", RawQuery: dateUserQuery(date, userID).Encode()}
	var payload recommendationsResponse
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Recommendations, nil
}

// SuggestedQuestions retrieves conversation starters.
func (c *Client) SuggestedQuestions(ctx context.Context) ([]SuggestedQuestion, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload suggestedQuestionsResponse
	if err := c.do(ctx, http.MethodGet, "/chat/suggested_questions", &payload); err != nil {
		return nil, err
	}
	return payload.Questions, nil
}

// MetricDetail retrieves the coach insight for one metric and date.
func (c *Client) MetricDetail(ctx context.Context, date, metric string) (Detail, error) {
	if c == nil {
		return Detail{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("date", date)
	values.Set("metric", metric)
	rel := &url.URL{Path: "/chat/detail", RawQuery: values.Encode()}
	var payload detailResponse
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return Detail{}, err
	}
	return payload.Output, nil
}

func dateUserQuery(date, userID string) url.Values {
	values := url.Values{}
	if strings.TrimSpace(date) != "" {
		values.Set("date", date)
	}
	if strings.TrimSpace(userID) != "" {
		values.Set("user_id", userID)
	}
	return values
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, nil, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body any, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		if detail := decodeDetail(resp); detail != "" {
			return &APIError{Status: resp.StatusCode, Detail: detail, Path: rel.Path}
		}
		return &APIError{Status: resp.StatusCode, Path: rel.Path}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// APIError reports a non-2xx response, carrying the server-supplied detail
// message when one was present in the body.
type APIError struct {
	Status int
	Detail string
	Path   string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Status)
}

// ErrorDetail extracts the server-supplied detail message from err, or ""
// when err is not an APIError or carried no detail.
func ErrorDetail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

func decodeDetail(resp *http.Response) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Detail)
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", apiURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
