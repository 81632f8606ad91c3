package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const defaultBaseURL = "http://127.0.0.1:5000/api"

// ErrServiceUnavailable wraps transport-level failures so callers can tell
// "server unreachable" apart from an API-level rejection.
var ErrServiceUnavailable = errors.New("learning service unavailable")

// APIError carries a non-2xx response back to the caller with the
// server-supplied message when one was present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type submitResponse struct {
	Message string   `json:"message"`
	Attempt *Attempt `json:"attempt"`
}

// Client talks to the LearnSmart REST API. All methods are safe to call
// concurrently; authenticated calls take the bearer token explicitly so the
// client itself holds no session state.
type Client struct {
	rest *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	rest.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	return &Client{rest: rest}
}

func (c *Client) Profile(ctx context.Context, token string) (User, error) {
	var user User
	err := c.get(ctx, "/auth/profile", token, &user)
	return user, err
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	var auth AuthResponse
	if err := c.post(ctx, "/auth/login", "", req, &auth); err != nil {
		return AuthResponse{}, err
	}
	if auth.AccessToken == "" {
		return AuthResponse{}, &APIError{Message: "login response missing access token"}
	}
	return auth, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	var auth AuthResponse
	if err := c.post(ctx, "/auth/register", "", req, &auth); err != nil {
		return AuthResponse{}, err
	}
	if auth.AccessToken == "" {
		return AuthResponse{}, &APIError{Message: "registration response missing access token"}
	}
	return auth, nil
}

func (c *Client) Courses(ctx context.Context) ([]CourseSummary, error) {
	var courses []CourseSummary
	err := c.get(ctx, "/courses/", "", &courses)
	return courses, err
}

func (c *Client) Course(ctx context.Context, courseID int) (Course, error) {
	var course Course
	err := c.get(ctx, "/courses/"+strconv.Itoa(courseID), "", &course)
	return course, err
}

func (c *Client) Enroll(ctx context.Context, token string, courseID int) (string, error) {
	var payload messageResponse
	if err := c.post(ctx, "/learner/enroll/"+strconv.Itoa(courseID), token, nil, &payload); err != nil {
		return "", err
	}
	if payload.Message == "" {
		return "", &APIError{Message: payload.Error}
	}
	return payload.Message, nil
}

func (c *Client) Dashboard(ctx context.Context, token string) (Dashboard, error) {
	var dashboard Dashboard
	err := c.get(ctx, "/learner/dashboard", token, &dashboard)
	return dashboard, err
}

func (c *Client) Recommendations(ctx context.Context, token string) ([]CourseSummary, error) {
	var courses []CourseSummary
	err := c.get(ctx, "/learner/recommendations", token, &courses)
	return courses, err
}

func (c *Client) LearningInsights(ctx context.Context, token string) (Insights, error) {
	var insights Insights
	err := c.get(ctx, "/ai/learning-insights", token, &insights)
	return insights, err
}

func (c *Client) Quiz(ctx context.Context, token string, quizID int) (Quiz, error) {
	var quiz Quiz
	err := c.get(ctx, "/learner/quiz/"+strconv.Itoa(quizID), token, &quiz)
	return quiz, err
}

// SubmitQuiz posts the answer map keyed by question id. The API expects the
// keys as strings, the way a JSON object naturally serializes them.
func (c *Client) SubmitQuiz(ctx context.Context, token string, quizID int, answers map[int]int, timeTakenMinutes int) (Attempt, error) {
	encoded := make(map[string]int, len(answers))
	for questionID, optionIndex := range answers {
		encoded[strconv.Itoa(questionID)] = optionIndex
	}

	body := map[string]any{
		"answers":            encoded,
		"time_taken_minutes": timeTakenMinutes,
	}

	var payload submitResponse
	if err := c.post(ctx, "/learner/quiz/"+strconv.Itoa(quizID)+"/submit", token, body, &payload); err != nil {
		return Attempt{}, err
	}
	if payload.Attempt == nil {
		return Attempt{}, &APIError{Message: "submission response missing attempt"}
	}
	return *payload.Attempt, nil
}

func (c *Client) AdminUsers(ctx context.Context, token string) ([]User, error) {
	var users []User
	err := c.get(ctx, "/admin/users", token, &users)
	return users, err
}

func (c *Client) AdminAnalytics(ctx context.Context, token string) (Analytics, error) {
	var analytics Analytics
	err := c.get(ctx, "/admin/analytics", token, &analytics)
	return analytics, err
}

func (c *Client) CreateCourse(ctx context.Context, token string, req CreateCourseRequest) (string, error) {
	var payload messageResponse
	if err := c.post(ctx, "/admin/courses", token, req, &payload); err != nil {
		return "", err
	}
	if payload.Message == "" {
		return "", &APIError{Message: payload.Error}
	}
	return payload.Message, nil
}

func (c *Client) DeleteCourse(ctx context.Context, token string, courseID int) (string, error) {
	request := c.newRequest(ctx, token)
	var payload messageResponse
	request.SetResult(&payload)

	resp, err := request.Delete("/admin/courses/" + strconv.Itoa(courseID))
	if err := c.checkResponse(resp, err); err != nil {
		return "", err
	}
	if payload.Message == "" {
		return "", &APIError{Message: payload.Error}
	}
	return payload.Message, nil
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	request := c.newRequest(ctx, token)
	if out != nil {
		request.SetResult(out)
	}
	resp, err := request.Get(path)
	return c.checkResponse(resp, err)
}

func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	request := c.newRequest(ctx, token)
	if body != nil {
		request.SetBody(body)
	}
	if out != nil {
		request.SetResult(out)
	}
	resp, err := request.Post(path)
	return c.checkResponse(resp, err)
}

func (c *Client) newRequest(ctx context.Context, token string) *resty.Request {
	request := c.rest.R().SetContext(ctx).SetError(&errorResponse{})
	if token != "" {
		request.SetAuthToken(token)
	}
	return request
}

func (c *Client) checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	if resp.IsError() {
		apiErr := &APIError{StatusCode: resp.StatusCode()}
		if body, ok := resp.Error().(*errorResponse); ok && strings.TrimSpace(body.Error) != "" {
			apiErr.Message = body.Error
		}
		return apiErr
	}
	return nil
}
