package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 2*time.Second)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestLoginReturnsTokenAndUser(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		writeJSON(w, http.StatusOK, AuthResponse{
			AccessToken: "tok-123",
			User:        User{ID: 1, Username: "alice", Role: "learner"},
		})
	}))

	auth, err := client.Login(context.Background(), LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", auth.AccessToken)
	assert.Equal(t, "alice", auth.User.Username)
}

func TestLoginMissingTokenIsAnError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	}))

	_, err := client.Login(context.Background(), LoginRequest{Username: "alice", Password: "pw"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "missing access token")
}

func TestServerErrorMessageIsSurfaced(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Already enrolled in this course"})
	}))

	_, err := client.Enroll(context.Background(), "tok", 4)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Already enrolled in this course", apiErr.Message)
}

func TestTransportFailureWrapsErrServiceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := NewClient(server.URL, time.Second)

	_, err := client.Courses(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
}

func TestAuthenticatedRequestHeaders(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-9", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusOK, Dashboard{})
	}))

	_, err := client.Dashboard(context.Background(), "tok-9")
	require.NoError(t, err)
}

func TestSubmitQuizEncodesAnswerKeysAsStrings(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/learner/quiz/3/submit", r.URL.Path)

		var body struct {
			Answers          map[string]int `json:"answers"`
			TimeTakenMinutes int            `json:"time_taken_minutes"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]int{"10": 2, "11": 0}, body.Answers)
		assert.Equal(t, 4, body.TimeTakenMinutes)

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Quiz submitted successfully",
			"attempt": Attempt{Percentage: 50, CorrectAnswers: 1, TotalQuestions: 2},
		})
	}))

	attempt, err := client.SubmitQuiz(context.Background(), "tok", 3, map[int]int{10: 2, 11: 0}, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, attempt.CorrectAnswers)
}

func TestSubmitQuizMissingAttemptIsAnError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "recorded"})
	}))

	_, err := client.SubmitQuiz(context.Background(), "tok", 3, nil, 0)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "missing attempt")
}

func TestCourseDetailDecodesNestedCollections(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/courses/7", r.URL.Path)
		writeJSON(w, http.StatusOK, Course{
			CourseSummary: CourseSummary{ID: 7, Title: "Go Basics"},
			Lessons:       []Lesson{{ID: 1, Title: "Hello"}},
			Quizzes:       []QuizSummary{{ID: 2, Title: "Checkpoint", TimeLimitMinutes: 10}},
		})
	}))

	course, err := client.Course(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, course.Lessons, 1)
	require.Len(t, course.Quizzes, 1)
	assert.Equal(t, 10, course.Quizzes[0].TimeLimitMinutes)
}
