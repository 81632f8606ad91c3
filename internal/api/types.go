package api

// User mirrors the auth profile payload.
type User struct {
	ID         int      `json:"id"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	Interests  []string `json:"interests"`
	SkillLevel string   `json:"skill_level"`
	CreatedAt  string   `json:"created_at"`
}

const RoleAdmin = "admin"

type AuthResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username   string   `json:"username" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=6"`
	SkillLevel string   `json:"skill_level"`
	Interests  []string `json:"interests"`
}

// CourseSummary is the shape returned by the course list, recommendations,
// and as the nested course of an enrollment.
type CourseSummary struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	DifficultyLevel string  `json:"difficulty_level"`
	DurationHours   float64 `json:"duration_hours"`
	Instructor      string  `json:"instructor"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	LessonCount     int     `json:"lesson_count"`
	EnrollmentCount int     `json:"enrollment_count"`
}

// Course is the detail shape with nested lessons and quizzes.
type Course struct {
	CourseSummary
	Lessons []Lesson      `json:"lessons"`
	Quizzes []QuizSummary `json:"quizzes"`
}

type Lesson struct {
	ID              int    `json:"id"`
	CourseID        int    `json:"course_id"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	OrderIndex      int    `json:"order_index"`
	DurationMinutes int    `json:"duration_minutes"`
}

type QuizSummary struct {
	ID               int    `json:"id"`
	CourseID         int    `json:"course_id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	TotalQuestions   int    `json:"total_questions"`
	PassingScore     int    `json:"passing_score"`
	TimeLimitMinutes int    `json:"time_limit_minutes"`
}

type Quiz struct {
	QuizSummary
	Questions []Question `json:"questions"`
}

type Question struct {
	ID           int      `json:"id"`
	QuizID       int      `json:"quiz_id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	Points       int      `json:"points"`
}

type Enrollment struct {
	ID                 int           `json:"id"`
	UserID             int           `json:"user_id"`
	CourseID           int           `json:"course_id"`
	EnrolledAt         string        `json:"enrolled_at"`
	CompletedAt        *string       `json:"completed_at"`
	ProgressPercentage float64       `json:"progress_percentage"`
	Course             CourseSummary `json:"course"`
}

type Dashboard struct {
	TotalCourses      int          `json:"total_courses"`
	CompletedCourses  int          `json:"completed_courses"`
	TotalQuizzesTaken int          `json:"total_quizzes_taken"`
	PassedQuizzes     int          `json:"passed_quizzes"`
	RecentAttempts    []Attempt    `json:"recent_attempts"`
	Enrollments       []Enrollment `json:"enrollments"`
}

// Attempt records one quiz submission.
type Attempt struct {
	ID               int     `json:"id"`
	UserID           int     `json:"user_id"`
	QuizID           int     `json:"quiz_id"`
	Score            int     `json:"score"`
	TotalQuestions   int     `json:"total_questions"`
	CorrectAnswers   int     `json:"correct_answers"`
	Percentage       float64 `json:"percentage"`
	Passed           bool    `json:"passed"`
	TimeTakenMinutes int     `json:"time_taken_minutes"`
	AttemptedAt      string  `json:"attempted_at"`
}

type PerformanceAnalysis struct {
	AverageScore    float64  `json:"average_score"`
	Recommendations []string `json:"recommendations"`
}

type Insights struct {
	Insights            []string             `json:"insights"`
	PerformanceAnalysis *PerformanceAnalysis `json:"performance_analysis"`
}

type CoursePerformance struct {
	CourseID       int     `json:"course_id"`
	Title          string  `json:"title"`
	Enrollments    int     `json:"enrollments"`
	Completions    int     `json:"completions"`
	CompletionRate float64 `json:"completion_rate"`
}

type Analytics struct {
	TotalUsers        int                 `json:"total_users"`
	TotalCourses      int                 `json:"total_courses"`
	TotalEnrollments  int                 `json:"total_enrollments"`
	TotalQuizAttempts int                 `json:"total_quiz_attempts"`
	CoursePerformance []CoursePerformance `json:"course_performance"`
}

type CreateCourseRequest struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description"`
	Category        string  `json:"category" validate:"required"`
	DifficultyLevel string  `json:"difficulty_level"`
	DurationHours   float64 `json:"duration_hours"`
	Instructor      string  `json:"instructor"`
}
