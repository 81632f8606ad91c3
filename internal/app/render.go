package app

import (
	"fmt"
	"io"
	"strings"

	"learnsmart/internal/api"
)

func renderViewHeader(out io.Writer, view View) {
	fmt.Fprintf(out, "\n=== %s ===\n", view)
}

func renderHome(out io.Writer, user *api.User) {
	fmt.Fprintln(out, "Welcome to LearnSmart.")
	if user != nil {
		fmt.Fprintf(out, "Signed in as %s (%s)\n", user.Username, user.Role)
	} else {
		fmt.Fprintln(out, "You are browsing anonymously. Type 'login' or 'register' to get started.")
	}
	fmt.Fprintln(out, "Type 'courses' to browse the catalog, 'help' for all commands.")
}

func renderCourseList(out io.Writer, courses []api.CourseSummary) {
	if len(courses) == 0 {
		fmt.Fprintln(out, "No courses available yet. Check back soon.")
		return
	}

	for _, course := range courses {
		renderCourseCard(out, course)
	}
}

func renderCourseCard(out io.Writer, course api.CourseSummary) {
	description := course.Description
	if description == "" {
		description = "No description available"
	}
	fmt.Fprintf(out, "\n[%d] %s\n", course.ID, course.Title)
	fmt.Fprintf(out, "    %s\n", description)
	fmt.Fprintf(out, "    %s | %s | %.1fh | %d lessons | %d enrolled\n",
		course.Category, course.DifficultyLevel, course.DurationHours,
		course.LessonCount, course.EnrollmentCount)
}

func renderCourseDetail(out io.Writer, course api.Course, loggedIn bool) {
	instructor := course.Instructor
	if instructor == "" {
		instructor = "TBA"
	}

	fmt.Fprintf(out, "\n%s\n", course.Title)
	fmt.Fprintf(out, "%s\n\n", course.Description)
	fmt.Fprintf(out, "Category: %s | Difficulty: %s | Duration: %.1f hours | Instructor: %s\n",
		course.Category, course.DifficultyLevel, course.DurationHours, instructor)

	if loggedIn {
		fmt.Fprintln(out, "Type 'enroll' to enroll in this course.")
	} else {
		fmt.Fprintln(out, "Login to enroll in this course.")
	}

	fmt.Fprintln(out, "\nLessons:")
	if len(course.Lessons) == 0 {
		fmt.Fprintln(out, "  (none yet)")
	}
	for _, lesson := range course.Lessons {
		content := lesson.Content
		if content == "" {
			content = "Content coming soon..."
		}
		fmt.Fprintf(out, "  - %s (%d min)\n    %s\n", lesson.Title, lesson.DurationMinutes, content)
	}

	fmt.Fprintln(out, "\nQuizzes:")
	if len(course.Quizzes) == 0 {
		fmt.Fprintln(out, "  (none yet)")
	}
	for _, quiz := range course.Quizzes {
		description := quiz.Description
		if description == "" {
			description = "Test your knowledge"
		}
		fmt.Fprintf(out, "  [%d] %s — %s (%d questions, %d minutes, pass at %d%%)\n",
			quiz.ID, quiz.Title, description, quiz.TotalQuestions,
			quiz.TimeLimitMinutes, quiz.PassingScore)
	}
	if len(course.Quizzes) > 0 {
		fmt.Fprintln(out, "Type 'quiz <id>' to take a quiz.")
	}
}

func renderDashboard(out io.Writer, dashboard api.Dashboard) {
	fmt.Fprintf(out, "Courses: %d enrolled, %d completed | Quizzes: %d taken, %d passed\n",
		dashboard.TotalCourses, dashboard.CompletedCourses,
		dashboard.TotalQuizzesTaken, dashboard.PassedQuizzes)

	fmt.Fprintln(out, "\nMy courses:")
	if len(dashboard.Enrollments) == 0 {
		fmt.Fprintln(out, "  You are not enrolled in any courses yet.")
	}
	for _, enrollment := range dashboard.Enrollments {
		fmt.Fprintf(out, "  [%d] %s %s %.1f%% — 'course %d' to continue\n",
			enrollment.Course.ID, enrollment.Course.Title,
			progressBar(enrollment.ProgressPercentage, 20),
			enrollment.ProgressPercentage, enrollment.Course.ID)
	}

	if len(dashboard.RecentAttempts) > 0 {
		fmt.Fprintln(out, "\nRecent quiz attempts:")
		for _, attempt := range dashboard.RecentAttempts {
			outcome := "failed"
			if attempt.Passed {
				outcome = "passed"
			}
			fmt.Fprintf(out, "  quiz %d: %.1f%% (%s)\n", attempt.QuizID, attempt.Percentage, outcome)
		}
	}
}

func renderRecommendationList(out io.Writer, courses []api.CourseSummary) {
	fmt.Fprintln(out, "\nRecommended for you:")
	if len(courses) == 0 {
		fmt.Fprintln(out, "  No recommendations yet.")
		return
	}
	for _, course := range courses {
		description := course.Description
		if description == "" {
			description = "No description"
		}
		fmt.Fprintf(out, "  [%d] %s — %s (%s, %s) — 'course %d' to view\n",
			course.ID, course.Title, description,
			course.Category, course.DifficultyLevel, course.ID)
	}
}

func renderInsights(out io.Writer, insights api.Insights) {
	fmt.Fprintln(out, "\nLearning insights:")
	if len(insights.Insights) == 0 {
		fmt.Fprintln(out, "  No insights available yet. Start learning to get personalized insights!")
	}
	for _, insight := range insights.Insights {
		fmt.Fprintf(out, "  %s\n", insight)
	}

	if analysis := insights.PerformanceAnalysis; analysis != nil {
		if analysis.AverageScore > 0 {
			fmt.Fprintf(out, "  Average score: %.1f%%\n", analysis.AverageScore)
		}
		for _, recommendation := range analysis.Recommendations {
			fmt.Fprintf(out, "  tip: %s\n", recommendation)
		}
	}
}

func renderInsightsUnavailable(out io.Writer) {
	fmt.Fprintln(out, "\nLearning insights:")
	fmt.Fprintln(out, "  Unable to load insights at this time.")
}

func renderQuiz(out io.Writer, quiz api.Quiz, remaining int) {
	description := quiz.Description
	if description == "" {
		description = "Test your knowledge"
	}
	fmt.Fprintf(out, "\n%s\n%s\n", quiz.Title, description)
	fmt.Fprintf(out, "Time limit: %s\n", formatTime(remaining))

	for idx, question := range quiz.Questions {
		renderQuestion(out, idx+1, question, -1)
	}

	fmt.Fprintln(out, "\nCommands: answer <question> <option>, submit, time, back")
}

// renderQuestion marks exactly the selected option, or none when selected is
// out of range.
func renderQuestion(out io.Writer, number int, question api.Question, selected int) {
	fmt.Fprintf(out, "\nQuestion %d: %s\n", number, question.QuestionText)
	for idx, option := range question.Options {
		marker := "[ ]"
		if idx == selected {
			marker = "[x]"
		}
		fmt.Fprintf(out, "  %s %d. %s\n", marker, idx+1, option)
	}
}

func renderTimer(out io.Writer, remaining int) {
	fmt.Fprintf(out, "\rtime remaining: %s ", formatTime(remaining))
}

func renderQuizResult(out io.Writer, attempt api.Attempt) {
	headline := "Keep Learning!"
	if attempt.Passed {
		headline = "Congratulations!"
	}
	fmt.Fprintf(out, "\n%s\n", headline)
	fmt.Fprintf(out, "Score: %.1f%% — %d of %d correct\n",
		attempt.Percentage, attempt.CorrectAnswers, attempt.TotalQuestions)
	fmt.Fprintf(out, "Time taken: %d minutes\n", attempt.TimeTakenMinutes)
	fmt.Fprintln(out, "Type 'course' to return to the course, or 'dashboard'.")
}

func renderAdminCourseList(out io.Writer, courses []api.CourseSummary) {
	fmt.Fprintln(out, "Courses:")
	if len(courses) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, course := range courses {
		description := course.Description
		if description == "" {
			description = "No description"
		}
		fmt.Fprintf(out, "  [%d] %s — %s (%s, %s, %d enrollments)\n",
			course.ID, course.Title, description,
			course.Category, course.DifficultyLevel, course.EnrollmentCount)
	}
	fmt.Fprintln(out, "Commands: create-course, edit-course <id>, delete-course <id>")
}

func renderUserList(out io.Writer, users []api.User) {
	fmt.Fprintln(out, "\nUsers:")
	for _, user := range users {
		fmt.Fprintf(out, "  %s — %s (%s)\n", user.Username, user.Email, user.Role)
	}
}

func renderAnalytics(out io.Writer, analytics api.Analytics) {
	fmt.Fprintf(out, "\nPlatform: %d users, %d courses, %d enrollments, %d quiz attempts\n",
		analytics.TotalUsers, analytics.TotalCourses,
		analytics.TotalEnrollments, analytics.TotalQuizAttempts)

	fmt.Fprintln(out, "Course performance:")
	for _, course := range analytics.CoursePerformance {
		fmt.Fprintf(out, "  %s %s %d/%d completed (%.1f%%)\n",
			course.Title, progressBar(course.CompletionRate, 20),
			course.Completions, course.Enrollments, course.CompletionRate)
	}
}

// formatTime renders remaining seconds as minutes:seconds with the seconds
// zero-padded to two digits.
func formatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func progressBar(percentage float64, width int) string {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	filled := int(percentage / 100 * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  home                 welcome screen")
	fmt.Fprintln(out, "  courses              browse the course catalog")
	fmt.Fprintln(out, "  course <id>          open a course")
	fmt.Fprintln(out, "  enroll               enroll in the open course")
	fmt.Fprintln(out, "  quiz <id>            take a quiz")
	fmt.Fprintln(out, "  dashboard            your progress and recommendations")
	fmt.Fprintln(out, "  login / register     sign in or create an account")
	fmt.Fprintln(out, "  logout               sign out")
	fmt.Fprintln(out, "  admin                admin panel (admins only)")
	fmt.Fprintln(out, "  help / exit")
}
