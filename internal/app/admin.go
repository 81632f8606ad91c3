package app

import (
	"context"
	"strconv"

	"learnsmart/internal/api"
)

// loadAdmin fills the three admin panels. Each panel isolates its own
// failure so one broken fetch does not blank the others.
func (a *App) loadAdmin(ctx context.Context) {
	a.loadAdminCourses(ctx)
	a.loadAdminUsers(ctx)
	a.loadAdminAnalytics(ctx)
}

// loadAdminCourses reuses the public course list endpoint.
func (a *App) loadAdminCourses(ctx context.Context) {
	courses, err := a.api.Courses(ctx)
	if err != nil {
		a.notifyError(err, "Failed to load courses")
		return
	}
	renderAdminCourseList(a.out, courses)
}

func (a *App) loadAdminUsers(ctx context.Context) {
	users, err := a.api.AdminUsers(ctx, a.token(ctx))
	if err != nil {
		a.notifyError(err, "Failed to load users")
		return
	}
	renderUserList(a.out, users)
}

func (a *App) loadAdminAnalytics(ctx context.Context) {
	analytics, err := a.api.AdminAnalytics(ctx, a.token(ctx))
	if err != nil {
		a.notifyError(err, "Failed to load analytics")
		return
	}
	renderAnalytics(a.out, analytics)
}

// requireAdmin is the client-side permission check; denial looks exactly
// like any other failed action.
func (a *App) requireAdmin() bool {
	if a.state.IsAdmin() {
		return true
	}
	a.notify(levelDanger, "Access denied. Admin privileges required.")
	return false
}

func (a *App) createCourse(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}

	title, ok := a.prompt(ctx, "title: ")
	if !ok {
		return
	}
	description, ok := a.prompt(ctx, "description: ")
	if !ok {
		return
	}
	category, ok := a.prompt(ctx, "category: ")
	if !ok {
		return
	}
	difficulty, ok := a.prompt(ctx, "difficulty (beginner/intermediate/advanced): ")
	if !ok {
		return
	}
	durationRaw, ok := a.prompt(ctx, "duration (hours): ")
	if !ok {
		return
	}
	instructor, ok := a.prompt(ctx, "instructor: ")
	if !ok {
		return
	}

	duration, err := strconv.ParseFloat(durationRaw, 64)
	if err != nil {
		duration = 0
	}

	request := api.CreateCourseRequest{
		Title:           title,
		Description:     description,
		Category:        category,
		DifficultyLevel: difficulty,
		DurationHours:   duration,
		Instructor:      instructor,
	}
	if err := a.validate.Struct(request); err != nil {
		a.notify(levelDanger, validationMessage(err))
		return
	}

	message, err := a.api.CreateCourse(ctx, a.token(ctx), request)
	if err != nil {
		a.notifyError(err, "Failed to create course")
		return
	}

	a.notify(levelSuccess, message)
	a.loadAdminCourses(ctx)
}

func (a *App) editCourse() {
	if !a.requireAdmin() {
		return
	}
	a.notify(levelInfo, "Edit functionality coming soon!")
}

// deleteCourse asks for explicit confirmation before sending anything.
func (a *App) deleteCourse(ctx context.Context, courseID int) {
	if !a.requireAdmin() {
		return
	}

	confirmed, ok := a.promptYesNo(ctx, "Are you sure you want to delete this course? (yes/no): ")
	if !ok || !confirmed {
		return
	}

	message, err := a.api.DeleteCourse(ctx, a.token(ctx), courseID)
	if err != nil {
		a.notifyError(err, "Failed to delete course")
		return
	}

	a.notify(levelSuccess, message)
	a.loadAdminCourses(ctx)
}
