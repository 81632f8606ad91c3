package app

import "context"

func (a *App) loadCourses(ctx context.Context) {
	courses, err := a.api.Courses(ctx)
	if err != nil {
		a.notifyError(err, "Failed to load courses")
		return
	}
	renderCourseList(a.out, courses)
}

func (a *App) showCourseDetail(ctx context.Context, courseID int) {
	a.view = ViewCourseDetail
	renderViewHeader(a.out, ViewCourseDetail)
	a.loadCourseDetail(ctx, courseID)
}

func (a *App) loadCourseDetail(ctx context.Context, courseID int) {
	course, err := a.api.Course(ctx, courseID)
	if err != nil {
		a.notifyError(err, "Failed to load course details")
		return
	}
	a.state.SetCourse(course)
	renderCourseDetail(a.out, course, a.state.LoggedIn())
}

// enroll posts an enrollment for the open course. Without a stored token the
// login view is shown instead and no request is made.
func (a *App) enroll(ctx context.Context) {
	course := a.state.Course()
	if course == nil {
		a.notify(levelWarning, "Open a course first: course <id>")
		return
	}

	token := a.token(ctx)
	if token == "" {
		a.notify(levelWarning, "Please login to enroll")
		a.navigate(ctx, ViewLogin)
		return
	}

	message, err := a.api.Enroll(ctx, token, course.ID)
	if err != nil {
		a.notifyError(err, "Enrollment failed")
		return
	}

	a.notify(levelSuccess, message)
	// Reload the view so the updated enrollment status shows.
	a.loadCourseDetail(ctx, course.ID)
}
