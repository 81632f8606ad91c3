package app

// View names one of the mutually exclusive screens. Exactly one view is
// active at any time; navigation replaces it wholesale.
type View int

const (
	ViewHome View = iota
	ViewLogin
	ViewRegister
	ViewCourses
	ViewDashboard
	ViewAdmin
	ViewCourseDetail
	ViewQuiz
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewLogin:
		return "login"
	case ViewRegister:
		return "register"
	case ViewCourses:
		return "courses"
	case ViewDashboard:
		return "dashboard"
	case ViewAdmin:
		return "admin"
	case ViewCourseDetail:
		return "course"
	case ViewQuiz:
		return "quiz"
	}
	return "unknown"
}
