// Package navigation decides which screens a role may reach.
package navigation

import "github.com/dmitrijs2005/edublog/internal/models"

// Route is a top-level screen of the client.
type Route string

const (
	RouteLogin      Route = "login"
	RoutePosts      Route = "posts"
	RouteCreatePost Route = "create-post"
	RouteAdmin      Route = "admin"
	RouteTeachers   Route = "teachers"
	RouteStudents   Route = "students"
)

var (
	anonymousRoutes = []Route{RouteLogin}
	teacherRoutes   = []Route{RoutePosts, RouteAdmin, RouteTeachers, RouteStudents}
	studentRoutes   = []Route{RoutePosts, RouteCreatePost}
)

// Routes returns the screens reachable by identity. A nil identity, or one
// with an unknown role, only reaches the login screen.
func Routes(identity *models.Identity) []Route {
	if identity == nil {
		return clone(anonymousRoutes)
	}
	switch identity.Role {
	case models.RoleTeacher:
		return clone(teacherRoutes)
	case models.RoleStudent:
		return clone(studentRoutes)
	}
	return clone(anonymousRoutes)
}

// Allowed reports whether identity may reach r.
func Allowed(identity *models.Identity, r Route) bool {
	for _, x := range Routes(identity) {
		if x == r {
			return true
		}
	}
	return false
}

func clone(in []Route) []Route {
	return append([]Route(nil), in...)
}
