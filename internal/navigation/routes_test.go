package navigation

import (
	"testing"

	"github.com/dmitrijs2005/edublog/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRoutes(t *testing.T) {
	tests := []struct {
		name     string
		identity *models.Identity
		want     []Route
	}{
		{name: "anonymous", identity: nil, want: []Route{RouteLogin}},
		{name: "teacher", identity: &models.Identity{Role: models.RoleTeacher}, want: []Route{RoutePosts, RouteAdmin, RouteTeachers, RouteStudents}},
		{name: "student", identity: &models.Identity{Role: models.RoleStudent}, want: []Route{RoutePosts, RouteCreatePost}},
		{name: "unknown role", identity: &models.Identity{Role: "janitor"}, want: []Route{RouteLogin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Routes(tt.identity))
		})
	}
}

func TestRoutes_ReturnsCopy(t *testing.T) {
	teacher := &models.Identity{Role: models.RoleTeacher}
	r := Routes(teacher)
	r[0] = RouteLogin
	assert.Equal(t, RoutePosts, Routes(teacher)[0])
}

func TestAllowed(t *testing.T) {
	student := &models.Identity{Role: models.RoleStudent}
	assert.True(t, Allowed(student, RouteCreatePost))
	assert.False(t, Allowed(student, RouteAdmin))
	assert.False(t, Allowed(nil, RoutePosts))
	assert.True(t, Allowed(nil, RouteLogin))
}
