// Package latency emulates network delay in front of the in-memory store.
//
// Each operation declares a duration. Suspend waits for it (scaled by the
// configured factor) before the caller takes its atomic step, so nothing is
// ever observed half-applied. A cancelled context ends the wait early and
// the step is skipped.
package latency

import (
	"context"
	"time"
)

// Op names a suspending operation.
type Op string

const (
	OpLogin         Op = "login"
	OpLogout        Op = "logout"
	OpListPosts     Op = "list_posts"
	OpGetPost       Op = "get_post"
	OpCreatePost    Op = "create_post"
	OpUpdatePost    Op = "update_post"
	OpDeletePost    Op = "delete_post"
	OpAddComment    Op = "add_comment"
	OpListTeachers  Op = "list_teachers"
	OpCreateTeacher Op = "create_teacher"
	OpUpdateTeacher Op = "update_teacher"
	OpDeleteTeacher Op = "delete_teacher"
	OpListStudents  Op = "list_students"
	OpCreateStudent Op = "create_student"
	OpUpdateStudent Op = "update_student"
	OpDeleteStudent Op = "delete_student"
)

// Defaults is the delay table of the mock backend.
var Defaults = map[Op]time.Duration{
	OpLogin:         1000 * time.Millisecond,
	OpLogout:        500 * time.Millisecond,
	OpListPosts:     800 * time.Millisecond,
	OpGetPost:       600 * time.Millisecond,
	OpCreatePost:    1000 * time.Millisecond,
	OpUpdatePost:    1000 * time.Millisecond,
	OpDeletePost:    800 * time.Millisecond,
	OpAddComment:    600 * time.Millisecond,
	OpListTeachers:  600 * time.Millisecond,
	OpCreateTeacher: 1000 * time.Millisecond,
	OpUpdateTeacher: 1000 * time.Millisecond,
	OpDeleteTeacher: 800 * time.Millisecond,
	OpListStudents:  600 * time.Millisecond,
	OpCreateStudent: 1000 * time.Millisecond,
	OpUpdateStudent: 1000 * time.Millisecond,
	OpDeleteStudent: 800 * time.Millisecond,
}

type Simulator struct {
	delays map[Op]time.Duration
	scale  float64
}

// NewSimulator uses the Defaults table scaled by scale. A scale of 0 or
// less disables waiting.
func NewSimulator(scale float64) *Simulator {
	return &Simulator{delays: Defaults, scale: scale}
}

// Duration is the scaled delay declared for op. Unknown ops don't wait.
func (s *Simulator) Duration(op Op) time.Duration {
	if s == nil || s.scale <= 0 {
		return 0
	}
	return time.Duration(float64(s.delays[op]) * s.scale)
}

// Suspend blocks for Duration(op) or until ctx is done, whichever is first.
func (s *Simulator) Suspend(ctx context.Context, op Op) error {
	d := s.Duration(op)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
