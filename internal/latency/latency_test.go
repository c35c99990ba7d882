package latency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_Scaling(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		op    Op
		want  time.Duration
	}{
		{name: "full login", scale: 1, op: OpLogin, want: time.Second},
		{name: "half logout", scale: 0.5, op: OpLogout, want: 250 * time.Millisecond},
		{name: "disabled", scale: 0, op: OpCreatePost, want: 0},
		{name: "negative", scale: -1, op: OpCreatePost, want: 0},
		{name: "unknown op", scale: 1, op: Op("like_post"), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewSimulator(tt.scale).Duration(tt.op))
		})
	}
}

func TestDefaults_CoverEveryOp(t *testing.T) {
	ops := []Op{
		OpLogin, OpLogout, OpListPosts, OpGetPost, OpCreatePost, OpUpdatePost, OpDeletePost,
		OpAddComment, OpListTeachers, OpCreateTeacher, OpUpdateTeacher, OpDeleteTeacher,
		OpListStudents, OpCreateStudent, OpUpdateStudent, OpDeleteStudent,
	}
	for _, op := range ops {
		assert.Positive(t, Defaults[op], "no delay declared for %s", op)
	}
}

func TestSuspend_Waits(t *testing.T) {
	s := NewSimulator(0.01) // 10ms for login
	start := time.Now()
	require.NoError(t, s.Suspend(context.Background(), OpLogin))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestSuspend_Cancelled(t *testing.T) {
	s := NewSimulator(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Suspend(ctx, OpLogin)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSuspend_DisabledStillHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, NewSimulator(0).Suspend(ctx, OpLogin), context.Canceled)
	require.NoError(t, NewSimulator(0).Suspend(context.Background(), OpLogin))

	var nilSim *Simulator
	require.NoError(t, nilSim.Suspend(context.Background(), OpLogin))
}
