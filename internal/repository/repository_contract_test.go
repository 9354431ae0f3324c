package repository_test

import (
	"context"
	"testing"
	"time"

	"valentine_week/internal/model"
	"valentine_week/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backendFactory はテストごとに空のバックエンドを返す
type backendFactory func(t *testing.T) *repository.Backend

// testNow は全ドライバで往復できる精度 (ミリ秒) に丸めた現在時刻
func testNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func assertProgressEqual(t *testing.T, want, got *model.UserProgress) {
	t.Helper()
	require.NotNil(t, got)
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.ReplayMode, got.ReplayMode)
	assert.Equal(t, want.AllCompleted, got.AllCompleted)
	assert.Equal(t, want.Version, got.Version)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at: want %v, got %v", want.CreatedAt, got.CreatedAt)
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt), "updated_at: want %v, got %v", want.UpdatedAt, got.UpdatedAt)
	require.Len(t, got.Days, len(want.Days))
	for i := range want.Days {
		w, g := want.Days[i], got.Days[i]
		assert.Equal(t, w.DayNumber, g.DayNumber)
		assert.Equal(t, w.DayName, g.DayName)
		assert.Equal(t, w.IsUnlocked, g.IsUnlocked, "day %d is_unlocked", w.DayNumber)
		assert.Equal(t, w.IsCompleted, g.IsCompleted, "day %d is_completed", w.DayNumber)
		if w.CompletionTime == nil {
			assert.Nil(t, g.CompletionTime, "day %d completion_time", w.DayNumber)
		} else {
			require.NotNil(t, g.CompletionTime, "day %d completion_time", w.DayNumber)
			assert.True(t, w.CompletionTime.Equal(*g.CompletionTime))
		}
	}
}

// runBackendContract は全ドライバ共通の振る舞いを検証する
func runBackendContract(t *testing.T, newBackend backendFactory) {
	ctx := context.Background()

	t.Run("正常系: 空のストアでは Fetch が nil を返す", func(t *testing.T) {
		b := newBackend(t)
		got, err := b.Progress.Fetch(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("正常系: Create したドキュメントを Fetch できる", func(t *testing.T) {
		b := newBackend(t)
		want := model.NewUserProgress(uuid.NewString(), testNow())
		require.NoError(t, b.Progress.Create(ctx, want))

		got, err := b.Progress.Fetch(ctx)
		require.NoError(t, err)
		assertProgressEqual(t, want, got)
		assert.Equal(t, int64(1), got.Version)
	})

	t.Run("異常系: 2件目の Create は Conflict になり既存は変わらない", func(t *testing.T) {
		b := newBackend(t)
		first := model.NewUserProgress(uuid.NewString(), testNow())
		require.NoError(t, b.Progress.Create(ctx, first))

		second := model.NewUserProgress(uuid.NewString(), testNow())
		err := b.Progress.Create(ctx, second)
		assert.ErrorIs(t, err, model.ErrConflict)

		got, err := b.Progress.Fetch(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.UserID, got.UserID)
	})

	t.Run("正常系: Replace で全体が置き換わり Version が進む", func(t *testing.T) {
		b := newBackend(t)
		p := model.NewUserProgress(uuid.NewString(), testNow())
		require.NoError(t, b.Progress.Create(ctx, p))

		current, err := b.Progress.Fetch(ctx)
		require.NoError(t, err)
		require.NoError(t, current.CompleteDay(1, testNow()))
		require.NoError(t, b.Progress.Replace(ctx, current))
		assert.Equal(t, int64(2), current.Version)

		got, err := b.Progress.Fetch(ctx)
		require.NoError(t, err)
		assertProgressEqual(t, current, got)
		assert.True(t, got.Days[0].IsCompleted)
		assert.True(t, got.Days[1].IsUnlocked)
	})

	t.Run("異常系: 古い Version での Replace は Conflict", func(t *testing.T) {
		b := newBackend(t)
		require.NoError(t, b.Progress.Create(ctx, model.NewUserProgress(uuid.NewString(), testNow())))

		a, err := b.Progress.Fetch(ctx)
		require.NoError(t, err)
		stale, err := b.Progress.Fetch(ctx)
		require.NoError(t, err)

		require.NoError(t, a.CompleteDay(1, testNow()))
		require.NoError(t, b.Progress.Replace(ctx, a))

		require.NoError(t, stale.CompleteDay(1, testNow()))
		err = b.Progress.Replace(ctx, stale)
		assert.ErrorIs(t, err, model.ErrConflict)
		assert.Equal(t, int64(1), stale.Version)

		got, err := b.Progress.Fetch(ctx)
		require.NoError(t, err)
		assertProgressEqual(t, a, got)
	})

	t.Run("異常系: ドキュメントがない状態の Replace は NotFound", func(t *testing.T) {
		b := newBackend(t)
		err := b.Progress.Replace(ctx, model.NewUserProgress(uuid.NewString(), testNow()))
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: DeleteAll は冪等", func(t *testing.T) {
		b := newBackend(t)
		require.NoError(t, b.Progress.DeleteAll(ctx))
		require.NoError(t, b.Progress.Create(ctx, model.NewUserProgress(uuid.NewString(), testNow())))
		require.NoError(t, b.Progress.DeleteAll(ctx))
		require.NoError(t, b.Progress.DeleteAll(ctx))

		got, err := b.Progress.Fetch(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)

		// 削除後は再作成できる
		require.NoError(t, b.Progress.Create(ctx, model.NewUserProgress(uuid.NewString(), testNow())))
	})

	t.Run("正常系: StatusCheck は作成順に limit 件まで返る", func(t *testing.T) {
		b := newBackend(t)
		base := testNow()
		names := []string{"alpha", "beta", "gamma"}
		for i, name := range names {
			require.NoError(t, b.Status.Create(ctx, &model.StatusCheck{
				ID:         uuid.NewString(),
				ClientName: name,
				Timestamp:  base.Add(time.Duration(i) * time.Second),
			}))
		}

		all, err := b.Status.List(ctx, 10)
		require.NoError(t, err)
		require.Len(t, all, 3)
		for i, name := range names {
			assert.Equal(t, name, all[i].ClientName)
		}

		limited, err := b.Status.List(ctx, 2)
		require.NoError(t, err)
		require.Len(t, limited, 2)
		assert.Equal(t, "alpha", limited[0].ClientName)
		assert.Equal(t, "beta", limited[1].ClientName)
	})

	t.Run("正常系: StatusCheck が空なら空スライス", func(t *testing.T) {
		b := newBackend(t)
		got, err := b.Status.List(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("正常系: Ping が成功する", func(t *testing.T) {
		b := newBackend(t)
		assert.NoError(t, b.Ping(ctx))
	})
}
