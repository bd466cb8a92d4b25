package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
	mock_service "github.com/dragosdragos935/Italia-Word-Quiz/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedNow(date string) func() time.Time {
	return func() time.Time {
		ts, _ := time.Parse(time.DateOnly, date)
		return ts
	}
}

func TestProgressS_RecordStudyEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored models.DailyProgress
		today  string
		want   models.DailyProgress
	}{
		{
			name:   "first ever study starts streak at one",
			stored: models.DailyProgress{},
			today:  "2026-08-30",
			want: models.DailyProgress{
				LastStudyDate:  "2026-08-30",
				StudiedToday:   1,
				ExercisesToday: 1,
				Streak:         1,
				TotalStudied:   1,
			},
		},
		{
			name: "same day keeps streak and accumulates",
			stored: models.DailyProgress{
				LastStudyDate:  "2026-08-30",
				StudiedToday:   5,
				ExercisesToday: 5,
				Streak:         3,
				TotalStudied:   40,
			},
			today: "2026-08-30",
			want: models.DailyProgress{
				LastStudyDate:  "2026-08-30",
				StudiedToday:   6,
				ExercisesToday: 6,
				Streak:         3,
				TotalStudied:   41,
			},
		},
		{
			name: "next day extends streak and resets counters",
			stored: models.DailyProgress{
				LastStudyDate:  "2026-08-29",
				StudiedToday:   12,
				ExercisesToday: 12,
				Streak:         3,
				TotalStudied:   40,
			},
			today: "2026-08-30",
			want: models.DailyProgress{
				LastStudyDate:  "2026-08-30",
				StudiedToday:   1,
				ExercisesToday: 1,
				Streak:         4,
				TotalStudied:   41,
			},
		},
		{
			name: "multi day gap restarts streak",
			stored: models.DailyProgress{
				LastStudyDate:  "2026-08-20",
				StudiedToday:   12,
				ExercisesToday: 12,
				Streak:         9,
				TotalStudied:   40,
			},
			today: "2026-08-30",
			want: models.DailyProgress{
				LastStudyDate:  "2026-08-30",
				StudiedToday:   1,
				ExercisesToday: 1,
				Streak:         1,
				TotalStudied:   41,
			},
		},
		{
			name: "unparseable stored date restarts streak",
			stored: models.DailyProgress{
				LastStudyDate: "yesterday",
				Streak:        7,
				TotalStudied:  10,
			},
			today: "2026-08-30",
			want: models.DailyProgress{
				LastStudyDate:  "2026-08-30",
				StudiedToday:   1,
				ExercisesToday: 1,
				Streak:         1,
				TotalStudied:   11,
			},
		},
		{
			name: "clock moved backwards leaves streak alone",
			stored: models.DailyProgress{
				LastStudyDate:  "2026-08-30",
				StudiedToday:   3,
				ExercisesToday: 3,
				Streak:         5,
				TotalStudied:   40,
			},
			today: "2026-08-28",
			want: models.DailyProgress{
				LastStudyDate:  "2026-08-28",
				StudiedToday:   1,
				ExercisesToday: 1,
				Streak:         5,
				TotalStudied:   41,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var saved models.DailyProgress
			repo := mock_service.NewMockRepositoryI(ctrl)
			repo.EXPECT().LoadProgress(gomock.Any()).Return(tt.stored, nil)
			repo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p models.DailyProgress) error {
					saved = p
					return nil
				})

			progressS := NewProgressService(repo, 20, fixedNow(tt.today), zap.NewNop())

			require.NoError(t, progressS.RecordStudyEvent(context.Background()))
			assert.Equal(t, tt.want, saved)
		})
	}
}

func TestProgressS_RecordStudyEvent_loadFailureStartsFresh(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var saved models.DailyProgress
	repo := mock_service.NewMockRepositoryI(ctrl)
	repo.EXPECT().LoadProgress(gomock.Any()).Return(models.DailyProgress{}, errors.New("corrupt payload"))
	repo.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.DailyProgress) error {
			saved = p
			return nil
		})

	progressS := NewProgressService(repo, 20, fixedNow("2026-08-30"), zap.NewNop())

	require.NoError(t, progressS.RecordStudyEvent(context.Background()))
	assert.Equal(t, 1, saved.Streak)
	assert.Equal(t, 1, saved.TotalStudied)
}

func TestProgressS_Overview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		stored      models.DailyProgress
		today       string
		goal        int
		wantToday   int
		wantPercent int
	}{
		{
			name: "same day counters kept",
			stored: models.DailyProgress{
				LastStudyDate:  "2026-08-30",
				StudiedToday:   10,
				ExercisesToday: 10,
				Streak:         2,
			},
			today:       "2026-08-30",
			goal:        20,
			wantToday:   10,
			wantPercent: 50,
		},
		{
			name: "new day shows zero so far",
			stored: models.DailyProgress{
				LastStudyDate:  "2026-08-29",
				StudiedToday:   15,
				ExercisesToday: 15,
				Streak:         2,
			},
			today:       "2026-08-30",
			goal:        20,
			wantToday:   0,
			wantPercent: 0,
		},
		{
			name: "percent caps at one hundred",
			stored: models.DailyProgress{
				LastStudyDate:  "2026-08-30",
				StudiedToday:   55,
				ExercisesToday: 55,
			},
			today:       "2026-08-30",
			goal:        20,
			wantToday:   55,
			wantPercent: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_service.NewMockRepositoryI(ctrl)
			repo.EXPECT().LoadProgress(gomock.Any()).Return(tt.stored, nil)

			progressS := NewProgressService(repo, tt.goal, fixedNow(tt.today), zap.NewNop())

			progress, percent := progressS.Overview(context.Background())
			assert.Equal(t, tt.wantToday, progress.StudiedToday)
			assert.Equal(t, tt.wantPercent, percent)
			assert.Equal(t, tt.stored.Streak, progress.Streak)
		})
	}
}
