package service

import (
	"context"
	"testing"
	"time"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
	mock_service "github.com/dragosdragos935/Italia-Word-Quiz/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTheoryServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *TheoryS {
	t.Helper()

	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	return NewTheoryService(repo, zap.NewNop())
}

func TestTheoryS_CreateMaterial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		title       string
		description string
		f           func(*mock_service.MockRepositoryI)
		wantErr     bool
	}{
		{
			name:        "success",
			title:       " Present tense ",
			description: " Conjugation of -are verbs ",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().LoadTheory(gomock.Any()).Return([]models.TheoryMaterial{}, nil)
				mri.EXPECT().SaveTheory(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name:        "error: blank title",
			title:       "   ",
			description: "something",
			wantErr:     true,
		},
		{
			name:        "error: blank description",
			title:       "Present tense",
			description: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			theoryS := newTheoryServiceMock(t, ctrl, tt.f)

			material, err := theoryS.CreateMaterial(context.Background(), tt.title, "it", tt.description)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, material.ID)
			assert.Equal(t, "Present tense", material.Title)
			assert.Equal(t, "Conjugation of -are verbs", material.Description)
		})
	}
}

func TestTheoryS_Materials_sortedRecentFirst(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	theoryS := newTheoryServiceMock(t, ctrl, func(mri *mock_service.MockRepositoryI) {
		mri.EXPECT().LoadTheory(gomock.Any()).Return([]models.TheoryMaterial{
			{ID: 1, Title: "Articles", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Title: "Present tense", CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)
	})

	materials, err := theoryS.Materials(context.Background())
	require.NoError(t, err)
	require.Len(t, materials, 2)
	assert.Equal(t, int64(2), materials[0].ID)
}

func TestTheoryS_DeleteMaterial(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	theoryS := newTheoryServiceMock(t, ctrl, func(mri *mock_service.MockRepositoryI) {
		mri.EXPECT().LoadTheory(gomock.Any()).Return([]models.TheoryMaterial{
			{ID: 1, Title: "Articles"},
		}, nil)
		mri.EXPECT().SaveTheory(gomock.Any(), gomock.Any()).Return(nil)
	})

	require.NoError(t, theoryS.DeleteMaterial(context.Background(), 1))
	require.Error(t, theoryS.DeleteMaterial(context.Background(), 99))
}
