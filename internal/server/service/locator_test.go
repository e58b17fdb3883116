package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/models"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/service"
	repoMocks "github.com/IvanChernomyrdin/go-tabkeeper/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/errors"
)

func TestTabLocator_Locate(t *testing.T) {
	me := models.User{ID: uuid.New()}
	mine := models.Tab{ID: uuid.New(), UserID: me.ID, URL: "https://a.example"}
	foreign := models.Tab{ID: uuid.New(), UserID: uuid.New(), URL: "https://b.example"}
	missing := uuid.New()

	tests := []struct {
		name    string
		rawID   string
		setup   func(r *repoMocks.MockTabsRepo)
		wantErr error
	}{
		{
			name:  "own tab",
			rawID: mine.ID.String(),
			setup: func(r *repoMocks.MockTabsRepo) {
				r.EXPECT().GetByID(gomock.Any(), mine.ID).Return(mine, nil)
			},
		},
		{
			name:  "foreign tab",
			rawID: foreign.ID.String(),
			setup: func(r *repoMocks.MockTabsRepo) {
				r.EXPECT().GetByID(gomock.Any(), foreign.ID).Return(foreign, nil)
			},
			wantErr: serr.ErrForbidden,
		},
		{
			name:  "missing tab",
			rawID: missing.String(),
			setup: func(r *repoMocks.MockTabsRepo) {
				r.EXPECT().GetByID(gomock.Any(), missing).Return(models.Tab{}, serr.ErrNotFound)
			},
			wantErr: serr.ErrNotFound,
		},
		{
			// до хранилища не доходим
			name:    "malformed id",
			rawID:   "not-a-uuid",
			setup:   func(r *repoMocks.MockTabsRepo) {},
			wantErr: serr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repoMocks.NewMockTabsRepo(ctrl)
			tt.setup(repo)

			tab, err := service.NewTabLocator(repo).Locate(context.Background(), me, tt.rawID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, mine, tab)
		})
	}
}
