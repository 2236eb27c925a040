package relation

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("valid rate is stored", func(t *testing.T) {
		rate := 4
		like := true
		p := Patch{Like: &like, Rate: &rate}

		mockRepo.EXPECT().
			Upsert(gomock.Any(), int64(1), int64(7), p).
			Return(Relation{ID: 11, UserID: 1, BookID: 7, Like: true, Rate: &rate}, nil)

		rel, err := service.Apply(context.Background(), 1, 7, p)
		require.NoError(t, err)
		assert.Equal(t, int64(11), rel.ID)
		assert.Equal(t, 4, *rel.Rate)
	})

	t.Run("rate below range is rejected before storage", func(t *testing.T) {
		rate := 0
		_, err := service.Apply(context.Background(), 1, 7, Patch{Rate: &rate})
		assert.ErrorIs(t, err, ErrInvalidRate)
	})

	t.Run("rate above range is rejected before storage", func(t *testing.T) {
		rate := 6
		_, err := service.Apply(context.Background(), 1, 7, Patch{Rate: &rate})
		assert.ErrorIs(t, err, ErrInvalidRate)
	})

	t.Run("nil rate skips the bounds check", func(t *testing.T) {
		bookmark := true
		p := Patch{InBookmarks: &bookmark}

		mockRepo.EXPECT().
			Upsert(gomock.Any(), int64(2), int64(7), p).
			Return(Relation{ID: 12, UserID: 2, BookID: 7, InBookmarks: true}, nil)

		rel, err := service.Apply(context.Background(), 2, 7, p)
		require.NoError(t, err)
		assert.True(t, rel.InBookmarks)
		assert.Nil(t, rel.Rate)
	})
}
