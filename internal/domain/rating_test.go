package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		score   int
		wantErr bool
	}{
		{name: "minimum score", score: 1, wantErr: false},
		{name: "maximum score", score: 10, wantErr: false},
		{name: "middle score", score: 7, wantErr: false},
		{name: "zero", score: 0, wantErr: true},
		{name: "negative", score: -3, wantErr: true},
		{name: "above maximum", score: 11, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateScore(tt.score)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrScoreOutOfRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRatingValidate(t *testing.T) {
	t.Parallel()

	valid := Rating{AnimeID: 1, UserID: uuid.New(), Score: 8}
	assert.NoError(t, valid.Validate())

	noAnime := valid
	noAnime.AnimeID = 0
	assert.ErrorIs(t, noAnime.Validate(), ErrInvalidID)

	noUser := valid
	noUser.UserID = uuid.Nil
	assert.ErrorIs(t, noUser.Validate(), ErrInvalidID)

	badScore := valid
	badScore.Score = 11
	assert.ErrorIs(t, badScore.Validate(), ErrScoreOutOfRange)
}
