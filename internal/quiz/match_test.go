package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		user    string
		correct string
		want    bool
	}{
		{
			name:    "exact match",
			user:    "casa",
			correct: "casa",
			want:    true,
		},
		{
			name:    "missing diacritic accepted",
			user:    "cafe",
			correct: "café",
			want:    true,
		},
		{
			name:    "extra diacritic accepted",
			user:    "perché",
			correct: "perche",
			want:    true,
		},
		{
			name:    "prefix within two runes",
			user:    "cas",
			correct: "casa",
			want:    true,
		},
		{
			name:    "substring two runes short",
			user:    "ca",
			correct: "casa",
			want:    true,
		},
		{
			name:    "substring three runes short rejected",
			user:    "c",
			correct: "casa",
			want:    false,
		},
		{
			name:    "answer longer than correct within two runes",
			user:    "casa!",
			correct: "casa",
			want:    true,
		},
		{
			name:    "answer containing correct but too long",
			user:    "la casa",
			correct: "casa",
			want:    false,
		},
		{
			name:    "unrelated answer",
			user:    "x",
			correct: "casa",
			want:    false,
		},
		{
			name:    "empty answer against nonempty correct",
			user:    "",
			correct: "casa",
			want:    false,
		},
		{
			name:    "both empty",
			user:    "",
			correct: "",
			want:    true,
		},
		{
			name:    "multibyte length counted in runes",
			user:    "băia",
			correct: "băiat",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Match(tt.user, tt.correct))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "casa", Normalize("  Casa "))
	assert.Equal(t, "până", Normalize("PÂNĂ"))
	assert.Equal(t, "", Normalize("   "))
}
