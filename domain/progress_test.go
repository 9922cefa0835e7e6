package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProgress(t *testing.T) {
	progress := DefaultProgress()

	require.Len(t, progress.Skills, len(SkillNames))
	for _, name := range SkillNames {
		assert.Equal(t, DefaultSkillLevel, progress.Skills[name])
	}
	assert.Zero(t, progress.Gold)
	assert.Nil(t, progress.LastTraining)
}

func TestCloneProgress(t *testing.T) {
	now := time.Now()
	original := Progress{
		Skills:       map[string]int{"Maagia": 4},
		Gold:         120,
		LastTraining: &now,
	}

	clone := CloneProgress(original)
	clone.Skills["Maagia"] = 99
	*clone.LastTraining = now.Add(time.Hour)
	clone.Gold = 0

	assert.Equal(t, 4, original.Skills["Maagia"])
	assert.Equal(t, 120, original.Gold)
	assert.True(t, original.LastTraining.Equal(now))
}

func TestNormalizeProgress(t *testing.T) {
	t.Run("Missing Skills Defaulted", func(t *testing.T) {
		normalized := NormalizeProgress(Progress{Skills: map[string]int{"Maagia": 7}})

		assert.Equal(t, 7, normalized.Skills["Maagia"])
		assert.Equal(t, DefaultSkillLevel, normalized.Skills["Võitlus"])
		assert.Equal(t, DefaultSkillLevel, normalized.Skills["Kogumine"])
		assert.Equal(t, DefaultSkillLevel, normalized.Skills["Meisterlikkus"])
	})

	t.Run("Unknown Skills Dropped", func(t *testing.T) {
		normalized := NormalizeProgress(Progress{Skills: map[string]int{"Kalapüük": 5}})

		_, ok := normalized.Skills["Kalapüük"]
		assert.False(t, ok)
		assert.Len(t, normalized.Skills, len(SkillNames))
	})

	t.Run("Empty Progress", func(t *testing.T) {
		normalized := NormalizeProgress(Progress{})
		assert.Equal(t, DefaultProgress(), normalized)
	})
}
