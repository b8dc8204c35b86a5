package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRunID(t *testing.T) {
	first := GenerateRunID()
	second := GenerateRunID()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestShortRunID(t *testing.T) {
	assert.Equal(t, "3f2a9c1b", ShortRunID("3f2a9c1b-0000-4000-8000-000000000000"))
	assert.Equal(t, "abc", ShortRunID("abc"))
}
