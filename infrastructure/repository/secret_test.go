package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGetSecretQuery(t *testing.T) {
	query, args, err := buildGetSecretQuery("META_SYSTEM_USER_ACCESS_TOKEN")
	require.NoError(t, err)

	assert.Equal(t, "SELECT get_encrypted_secret($1)", query)
	assert.Equal(t, []any{"META_SYSTEM_USER_ACCESS_TOKEN"}, args)
}
