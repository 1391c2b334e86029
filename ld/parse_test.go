package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyInput(t *testing.T) {
	tree, err := Parse([]byte(""), nil)
	require.NoError(t, err)
	assert.Nil(t, tree)

	tree, err = Parse([]byte("   \n\t"), nil)
	require.NoError(t, err)
	assert.Nil(t, tree)
}

func TestParse_ValidDocument(t *testing.T) {
	tree, err := Parse([]byte(`{"name": "A", "tags": ["x", "y"]}`), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"name": "A",
		"tags": []interface{}{"x", "y"},
	}, tree)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"name": `), nil)
	require.Error(t, err)

	var target *Error
	require.ErrorAs(t, err, &target)
	assert.Equal(t, ParseKind, target.Kind)
}

func TestParse_MaxDepthExceeded(t *testing.T) {
	opts := &Options{MaxDepth: 1}
	_, err := Parse([]byte(`{"a": {"b": 1}}`), opts)
	require.Error(t, err)

	var target *Error
	require.ErrorAs(t, err, &target)
	assert.Equal(t, ParseKind, target.Kind)
}

func TestParse_WithinMaxDepth(t *testing.T) {
	opts := &Options{MaxDepth: 5}
	tree, err := Parse([]byte(`{"a": {"b": 1}}`), opts)
	require.NoError(t, err)
	assert.NotNil(t, tree)
}
