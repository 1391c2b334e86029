package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword("@context"))
	assert.True(t, IsKeyword("@list"))
	assert.False(t, IsKeyword("name"))
}

func TestArrayify(t *testing.T) {
	assert.Equal(t, []interface{}{"a"}, Arrayify("a"))
	assert.Equal(t, []interface{}{"a", "b"}, Arrayify([]interface{}{"a", "b"}))
}

func TestIsValueSetListIdentifierObject(t *testing.T) {
	assert.True(t, IsValueObject(map[string]interface{}{"@value": "a"}))
	assert.False(t, IsValueObject(map[string]interface{}{"@id": "a"}))

	assert.True(t, IsListObject(map[string]interface{}{"@list": []interface{}{}}))
	assert.True(t, IsSetObject(map[string]interface{}{"@set": []interface{}{}}))

	assert.True(t, IsIdentifierObject(map[string]interface{}{"@id": "a"}))
	assert.False(t, IsIdentifierObject(map[string]interface{}{"@id": "a", "@type": "b"}))
}

func TestMergeIntoProperty(t *testing.T) {
	obj := map[string]interface{}{}
	mergeIntoProperty(obj, "k", "a")
	mergeIntoProperty(obj, "k", "b")
	assert.Equal(t, []interface{}{"a", "b"}, obj["k"])
}

func TestSortShortestLeast(t *testing.T) {
	terms := []string{"name", "s", "schema", "id"}
	sortShortestLeast(terms)
	assert.Equal(t, []string{"s", "id", "name", "schema"}, terms)
}

func TestSplitPrefix(t *testing.T) {
	prefix, suffix, ok := splitPrefix("schema:name")
	assert.True(t, ok)
	assert.Equal(t, "schema", prefix)
	assert.Equal(t, "name", suffix)

	_, _, ok = splitPrefix("http://schema.org/name")
	assert.False(t, ok)

	_, _, ok = splitPrefix("_:b0")
	assert.False(t, ok)

	_, _, ok = splitPrefix("noprefix")
	assert.False(t, ok)
}

func TestIsAbsoluteIRIAndBlankNodeLabel(t *testing.T) {
	assert.True(t, isAbsoluteIRI("http://schema.org/name"))
	assert.False(t, isAbsoluteIRI("schema:name"))
	assert.True(t, isBlankNodeLabel("_:b0"))
	assert.False(t, isBlankNodeLabel("b0"))
}
