package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProcess(t *testing.T, localContext interface{}) *Context {
	t.Helper()
	ctx, err := NewContext("").Process(localContext)
	require.NoError(t, err)
	return ctx
}

func TestExpand_PlainString_BecomesValueObject(t *testing.T) {
	ctx := mustProcess(t, map[string]interface{}{"name": "http://schema.org/name"})

	result, err := Expand(map[string]interface{}{"name": "A"}, ctx, "")
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"http://schema.org/name": []interface{}{
			map[string]interface{}{"@value": "A"},
		},
	}, result)
}

func TestExpand_UnmappedTermDropped(t *testing.T) {
	ctx := mustProcess(t, map[string]interface{}{"name": "http://schema.org/name"})

	result, err := Expand(map[string]interface{}{
		"name":     "A",
		"unmapped": "gone",
	}, ctx, "")
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"http://schema.org/name": []interface{}{
			map[string]interface{}{"@value": "A"},
		},
	}, result)
}

func TestExpand_NullValueDropped(t *testing.T) {
	ctx := mustProcess(t, map[string]interface{}{"name": "http://schema.org/name"})

	result, err := Expand(map[string]interface{}{
		"name": nil,
	}, ctx, "")
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{}, result)
}

func TestExpand_ArrayFlattensAndDropsNull(t *testing.T) {
	ctx := mustProcess(t, map[string]interface{}{"name": "http://schema.org/name"})

	result, err := Expand([]interface{}{
		map[string]interface{}{"name": "A"},
		nil,
		map[string]interface{}{"name": "B"},
	}, ctx, "")
	require.NoError(t, err)

	assert.Equal(t, []interface{}{
		map[string]interface{}{
			"http://schema.org/name": []interface{}{map[string]interface{}{"@value": "A"}},
		},
		map[string]interface{}{
			"http://schema.org/name": []interface{}{map[string]interface{}{"@value": "B"}},
		},
	}, result)
}

func TestExpand_EmbeddedContextAppliesToDescendants(t *testing.T) {
	ctx := NewContext("")

	result, err := Expand(map[string]interface{}{
		"@context": map[string]interface{}{"name": "http://schema.org/name"},
		"name":     "A",
	}, ctx, "")
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"http://schema.org/name": []interface{}{map[string]interface{}{"@value": "A"}},
	}, result)
}

func TestExpand_IdentifierCoercion(t *testing.T) {
	ctx := mustProcess(t, map[string]interface{}{
		"knows": map[string]interface{}{"@id": "ex:knows", "@type": "@id"},
		"ex":    "http://e/",
	})

	result, err := Expand(map[string]interface{}{"knows": "http://p/bob"}, ctx, "")
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"http://e/knows": []interface{}{map[string]interface{}{"@id": "http://p/bob"}},
	}, result)
}

func TestExpand_TypedLiteral(t *testing.T) {
	ctx := mustProcess(t, map[string]interface{}{
		"age": map[string]interface{}{"@id": "ex:age", "@type": "xsd:int"},
		"ex":  "http://e/",
		"xsd": "http://w/",
	})

	result, err := Expand(map[string]interface{}{"age": 30}, ctx, "")
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"http://e/age": []interface{}{map[string]interface{}{"@value": 30, "@type": "http://w/int"}},
	}, result)
}

func TestExpand_ListContainer(t *testing.T) {
	ctx := mustProcess(t, map[string]interface{}{
		"tags": map[string]interface{}{"@id": "ex:tags", "@container": "@list"},
		"ex":   "http://e/",
	})

	result, err := Expand(map[string]interface{}{"tags": []interface{}{"x", "y"}}, ctx, "")
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"http://e/tags": []interface{}{
			map[string]interface{}{"@list": []interface{}{
				map[string]interface{}{"@value": "x"},
				map[string]interface{}{"@value": "y"},
			}},
		},
	}, result)
}

func TestExpand_SingleTypeNormalizesToArray(t *testing.T) {
	ctx := mustProcess(t, map[string]interface{}{
		"Person": "http://schema.org/Person",
		"name":   "http://schema.org/name",
	})

	result, err := Expand(map[string]interface{}{
		"@type": "Person",
		"name":  "A",
	}, ctx, "")
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"@type": []interface{}{"http://schema.org/Person"},
		"http://schema.org/name": []interface{}{
			map[string]interface{}{"@value": "A"},
		},
	}, result)
}

func TestExpand_ExplicitListOfListsRejected(t *testing.T) {
	ctx := NewContext("")

	_, err := Expand(map[string]interface{}{
		"@list": []interface{}{
			map[string]interface{}{"@list": []interface{}{"x"}},
		},
	}, ctx, "tags")
	require.Error(t, err)

	var target *Error
	require.ErrorAs(t, err, &target)
	assert.Equal(t, SyntaxKind, target.Kind)
}

func TestExpand_DuplicateIDRejected(t *testing.T) {
	// A map in Go can't carry two literal "@id" keys, but a keyword-aliasing
	// term collapsing onto @id can, so exercise the duplicate-detection path
	// directly.
	result := map[string]interface{}{"@id": "http://example.com/a"}
	err := expandID(result, "http://example.com/b")
	require.Error(t, err)
	var target *Error
	require.ErrorAs(t, err, &target)
	assert.Equal(t, SyntaxKind, target.Kind)
}

func TestExpand_ValueObjectWithExtraneousKeyRejected(t *testing.T) {
	ctx := NewContext("")

	_, err := Expand(map[string]interface{}{
		"@value": "A",
		"@id":    "http://example.com/a",
	}, ctx, "")
	require.Error(t, err)

	var target *Error
	require.ErrorAs(t, err, &target)
	assert.Equal(t, SyntaxKind, target.Kind)
}

func TestExpand_OnlySetCollapsesToArray(t *testing.T) {
	ctx := NewContext("")

	result, err := Expand(map[string]interface{}{
		"@set": []interface{}{"x", "y"},
	}, ctx, "")
	require.NoError(t, err)

	assert.Equal(t, []interface{}{
		map[string]interface{}{"@value": "x"},
		map[string]interface{}{"@value": "y"},
	}, result)
}

func TestExpand_OnlyLanguageCollapsesToNull(t *testing.T) {
	ctx := NewContext("")

	result, err := Expand(map[string]interface{}{
		"@language": "en",
	}, ctx, "")
	require.NoError(t, err)
	assert.Nil(t, result)
}
