package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplyhub/internal/catalog/domain/entities"
)

func TestProject(t *testing.T) {
	now := time.Now()
	provider := &entities.Provider{
		ID:          "provider-1",
		Name:        "Acme Supplies",
		CountryCode: "BR",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	t.Run("empty parameter returns payload untouched", func(t *testing.T) {
		assert.Equal(t, provider, project(provider, ""))
	})

	t.Run("object narrowed to requested fields", func(t *testing.T) {
		result, ok := project(provider, "id,name").(map[string]interface{})
		require.True(t, ok)
		assert.Len(t, result, 2)
		assert.Equal(t, "provider-1", result["id"])
		assert.Equal(t, "Acme Supplies", result["name"])
	})

	t.Run("unknown field names are ignored", func(t *testing.T) {
		result, ok := project(provider, "id,nonexistent").(map[string]interface{})
		require.True(t, ok)
		assert.Len(t, result, 1)
		assert.Equal(t, "provider-1", result["id"])
	})

	t.Run("selection works on the serialized names", func(t *testing.T) {
		result, ok := project(provider, "country_code").(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "BR", result["country_code"])
	})

	t.Run("list payloads narrow every element", func(t *testing.T) {
		providers := []*entities.Provider{provider, provider}
		result, ok := project(providers, "name").([]map[string]interface{})
		require.True(t, ok)
		require.Len(t, result, 2)
		for _, item := range result {
			assert.Len(t, item, 1)
			assert.Equal(t, "Acme Supplies", item["name"])
		}
	})

	t.Run("whitespace and empty entries are dropped", func(t *testing.T) {
		result, ok := project(provider, " id , ,name ").(map[string]interface{})
		require.True(t, ok)
		assert.Len(t, result, 2)
	})

	t.Run("only separators behaves like no selection", func(t *testing.T) {
		assert.Equal(t, provider, project(provider, " , ,"))
	})
}
