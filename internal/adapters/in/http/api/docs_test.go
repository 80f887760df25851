package api_test

import (
	"encoding/json"
	"testing"

	"restaurant/internal/adapters/in/http/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load(t.Context())

	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	for _, path := range []string{
		"/orders",
		"/orders/active",
		"/orders/{orderId}/items",
		"/orders/{orderId}/items/{itemId}",
		"/orders/{orderId}/items/{itemId}/quantity",
		"/orders/{orderId}/items/{itemId}/serve",
		"/orders/{orderId}/payment",
		"/kitchen/queue",
		"/kitchen/dashboard",
		"/kitchen/orders/{orderId}/items/{itemId}/status",
		"/menu/{menuItemId}/availability",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestRegister(t *testing.T) {
	doc, err := api.Load(t.Context())
	require.NoError(t, err)

	require.NoError(t, api.Register(doc))
	require.NoError(t, api.Register(doc))

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var published map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &published))
	assert.Equal(t, "3.0.3", published["openapi"])
}
