package main

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpenAPIDocument keeps the shipped API document valid and in sync with
// the routes the server actually mounts.
func TestOpenAPIDocument(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile("../../public/docs/v1/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	assert.Equal(t, "HellMap API", doc.Info.Title)

	for _, path := range []string{
		"/api/auth",
		"/api/auth/google",
		"/api/auth/kakao",
		"/api/auth/signup",
		"/api/reports",
		"/api/reports/{id}",
		"/api/reports/{id}/likes",
		"/api/reports/regions",
		"/api/reports/markers",
		"/api/feedbacks",
		"/api/feedbacks/{id}",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "path %s missing from the API document", path)
	}

	envelope := doc.Components.Schemas["Envelope"]
	require.NotNil(t, envelope)
	for _, field := range []string{"timestamp", "status", "success", "data"} {
		assert.Contains(t, envelope.Value.Properties, field)
	}

	security := doc.Components.SecuritySchemes["bearerAuth"]
	require.NotNil(t, security)
	assert.Equal(t, "http", security.Value.Type)
	assert.Equal(t, "bearer", security.Value.Scheme)
}
