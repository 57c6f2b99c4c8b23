//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a decoded JSON request body before it is sent.
type Mutation func(body map[string]any)

func Set(key string, value any) Mutation {
	return func(body map[string]any) { body[key] = value }
}

func Drop(key string) Mutation {
	return func(body map[string]any) { delete(body, key) }
}

// Body round-trips a request DTO through JSON so tests can send variants the typed struct cannot express.
func Body(t *testing.T, dto any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, m := range muts {
		if m != nil {
			m(body)
		}
	}
	return body
}
