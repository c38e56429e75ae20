package consul

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// decodeCatalogServices converts the /v1/catalog/service response array
// into typed entries. Either the whole array decodes or an error is
// returned; there is no element-level recovery.
func decodeCatalogServices(body []byte) ([]CatalogService, error) {
	var services []CatalogService
	if err := json.Unmarshal(body, &services); err != nil {
		return nil, fmt.Errorf("decode catalog services: %w", err)
	}
	return services, nil
}

// decodeHealthChecks converts the /v1/health/state response array into
// typed entries.
func decodeHealthChecks(body []byte) ([]HealthCheck, error) {
	var checks []HealthCheck
	if err := json.Unmarshal(body, &checks); err != nil {
		return nil, fmt.Errorf("decode health checks: %w", err)
	}
	return checks, nil
}

// kvPair is the wire shape of one /v1/kv entry. Consul base64-encodes
// the Value field.
type kvPair struct {
	Key         string `json:"Key"`
	Value       string `json:"Value"`
	Flags       uint64 `json:"Flags"`
	LockIndex   uint64 `json:"LockIndex"`
	Session     string `json:"Session"`
	CreateIndex uint64 `json:"CreateIndex"`
	ModifyIndex uint64 `json:"ModifyIndex"`
}

// decodeValues converts the /v1/kv response array into typed entries,
// decoding each base64 Value field into a plain string.
func decodeValues(body []byte) ([]Value, error) {
	var pairs []kvPair
	if err := json.Unmarshal(body, &pairs); err != nil {
		return nil, fmt.Errorf("decode kv pairs: %w", err)
	}

	values := make([]Value, 0, len(pairs))
	for _, p := range pairs {
		decoded, err := base64.StdEncoding.DecodeString(p.Value)
		if err != nil {
			return nil, fmt.Errorf("decode kv value for %q: %w", p.Key, err)
		}
		values = append(values, Value{
			Key:         p.Key,
			Value:       string(decoded),
			Flags:       p.Flags,
			LockIndex:   p.LockIndex,
			Session:     p.Session,
			CreateIndex: p.CreateIndex,
			ModifyIndex: p.ModifyIndex,
		})
	}
	return values, nil
}

// messageExtractor pulls a human-readable error message out of a
// non-success response body. Consul's error payload shape differs by
// endpoint family, so each operation picks the extractor matching its
// endpoint.
type messageExtractor func(body []byte) string

// catalogErrorMessage extracts errors[0].message, the shape the catalog
// endpoint returns. Falls back to the raw body text.
func catalogErrorMessage(body []byte) string {
	var payload struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Errors) > 0 {
		return payload.Errors[0].Message
	}
	return rawErrorMessage(body)
}

// wrappedErrorMessage extracts error.message, the shape the health and KV
// endpoints return. Falls back to the raw body text.
func wrappedErrorMessage(body []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return rawErrorMessage(body)
}

// rawErrorMessage returns the response body verbatim, used for mutation
// endpoints where Consul answers with plain text.
func rawErrorMessage(body []byte) string {
	return string(body)
}
