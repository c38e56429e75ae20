// Package httpclient provides the HTTP transport layer for consulkit.
//
// The Client handles URL resolution, header and auth application, body
// encoding, and uniform error classification. Transport-level failures
// (connection refused, DNS, timeout) and non-success status codes are
// both surfaced as *Error so callers can classify failures with the
// Is* helpers or errors.As.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "http://localhost:8500",
//	    Timeout: 30 * time.Second,
//	    Auth:    httpclient.HeaderTokenAuth("X-Consul-Token", "my-token"),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/v1/catalog/service/web",
//	})
package httpclient
