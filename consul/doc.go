// Package consul is a typed client for Consul's HTTP API v1.
//
// The Client exposes the service catalog, health-state queries, and the KV
// store as plain function calls. Every operation follows the same pipeline:
// compose the endpoint path, attach the ACL token header when configured,
// send the request, and normalize any failure — transport, payload decoding,
// or a non-success status — into a single *Error value.
//
//	client, err := consul.New(consul.Config{Address: "localhost:8500"})
//	if err != nil {
//	    return err
//	}
//
//	services, err := client.Service(ctx, "web")
//	if err != nil {
//	    var cerr *consul.Error
//	    if errors.As(err, &cerr) {
//	        log.Printf("consul failed: %s", cerr.Message)
//	    }
//	    return err
//	}
//
// The client holds no mutable state after construction and is safe for
// concurrent use. Each call is independent; there is no caching, retrying,
// or blocking-query support.
package consul
