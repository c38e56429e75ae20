package consul

import (
	"context"
	"errors"
	"net/http"

	"github.com/kbukum/consulkit/httpclient"
	"github.com/kbukum/consulkit/logger"
)

// Consul endpoint path prefixes. Operations compose paths from these
// rather than ad hoc concatenation.
const (
	pathCatalogService    = "/v1/catalog/service/"
	pathCatalogRegister   = "/v1/catalog/register"
	pathCatalogDeregister = "/v1/catalog/deregister/"
	pathHealthState       = "/v1/health/state/"
	pathKV                = "/v1/kv/"
)

// tokenHeader is the header Consul reads the ACL token from.
const tokenHeader = "X-Consul-Token"

// Client talks to a Consul agent over its HTTP API. All fields are
// read-only after New; the client is safe for concurrent use.
type Client struct {
	http *httpclient.Client
	cfg  Config
	log  *logger.Logger
}

// New creates a Client from the given Config. No connectivity check is
// performed; the first operation reveals an unreachable agent.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpCfg := httpclient.Config{
		BaseURL: cfg.baseURL(),
		Timeout: cfg.Timeout,
		TLS:     cfg.TLS,
	}
	if cfg.Token != "" {
		httpCfg.Auth = httpclient.HeaderTokenAuth(tokenHeader, cfg.Token)
	}

	hc, err := httpclient.New(httpCfg)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		http: hc,
		cfg:  cfg,
		log:  log.WithComponent("consul"),
	}, nil
}

// Service returns the catalog entries for the named service.
func (c *Client) Service(ctx context.Context, name string) ([]CatalogService, error) {
	const op = "service"
	body, err := c.read(ctx, op, pathCatalogService+name, catalogErrorMessage)
	if err != nil {
		return nil, err
	}
	services, derr := decodeCatalogServices(body)
	if derr != nil {
		return nil, c.fail(op, newDecodeError(op, derr))
	}
	c.log.Debug("catalog service queried", logger.Fields(
		logger.FieldService, name, "instances", len(services)))
	return services, nil
}

// ChecksInState returns all health checks in the given state. Use the
// Health* constants; HealthAny matches every state.
func (c *Client) ChecksInState(ctx context.Context, state string) ([]HealthCheck, error) {
	const op = "checks-in-state"
	body, err := c.read(ctx, op, pathHealthState+state, wrappedErrorMessage)
	if err != nil {
		return nil, err
	}
	checks, derr := decodeHealthChecks(body)
	if derr != nil {
		return nil, c.fail(op, newDecodeError(op, derr))
	}
	c.log.Debug("health state queried", logger.Fields(
		logger.FieldState, state, "checks", len(checks)))
	return checks, nil
}

// Key reads the KV entries stored under the given key path. Values are
// returned base64-decoded.
func (c *Client) Key(ctx context.Context, key string) ([]Value, error) {
	const op = "key"
	body, err := c.read(ctx, op, pathKV+key, wrappedErrorMessage)
	if err != nil {
		return nil, err
	}
	values, derr := decodeValues(body)
	if derr != nil {
		return nil, c.fail(op, newDecodeError(op, derr))
	}
	c.log.Debug("key read", logger.Fields(logger.FieldKey, key, "entries", len(values)))
	return values, nil
}

// RegisterService registers a service instance through the catalog.
func (c *Client) RegisterService(ctx context.Context, reg *CatalogRegistration) error {
	const op = "register-service"
	if err := validateStruct(reg); err != nil {
		return c.fail(op, newInvalidError(op, err))
	}
	if err := c.write(ctx, op, http.MethodPut, pathCatalogRegister, reg); err != nil {
		return err
	}
	c.log.Info("service registered", logger.Fields(
		logger.FieldService, reg.Service.Service, "node", reg.Node))
	return nil
}

// RegisterCheck registers a health check through the catalog. Same
// endpoint as RegisterService, different payload shape.
func (c *Client) RegisterCheck(ctx context.Context, reg *CheckRegistration) error {
	const op = "register-check"
	if err := validateStruct(reg); err != nil {
		return c.fail(op, newInvalidError(op, err))
	}
	if err := c.write(ctx, op, http.MethodPut, pathCatalogRegister, reg); err != nil {
		return err
	}
	c.log.Info("check registered", logger.Fields(
		logger.FieldCheck, reg.Check.Name, "node", reg.Node))
	return nil
}

// CreateKey stores value under the given key path. The value is sent as
// the raw request body, matching Consul's KV PUT contract.
func (c *Client) CreateKey(ctx context.Context, key, value string) error {
	const op = "create-key"
	if err := c.write(ctx, op, http.MethodPut, pathKV+key, value); err != nil {
		return err
	}
	c.log.Info("key created", logger.Fields(logger.FieldKey, key))
	return nil
}

// DeregisterService removes a service instance from the catalog.
func (c *Client) DeregisterService(ctx context.Context, serviceID string) error {
	const op = "deregister-service"
	if err := c.write(ctx, op, http.MethodPut, pathCatalogDeregister+serviceID, nil); err != nil {
		return err
	}
	c.log.Info("service deregistered", logger.Fields(logger.FieldService, serviceID))
	return nil
}

// DeregisterCheck removes a health check from the catalog.
func (c *Client) DeregisterCheck(ctx context.Context, checkID string) error {
	const op = "deregister-check"
	if err := c.write(ctx, op, http.MethodPut, pathCatalogDeregister+checkID, nil); err != nil {
		return err
	}
	c.log.Info("check deregistered", logger.Fields(logger.FieldCheck, checkID))
	return nil
}

// DeleteKey removes the KV entry stored under the given key path.
func (c *Client) DeleteKey(ctx context.Context, key string) error {
	const op = "delete-key"
	if err := c.write(ctx, op, http.MethodDelete, pathKV+key, nil); err != nil {
		return err
	}
	c.log.Info("key deleted", logger.Fields(logger.FieldKey, key))
	return nil
}

// read executes a GET and returns the raw 200 body. Non-success statuses
// have their message extracted with the endpoint's extractor; transport
// failures are surfaced verbatim. Always returns a *Error on failure.
func (c *Client) read(ctx context.Context, op, path string, extract messageExtractor) ([]byte, error) {
	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  c.queryParams(),
	})
	if err != nil {
		return nil, c.fail(op, c.classify(op, resp, err, extract))
	}
	return resp.Body, nil
}

// write executes a mutation (PUT or DELETE). A 200 status means success;
// any other status wraps the response body text verbatim as the message.
func (c *Client) write(ctx context.Context, op, method, path string, body any) error {
	_, err := c.http.Do(ctx, httpclient.Request{
		Method: method,
		Path:   path,
		Query:  c.queryParams(),
		Body:   body,
	})
	if err != nil {
		if herr, ok := asHTTPError(err); ok && herr.Code == httpclient.ErrCodeStatus {
			return c.fail(op, newStatusError(op, herr.StatusCode, rawErrorMessage(herr.Body), err))
		}
		return c.fail(op, newTransportError(op, err, transportMessage(err)))
	}
	return nil
}

// classify maps a transport-layer error into the unified *Error shape.
func (c *Client) classify(op string, resp *httpclient.Response, err error, extract messageExtractor) *Error {
	if herr, ok := asHTTPError(err); ok && herr.Code == httpclient.ErrCodeStatus {
		var body []byte
		if resp != nil {
			body = resp.Body
		}
		return newStatusError(op, herr.StatusCode, extract(body), err)
	}
	return newTransportError(op, err, transportMessage(err))
}

// fail logs and returns the error, keeping log fields uniform across
// operations.
func (c *Client) fail(op string, err *Error) *Error {
	c.log.Error("operation failed", logger.Fields(
		logger.FieldOperation, op,
		logger.FieldError, err.Message,
		logger.FieldStatus, err.StatusCode))
	return err
}

// queryParams returns the query parameters shared by every request.
func (c *Client) queryParams() map[string]string {
	if c.cfg.Datacenter == "" {
		return nil
	}
	return map[string]string{"dc": c.cfg.Datacenter}
}

// asHTTPError extracts the transport layer's classified error.
func asHTTPError(err error) (*httpclient.Error, bool) {
	var herr *httpclient.Error
	ok := errors.As(err, &herr)
	return herr, ok
}

// transportMessage surfaces the underlying transport error text without
// the transport layer's own prefix.
func transportMessage(err error) string {
	if herr, ok := asHTTPError(err); ok {
		return herr.Message
	}
	return err.Error()
}
