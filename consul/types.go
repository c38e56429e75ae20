package consul

// Health check states tracked by Consul. HealthAny matches every state
// when querying /v1/health/state.
const (
	HealthAny      = "any"
	HealthPassing  = "passing"
	HealthWarning  = "warning"
	HealthCritical = "critical"
)

// CatalogService is one service instance from /v1/catalog/service/<name>.
// Field names follow Consul's catalog schema.
type CatalogService struct {
	ID             string            `json:"ID"`
	Node           string            `json:"Node"`
	Address        string            `json:"Address"`
	Datacenter     string            `json:"Datacenter"`
	ServiceID      string            `json:"ServiceID"`
	ServiceName    string            `json:"ServiceName"`
	ServiceAddress string            `json:"ServiceAddress"`
	ServicePort    int               `json:"ServicePort"`
	ServiceTags    []string          `json:"ServiceTags"`
	ServiceMeta    map[string]string `json:"ServiceMeta"`
	CreateIndex    uint64            `json:"CreateIndex"`
	ModifyIndex    uint64            `json:"ModifyIndex"`
}

// HealthCheck is one check entry from /v1/health/state/<state>.
type HealthCheck struct {
	Node        string   `json:"Node"`
	CheckID     string   `json:"CheckID"`
	Name        string   `json:"Name"`
	Status      string   `json:"Status"`
	Notes       string   `json:"Notes"`
	Output      string   `json:"Output"`
	ServiceID   string   `json:"ServiceID"`
	ServiceName string   `json:"ServiceName"`
	ServiceTags []string `json:"ServiceTags"`
}

// Value is one KV entry from /v1/kv/<key>. Value holds the plain string
// content; the base64 wire encoding is decoded during conversion.
type Value struct {
	Key         string
	Value       string
	Flags       uint64
	LockIndex   uint64
	Session     string
	CreateIndex uint64
	ModifyIndex uint64
}

// AgentService describes the service portion of a catalog registration.
type AgentService struct {
	ID      string            `json:"ID,omitempty"`
	Service string            `json:"Service" validate:"required"`
	Address string            `json:"Address,omitempty"`
	Port    int               `json:"Port,omitempty" validate:"gte=0,lte=65535"`
	Tags    []string          `json:"Tags,omitempty"`
	Meta    map[string]string `json:"Meta,omitempty"`
}

// AgentCheck describes the check portion of a catalog registration.
type AgentCheck struct {
	CheckID   string `json:"CheckID,omitempty"`
	Name      string `json:"Name" validate:"required"`
	Status    string `json:"Status,omitempty" validate:"omitempty,oneof=passing warning critical"`
	Notes     string `json:"Notes,omitempty"`
	ServiceID string `json:"ServiceID,omitempty"`
}

// CatalogRegistration is the PUT body for registering a service with
// /v1/catalog/register.
type CatalogRegistration struct {
	Node       string            `json:"Node" validate:"required"`
	Address    string            `json:"Address" validate:"required"`
	Datacenter string            `json:"Datacenter,omitempty"`
	Service    *AgentService     `json:"Service" validate:"required"`
	NodeMeta   map[string]string `json:"NodeMeta,omitempty"`
}

// CheckRegistration is the PUT body for registering a check with
// /v1/catalog/register. Same endpoint as CatalogRegistration, different
// payload shape.
type CheckRegistration struct {
	Node       string      `json:"Node" validate:"required"`
	Address    string      `json:"Address" validate:"required"`
	Datacenter string      `json:"Datacenter,omitempty"`
	Check      *AgentCheck `json:"Check" validate:"required"`
}
