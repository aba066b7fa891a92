package gomap

import (
	"fmt"
	"sync"

	"github.com/jsondoc/go-jsondoc/ir"
)

// Factory constructs a host instance from a node.
type Factory func(node *ir.Node) (any, error)

// Registry maps type discriminators to factories. It replaces
// reflection-based single-argument construction with explicit
// registration: a discriminator names the type, the factory builds it.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register binds a discriminator to a factory. Re-registering a
// discriminator replaces the previous factory.
func (r *Registry) Register(discriminator string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[discriminator] = f
}

// New constructs an instance of the type named by discriminator from node.
func (r *Registry) New(discriminator string, node *ir.Node) (any, error) {
	r.mu.RLock()
	f, ok := r.factories[discriminator]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnmarshalError{
			Discriminator: discriminator,
			Message:       "no factory registered",
		}
	}
	v, err := f(node)
	if err != nil {
		return nil, &UnmarshalError{
			Discriminator: discriminator,
			Message:       fmt.Sprintf("factory: %v", err),
			Err:           err,
		}
	}
	return v, nil
}

// Discriminators returns the registered names, for diagnostics.
func (r *Registry) Discriminators() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.factories))
	for k := range r.factories {
		res = append(res, k)
	}
	return res
}
