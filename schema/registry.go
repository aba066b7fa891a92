package schema

import (
	"fmt"
	"sync"

	"github.com/jsondoc/go-jsondoc/ir"
)

// Registry manages named descriptors.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*ir.Node
}

func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]*ir.Node)}
}

// Register stores a descriptor under name.
func (r *Registry) Register(name string, descriptor *ir.Node) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if name == "" {
		return fmt.Errorf("descriptor must have a name")
	}
	if _, exists := r.descriptors[name]; exists {
		return fmt.Errorf("descriptor %q already registered", name)
	}
	r.descriptors[name] = descriptor
	return nil
}

// Get returns the descriptor registered under name, or nil.
func (r *Registry) Get(name string) *ir.Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.descriptors[name]
}

// DescribeAs describes doc and registers the result under name.
func (r *Registry) DescribeAs(name string, doc *ir.Node) (*ir.Node, error) {
	d, err := Describe(doc)
	if err != nil {
		return nil, err
	}
	if err := r.Register(name, d); err != nil {
		return nil, err
	}
	return d, nil
}
