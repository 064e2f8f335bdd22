// SPDX-License-Identifier: MIT

package dataflow

import (
	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/lvflow/ops"
	"github.com/katalvlaran/lvflow/registry"
)

// Option configures a Graph before creation. Later options override earlier ones.
type Option func(*config)

type config struct {
	name       string
	registry   *registry.Registry
	logger     hclog.Logger
	onEvaluate func(*Node)
}

func defaultConfig() config {
	return config{name: "graph"}
}

// WithName sets the graph name used by Describe and in log lines.
// An empty name is ignored.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithRegistry sets the registry function nodes are resolved against.
// The default is a fresh ops.NewRegistry(). Passing nil has no effect.
func WithRegistry(r *registry.Registry) Option {
	return func(c *config) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithLogger routes wiring and evaluation logs to l, under the sub-logger
// name "dataflow". The default discards everything.
func WithLogger(l hclog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOnEvaluate registers fn to run after every successful evaluation of a
// computation, with the computation's first output node.
// fn runs with the graph locked and must not call back into the Graph.
func WithOnEvaluate(fn func(*Node)) Option {
	return func(c *config) { c.onEvaluate = fn }
}

// resolve fills the defaults that are expensive or stateful to build.
func (c *config) resolve() {
	if c.registry == nil {
		c.registry = ops.NewRegistry()
	}
	if c.logger == nil {
		c.logger = hclog.NewNullLogger()
	}
	c.logger = c.logger.Named("dataflow").With("graph", c.name)
}
