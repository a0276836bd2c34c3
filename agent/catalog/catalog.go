// Package catalog is the static property lookup backing property-specific
// calls.
package catalog

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
)

// Catalog is an immutable id -> property mapping. Descriptions may be
// enriched once at load time; after New returns nothing mutates.
type Catalog struct {
	byID  map[string]contractx.Property
	order []string
}

// Option customizes catalog loading.
type Option func(*loadOptions)

type loadOptions struct {
	properties []contractx.Property
	generator  contractx.DescriptionGenerator
}

// WithProperties replaces the built-in fixture listings.
func WithProperties(props []contractx.Property) Option {
	return func(o *loadOptions) {
		if len(props) > 0 {
			o.properties = props
		}
	}
}

// WithDescriptionGenerator enriches each listing's description at load time.
// Generation is best-effort: a failure or empty result keeps the original
// text and is never fatal.
func WithDescriptionGenerator(g contractx.DescriptionGenerator) Option {
	return func(o *loadOptions) {
		o.generator = g
	}
}

// New loads the catalog.
func New(ctx context.Context, opts ...Option) *Catalog {
	lo := loadOptions{properties: Fixtures()}
	for _, opt := range opts {
		opt(&lo)
	}

	c := &Catalog{byID: make(map[string]contractx.Property, len(lo.properties))}
	for _, p := range lo.properties {
		if lo.generator != nil {
			if desc, err := lo.generator.GenerateDescription(ctx, p); err != nil {
				log.Warn().Err(err).Str("property_id", p.ID).Msg("description generation failed, keeping original")
			} else if strings.TrimSpace(desc) != "" {
				p.Description = strings.TrimSpace(desc)
			}
		}
		c.byID[p.ID] = p
		c.order = append(c.order, p.ID)
	}

	log.Info().Int("count", len(c.byID)).Msg("property catalog loaded")
	return c
}

// Find returns the property for id, reporting whether it exists.
func (c *Catalog) Find(id string) (contractx.Property, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns the listings in load order.
func (c *Catalog) All() []contractx.Property {
	out := make([]contractx.Property, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// NameFor resolves a property id to its display name, or "General inquiry"
// when the id is empty or unknown. Used by call/appointment reporting.
func (c *Catalog) NameFor(propertyID string) string {
	if propertyID == "" {
		return "General inquiry"
	}
	if p, ok := c.byID[propertyID]; ok {
		return p.Name
	}
	return "General inquiry"
}
