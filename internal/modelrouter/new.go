package modelrouter

// DefaultLongTextThreshold is the text length, in bytes, above which the
// long-text rule routes to the reasoning model. Strictly above: a text of
// exactly this length does not trigger the rule.
const DefaultLongTextThreshold = 8000

// Router selects an OpenRouter model identifier from a TaskType or a
// SelectionContext. It is a pure lookup component: no I/O, no mutation,
// and it cannot fail.
type Router struct {
	catalog           *Catalog
	longTextThreshold int
}

// New creates a Router over the given catalog. A non-positive threshold
// selects DefaultLongTextThreshold.
func New(catalog *Catalog, longTextThreshold int) *Router {
	if longTextThreshold <= 0 {
		longTextThreshold = DefaultLongTextThreshold
	}
	return &Router{
		catalog:           catalog,
		longTextThreshold: longTextThreshold,
	}
}

// Catalog exposes the read-only catalog backing this router.
func (r *Router) Catalog() *Catalog { return r.catalog }

// LongTextThreshold reports the configured long-text boundary.
func (r *Router) LongTextThreshold() int { return r.longTextThreshold }
