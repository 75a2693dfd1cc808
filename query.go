package nftmkt

// QueryFunc resolves a read-only query for a single key and returns the
// marshaled entity, or nil when there is nothing stored under the key.
// Reads are side-effect free.
type QueryFunc func(db ReadOnlyKVStore, key []byte) ([]byte, error)

// QueryRouter allows us to register many query handlers
// to different paths and dispatch to the proper one
type QueryRouter struct {
	routes map[string]QueryFunc
}

// NewQueryRouter initializes a QueryRouter
func NewQueryRouter() QueryRouter {
	return QueryRouter{
		routes: make(map[string]QueryFunc),
	}
}

// RegisterAll registers a number of RegisterQuery functions at once
func (r QueryRouter) RegisterAll(qr ...func(QueryRouter)) {
	for _, q := range qr {
		q(r)
	}
}

// Register adds a new query handler under the given path. Duplicate
// registration is a configuration error and panics.
func (r QueryRouter) Register(path string, q QueryFunc) {
	if _, ok := r.routes[path]; ok {
		panic("duplicate query registration: " + path)
	}
	r.routes[path] = q
}

// Handler returns the registered query handler, or nil
func (r QueryRouter) Handler(path string) QueryFunc {
	return r.routes[path]
}
