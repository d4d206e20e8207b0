package health

import "context"

// CachePinger checks result cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// InventorySizer reports the number of stored ads.
type InventorySizer interface {
	Len() int
}
