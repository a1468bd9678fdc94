package legacy

import (
	"sync"

	"go.uber.org/zap"

	ordersync "github.com/ordersync/backend/internal/domain/sync"
)

// ClientPool caches one Client per normalized endpoint URL so repeated calls
// for the same shop reuse one connection context. The pool is owned by the
// caller and constructed once per process; it is safe for concurrent use.
type ClientPool struct {
	logger *zap.Logger

	mu      sync.RWMutex // Protects clients map
	clients map[string]*Client
}

// NewClientPool creates an empty client pool
func NewClientPool(logger *zap.Logger) *ClientPool {
	return &ClientPool{
		logger:  logger,
		clients: make(map[string]*Client),
	}
}

// Get returns the cached client for a shop connection, creating it on first
// use. Clients are keyed by the normalized endpoint URL, so two connections
// pointing at the same service share one client.
func (p *ClientPool) Get(conn *ordersync.ShopConnection) (*Client, error) {
	endpoint, err := NormalizeEndpoint(conn.EndpointURL)
	if err != nil {
		return nil, err
	}

	p.mu.RLock()
	client, ok := p.clients[endpoint]
	p.mu.RUnlock()
	if ok {
		return client, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if client, ok := p.clients[endpoint]; ok {
		return client, nil
	}
	client = NewClient(endpoint, conn.AuthCode, p.logger)
	p.clients[endpoint] = client
	return client, nil
}

// Source implements the RemoteSourceProvider port
func (p *ClientPool) Source(conn *ordersync.ShopConnection) (ordersync.RemoteOrderSource, error) {
	return p.Get(conn)
}

// Size returns the number of cached clients
func (p *ClientPool) Size() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.clients)
}

// Ensure ClientPool implements RemoteSourceProvider
var _ ordersync.RemoteSourceProvider = (*ClientPool)(nil)
