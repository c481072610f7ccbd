package inventory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jhoicas/tienda-inventario/internal/domain/ledger"
)

const defaultCacheSize = 256

type cacheKey struct {
	user    uuid.UUID
	product int64
}

// SessionCache guarda el kardex agrupado por día de cada (usuario, producto) abierto en
// la sesión. Es acotado (LRU) y cada entrada expira tras ttl.
// Seguro para uso concurrente.
//
// Cada producto lleva una generación que sube en cada InvalidateProduct; un kardex
// leído antes de la invalidación no se guarda (ver PutIfCurrent).
type SessionCache struct {
	lru *expirable.LRU[cacheKey, []ledger.DayGroup]

	mu   sync.Mutex
	gens map[int64]uint64
}

// NewSessionCache crea la caché. size <= 0 usa un tamaño por defecto.
func NewSessionCache(size int, ttl time.Duration) *SessionCache {
	if size <= 0 {
		size = defaultCacheSize
	}
	return &SessionCache{
		lru:  expirable.NewLRU[cacheKey, []ledger.DayGroup](size, nil, ttl),
		gens: make(map[int64]uint64),
	}
}

// Get devuelve el kardex del producto para el usuario, si está en caché.
func (c *SessionCache) Get(userID uuid.UUID, productID int64) ([]ledger.DayGroup, bool) {
	return c.lru.Get(cacheKey{user: userID, product: productID})
}

// Put guarda el kardex del producto para el usuario.
func (c *SessionCache) Put(userID uuid.UUID, productID int64, groups []ledger.DayGroup) {
	c.lru.Add(cacheKey{user: userID, product: productID}, groups)
}

// Generation devuelve la generación actual del producto. Se lee antes de consultar la base.
func (c *SessionCache) Generation(productID int64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[productID]
}

// PutIfCurrent guarda el kardex solo si el producto no se invalidó desde gen.
// Devuelve false si el resultado quedó obsoleto y no se guardó.
func (c *SessionCache) PutIfCurrent(userID uuid.UUID, productID int64, gen uint64, groups []ledger.DayGroup) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[productID] != gen {
		return false
	}
	c.lru.Add(cacheKey{user: userID, product: productID}, groups)
	return true
}

// InvalidateSession descarta todos los kardex del usuario. Devuelve cuántos se descartaron.
func (c *SessionCache) InvalidateSession(userID uuid.UUID) int {
	n := 0
	for _, k := range c.lru.Keys() {
		if k.user == userID && c.lru.Remove(k) {
			n++
		}
	}
	return n
}

// InvalidateProduct descarta el kardex del producto en todas las sesiones.
func (c *SessionCache) InvalidateProduct(productID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[productID]++
	n := 0
	for _, k := range c.lru.Keys() {
		if k.product == productID && c.lru.Remove(k) {
			n++
		}
	}
	return n
}

// Len cantidad de kardex en caché.
func (c *SessionCache) Len() int {
	return c.lru.Len()
}
