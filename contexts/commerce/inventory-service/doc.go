// Package inventoryservice owns the per-unit product catalog: item CRUD,
// role-scoped listing and the stock counters the dashboard reads.
package inventoryservice
