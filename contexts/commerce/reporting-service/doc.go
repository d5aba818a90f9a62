// Package reportingservice serves the financial report reads: sales totals,
// inventory valuation, revenue by product, top customers and monthly
// buckets, each scoped to what the caller may see.
package reportingservice
