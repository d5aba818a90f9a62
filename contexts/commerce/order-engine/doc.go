// Package orderengine owns order placement and listing. Placement is a
// single store transaction: stock checks, deductions and the order rows
// commit together, and inventory rows are locked while checked so stock
// never goes negative.
package orderengine
