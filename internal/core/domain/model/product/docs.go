// Package product contains the stock-keeping aggregate referenced by order
// line items. The catalog collaborator owns product descriptions and current
// prices; this aggregate owns only the local stock counter, which may be
// decremented solely inside a dispatch transaction.
package product
