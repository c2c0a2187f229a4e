// Package variants implements product variant configuration and pricing:
// grouping raw variant rows into attribute groups, tracking a shopper's
// selection, resolving price and stock for it, and turning a completed
// selection into a cart line item.
//
// Everything here is synchronous and free of I/O. A Catalog and its
// Selection belong to a single shopper session and are not safe for
// concurrent mutation.
package variants
