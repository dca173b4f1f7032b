// Package recipient contains the Recipient aggregate: who receives an order
// and where.
package recipient
