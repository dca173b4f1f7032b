// Package deliverer contains the Deliverer aggregate: the person an order is
// assigned to and who is notified when that order is canceled.
package deliverer
