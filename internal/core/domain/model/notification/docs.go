// Package notification contains the Notification aggregate: an outgoing
// email recorded in the same transaction as the change that caused it and
// handed to the mail transport afterwards.
//
// A notification starts Pending. A successful hand-off marks it Sent; each
// failed attempt is counted and, once the attempt limit is reached, the
// notification becomes Failed and is no longer retried.
package notification
