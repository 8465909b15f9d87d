// Package order contains the Order aggregate root and its status value
// objects. The order is the single authoritative record of one customer
// purchase; every lifecycle facet (customer status, merchant acceptance,
// delivery progress) lives here and only moves forward.
//
// The full happy path:
//
//	Pending ─confirm─> Confirmed ─accept─> ─dispatch─> Notified
//	  ─claim─> Claimed ─pickup─> PickingUp ─deliver─> Delivered
//	  ─receipt─> Completed (settlement)
//
// Failure exits: customer deletion (Pending only) and merchant rejection.
package order
