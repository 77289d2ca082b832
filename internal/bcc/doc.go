// Package bcc derives Base Choice Coverage test sets.
//
// The active characteristic list holds every characteristic with at least one
// partition, flattened in parameter then characteristic order. Its index is
// the column index of the coverage table (column k has letter Letter(k)).
//
// The first row holds the base partition of every active characteristic.
// Every following row varies exactly one characteristic to one of its
// non-base partitions, grouped by characteristic and in partition order.
// Rows are numbered T2, T3, ... across the whole set.
//
// A document is ready when the active list is non-empty and every active
// characteristic has a base that resolves. Build returns no rows otherwise;
// CheckReady tells why.
package bcc
