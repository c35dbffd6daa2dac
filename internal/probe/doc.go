// Package probe checks whether page URLs are live before they are written
// into a migration document.
//
// A page is live when a HEAD request answers 200. Redirects are not
// followed, requests are never retried, and every failure (transport error,
// timeout, other status) is reported as a dead page rather than an error.
// Probes run serially unless a higher concurrency is configured; results are
// always returned in input order.
package probe
