// Package ingest provides bulk import of POI catalogs and synonym groups.
//
// The Pipeline type manages the import workflow, including:
//   - Validating every POI and synonym group against the domain rules
//   - Applying the default visit duration and content-based IDs
//   - Writing POI batches to storage concurrently
//
// Batches are written on a worker pool, but an import call blocks until
// every batch has landed; write errors fail the import rather than being
// logged away.
package ingest
