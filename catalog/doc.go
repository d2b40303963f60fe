// Package catalog supplies POI catalogs and synonym dictionaries to the
// rest of the system: a built-in sample catalog of Moscow sights and a
// JSON file codec for external catalogs.
package catalog
