// Package catalog declares the Vertica v_catalog system tables.
//
// The declarations are read-only metadata built at package init: one
// schema.Table per catalog view in a MetaData whose schema is "v_catalog".
// Columns that only exist from a given server release carry that release
// under the "server_version" info key, and v_sequence carries one on the
// table itself.
//
//	cols := catalog.AvailableColumns(catalog.VIndex, catalog.Version{Major: 14})
//	// indnullsnotdistinct is excluded; it requires 15
//
// Callers that talk to a live server detect its version once with
// DetectServerVersion and filter every introspection query through
// AvailableColumns or SelectAvailable.
package catalog
