// Package cinelist extracts structured movie and show records from IMDb
// listing pages. It locates repeated item elements in pages whose markup
// varies across page generations (classic chart tables, legacy list pages,
// modern card-based lists), resolves six fields per item through prioritized
// selector cascades with regex fallbacks, and presents the result as a
// tabular dataset exportable to a spreadsheet.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, excel/, sqlite/).
package cinelist
