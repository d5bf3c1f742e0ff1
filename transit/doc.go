// Package transit builds the persistent transit graph from a line/station
// dataset and injects per-request virtual endpoints into it.
//
// Graph model:
//
//   - One line node per (station, line) pair. A station served by k lines has
//     k line nodes sharing its name but not their identity.
//   - Consecutive stops of a line are joined by an undirected in-line edge of
//     Params.InterStationMinutes.
//   - The line nodes of a multi-line station form a complete subgraph of
//     undirected transfer edges of Params.TransferMinutes.
//
// A Network is built once with Build, never mutated afterwards, and may be
// shared by any number of goroutines. Each request calls Inject to obtain an
// Augmented graph holding its own virtual origin and destination, isolated
// either by a core.Overlay (default) or by a deep copy.
package transit
