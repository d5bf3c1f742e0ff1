// Package metroroute is a door-to-door trip planner for metro networks.
//
// A metro line file is turned into a graph with one node per (station, line)
// pair. Consecutive stops of a line are joined by in-line edges and the nodes
// of a multi-line station form a complete transfer subgraph. For each trip a
// virtual origin and a virtual destination are layered over the shared graph,
// and A* finds the fastest way between them, guided by an admissible
// per-destination heuristic.
//
// Packages, bottom-up:
//
//	geo/        points, planar and haversine distance, walking time
//	core/       thread-safe Graph keyed by NodeID, request-local Overlay
//	bfs/        traversal with hooks, rail-connected components
//	dijkstra/   multi-source Dijkstra and A* with edge filters
//	transit/    network builder and virtual endpoint injection
//	heuristic/  per-destination remaining-time tables and their LRU cache
//	itinerary/  steps and rider instructions from a path
//	planner/    two-phase query: rail-only, then door-to-door
//	dataset/    ordered JSON/YAML line files
//	config/     YAML configuration with environment overrides
//	server/     HTTP endpoints
//
// Quick example, lines L1 = [A, B, C] and L2 = [D, B, E]:
//
//	    D
//	    │ L2
//	A───B───C   L1
//	    │
//	    E
//
// A → E rides L1 to B (2 min), transfers to L2 (5 min) and rides to E (2 min):
// 9 minutes in total.
//
//	go install github.com/katalvlaran/metroroute/cmd/metroroute@latest
package metroroute
