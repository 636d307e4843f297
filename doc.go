// Package algoviz runs graph algorithms step by step against a shared,
// observable trace so a renderer can animate them.
//
// What is inside?
//
//	A small engine plus nine algorithms, all driven through one lifecycle:
//		• Traversals: BFS, DFS
//		• Shortest paths: Dijkstra, A*, Bellman-Ford, Floyd-Warshall
//		• Minimum spanning trees: Kruskal, Prim, Reverse-Delete
//
// Every algorithm mutates the trace (visited edges, predecessor array) and
// then yields at a checkpoint. The engine turns checkpoints into pacing,
// pause and cooperative stop; renderers read defensive snapshots on their
// own cadence and never block the algorithm.
//
// Packages:
//
//	core/          — Graph, Node, Edge: positions, undirected weighted edges, connectivity
//	builder/       — random connected graphs with a non-overlapping layout
//	trace/         — the shared animation state and its snapshots
//	algo/          — the variant contract and checkpoint interface
//	bfs/ dfs/ dijkstra/ astar/ bellmanford/ floydwarshall/ prim_kruskal/ reversedelete/
//	registry/      — name → variant table with default pacing
//	engine/        — Idle / Running / Paused / Stopped state machine
//	session/       — host facade: graph, trace, selection, lifecycle
//	render/        — frames, text renderer, polling loop
//	server/        — HTTP + WebSocket surface, Prometheus metrics
//	config/        — YAML + env configuration with hot reload
//	cmd/algoviz/   — the command-line host
//
// Lifecycle at a glance:
//
//	Idle ─Start→ Running ─Pause→ Paused ─Resume→ Running
//	               └──────Stop──────┴──→ Stopped ─→ Idle (trace cleared)
//
//	go install github.com/katalvlaran/algoviz/cmd/algoviz@latest
package algoviz
