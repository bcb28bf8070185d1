// Package graph provides the serialization format for placement runs.
//
// A [Plan] records which movers were built, which of them may interact, how
// they split into independently searchable components, and which candidate
// groups were rejected. It is the document written by `movergraph plan
// --json` and stored in the run cache.
//
// # Format
//
//	{
//	  "algorithm": "exact",
//	  "probe_radius": 0.25,
//	  "movers": [{"index": 0, "kind": "nh3", "atoms": [5, 6, 7], "coarse": 12, "fine": 348}],
//	  "edges": [{"from": 0, "to": 1}],
//	  "components": [[0, 1]],
//	  "failures": [{"atom": 0, "element": "C", "kind": "tetrahedral-methyl", "error": "..."}]
//	}
//
// Common operations:
//
//	p, _ := graph.FromInteraction(g, placed.Failures) // interaction.Graph → Plan
//	graph.WritePlanFile(p, "plan.json")               // Plan → File
//	data, _ := graph.MarshalPlan(p)                   // Plan → []byte
//	parsed, _ := graph.UnmarshalPlan(data)            // []byte → Plan
//
// [UnmarshalPlan] rejects documents whose edges or components name movers
// that are not listed.
package graph
