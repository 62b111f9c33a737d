// Package pipeline runs one renumbering pass: Discover selects the files,
// planner.BuildPlan orders and names them, and Run either copies them into
// a fresh timestamped directory or reports the plan (dry run).
//
// Data flows one way, Discover → BuildPlan → Materialize/Report. Originals
// are only ever read.
package pipeline
