// Package pipeline runs the generation of a migration document as a
// sequence of steps.
//
// Each step receives the shared *model.Generation and fills in its part:
//
//	load -> locale -> normalize -> [probe] -> build
//
// The probe step is added only when the liveness check is enabled.
// DefaultPipeline assembles the steps from a *config.Config.
package pipeline
