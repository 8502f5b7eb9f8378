// Package multistart runs IPFP refinement from many seed mappings and keeps
// the best result: RunSequential refines one seed at a time on the calling
// goroutine, RunParallel fans the seeds out across a bounded worker pool
// (github.com/sourcegraph/conc/pool) and blocks until every worker finishes;
// a cancelled context makes each refinement return ctx.Err() early.
//
// The Driver type carries the tunables (Options) across repeated Run calls
// rather than as package state.
package multistart
