// Package gedconfig loads gedcore's runtime tunables (iteration budgets,
// convergence thresholds, parallelism, logging) the way wyfcoding/pkg's
// config package does: viper reads a file plus environment overrides into a
// plain struct, with sane defaults set before the file is read so a missing
// or partial config file is never an error.
package gedconfig
