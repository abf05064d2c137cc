// Package driven defines the small fixed interfaces the core is built
// against: format loaders and writers, the motor-library store, and the
// config store. Format handlers implement these instead of sharing a
// base type; common helpers live in the convert package.
package driven
