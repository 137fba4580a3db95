// Package migrate re-normalizes tags on pre-existing task records in bulk.
//
// Records created before the registry existed (or before a synonym table
// update) may carry tag spellings that today's pipeline would map elsewhere.
// Run pushes every task's tags through the engine and hands changed sets to a
// caller-supplied persistence hook. Failures are isolated per task: one bad
// record lands in the report's error list and the batch keeps going.
package migrate
