// Package pool distributes conversion tasks across a fixed-size worker
// pool and collects one outcome per task.
//
// The coordinator owns the task and outcome channels and passes them
// explicitly to workers; there is no shared mutable state beyond the two
// channels. Every task is processed exactly once and the coordinator
// returns only after every task has a recorded outcome. Outcome order is
// arbitrary relative to submission order.
package pool
