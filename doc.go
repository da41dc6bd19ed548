// Package fundflow implements the data layer of a local-first personal
// finance tracker.
//
// A single Document holds income entries, named savings containers, expense
// entries and the running cleared-levy counters. The Document is persisted as
// one pretty-printed JSON file through a pluggable Backend, and every change
// is announced to subscribers, including other processes watching the same
// file.
//
// Three fixed levies (tithe, offering, charity) are each owed at 10% of total
// income. Clearing a levy marks part of it as settled: the outstanding figure
// shrinks, but the total deduction in the balance formula always reflects the
// full owed amount.
package fundflow
