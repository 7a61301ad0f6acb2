// Package repository holds the in-process data stores: the static train
// timetable, the booking list with its draft slot, and the persisted
// session profile.  Lookup misses are reported as booleans rather than
// errors; the caller decides what the user sees.  Nothing in this package
// is fatal, every failure path degrades to a safe default state.
package repository
