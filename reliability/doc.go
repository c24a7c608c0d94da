// Package reliability wires relio, frontier, dpstate and reldp into the
// single entry point a caller (or cmd/relcount) actually needs: Solve reads
// nothing itself, it orchestrates the pipeline over already-parsed inputs
// and returns the reachable-vertex-count histogram plus diagnostics; Report
// formats that histogram for display.
package reliability
