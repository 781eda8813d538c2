// Package experiment runs the two benchmark modes over mincut.Solver:
//
//   - Runtime: wall time of a fixed number of trials (n² by default) per
//     graph, one CSV row per graph.
//   - SuccessRate: for each trial budget T, the fraction of independent
//     RepeatedMinCut(T) runs that return the known minimum cut.
//
// Progress goes to a zerolog.Logger; results go to graphio CSV writers.
package experiment
