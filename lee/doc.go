// Package lee computes shortest paths on a grid.Grid with Lee's algorithm:
// a breadth-first flood fill from Start followed by a backtrace from End.
//
// What:
//
//   - FindShortestPath labels every reached Empty cell with Distance(n), stops
//     once End is adjacent to the popped cell, then walks strictly decreasing
//     labels back to Start, writing PathMarker on the way.
//   - Solve clears the previous run's tiles first, which is what a host loop
//     calls once per frame.
//   - Stepper runs the same fill one frontier pop at a time so a renderer can
//     animate the wavefront.
//
// Movement is 4-connected with unit cost. Neighbours expand in the fixed order
// +x, -x, +y, -y; the order only decides which of several equally short paths
// is marked.
//
// Complexity:
//
//   - FindShortestPath: O(W×H) time, O(W×H) frontier memory.
//   - Stepper.Step: the same, plus a copy of the current frontier per call.
//
// Errors:
//
//   - ErrNoPath: End is unreachable. Distance labels of the exhausted fill are
//     left on the grid.
//   - ErrMissingEndpoint: the grid was not built by grid.New or grid.Parse.
//   - ErrStaleTiles: Distance or PathMarker tiles from an earlier run remain.
package lee
