// Package broadcast republishes incoming body pose and ground-truth
// odometry samples as dynamic frame-tree edges, keeping the tree live. Each
// published edge fully supersedes the previous edge with the same child
// frame; a malformed sample is dropped without touching the tree.
package broadcast
