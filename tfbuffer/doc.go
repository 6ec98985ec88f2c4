// Package tfbuffer is an in-process frame graph implementing the
// transform.Sink and transform.Lookup collaborator interfaces.
//
// The buffer keeps only the latest value per edge; sample history is the
// responsibility of whatever external transform service a deployment pairs
// the bridge with. Lookups resolve multi-hop paths, traversing edges in
// either direction, and block up to a bounded timeout waiting for the tree
// to connect. Edges are single-writer; any number of goroutines may look up
// concurrently.
package tfbuffer
