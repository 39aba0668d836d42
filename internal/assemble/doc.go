// Package assemble builds the raw bus, branch and generator matrix rows of
// the external case from the network element tables. Rows are produced for
// every element, in-service or not; filtering is the renumbering engine's
// job. Buses fused by closed bus-bus switches share one row, open element
// switches detach their branch end onto auxiliary out-of-service buses.
package assemble
