// Package netio implements the two thin external collaborators spec.md §1
// keeps outside the core: a Pajek edge-list reader/writer and a
// whitespace-delimited attribute-table reader. Its
// BootstrapObservedStatistics loads the Pajek reader's edge pairs into a
// graph and accumulates observed sufficient statistics in the same pass,
// evaluating each Delta before the edge is inserted
// (spec.md §4.4, "bootstrapping observed statistics").
package netio
