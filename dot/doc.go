// Package dot renders a Complex's Hasse diagram as a Graphviz DOT graph:
// one node per live simplex, one edge per boundary/coboundary incidence.
// It is a read-only collaborator over core's public accessor surface —
// it never reaches into core's internals — matching how orient treats
// the complex as an external, read-only observer.
//
// No DOT-writing library appeared anywhere in the retrieved corpus, so
// this is a small stdlib writer built directly on fmt.Fprintf rather than
// an adopted third-party dependency.
package dot
