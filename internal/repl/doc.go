// Package repl implements the line-oriented graph interpreter behind
// "graphs repl".
//
// Each line is one command. Assignments build a graph and bind it to a name:
//
//	> a = ring 4
//	> b = complete 2
//	> p = replacement_product a b
//	> r = random 12 3 7 connected
//
// Other commands inspect or export named graphs:
//
//	> info p
//	> cheeger p
//	> dot p
//	> graph6 r
//	> viz p ring.svg
//	> save r r.json
//
// Errors are printed and the session continues; "quit", "exit" or end of
// input ends it. Exact Cheeger constants are remembered per name in a
// bounded LRU memo and forgotten when the name is rebound.
package repl
