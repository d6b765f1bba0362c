// Package gitwire is your toolkit for speaking the git wire protocol and
// rendering commit history.
//
//	A modern, thread-safe, dependency-light module that brings together:
//
//	  • Ref advertisement: encode the capability-decorated ref listing a
//	    server sends at the start of upload-pack/receive-pack
//	  • Commit graph lane allocation: assign stable render columns to a
//	    commit DAG delivered in child-before-parent order
//
// Under the hood, everything is organized under two subpackages:
//
//	refadv/ — ObjectId, RefMap, and the Advertiser that writes pkt-line output
//	plot/   — PlotCommit, Lane, and the Allocator that assigns lane positions
//
// Quick example: advertising two refs behind a capability line, then
// allocating lanes for the three commits they point at — see the package
// docs of refadv and plot for runnable Example_ functions.
//
//	go get github.com/katalvlaran/gitwire
package gitwire
