// Package bfsgo has no code of its own; the module exists to host the two
// subsystems a high-performance directory-traversal tool is built on top
// of:
//
//   - [github.com/antprobasealt/bfsgo/arena]: fixed- and variable-size
//     slab allocators for recycling same-shaped objects, including
//     trailing-flexible-array structs bucketed by power-of-two size class.
//   - [github.com/antprobasealt/bfsgo/ioq]: an asynchronous request queue
//     that off-loads blocking filesystem operations onto a worker pool,
//     so a traversal driver never blocks its own goroutine on open/close.
//
// ioq's entry pool and arena are independent packages: ioq does not import
// arena (see DESIGN.md for why an Entry's Go pointers make that unsound),
// but both follow the same free-list-recycling shape.
package bfsgo
