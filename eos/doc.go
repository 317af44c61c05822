/*
Package eos transforms single cells between conserved and primitive variables
for MHD with an ideal gas equation of state.

Every transform takes its inputs by value and returns new values: the primitive
state, the conserved state after any floor correction, and a Diagnostics value
carrying the floor flags and the root solver iteration count. Nothing is
allocated and nothing is shared between cells, so callers can run the kernels
over any number of cells concurrently as long as each cell owns its output slot.

Newtonian MHD is closed form. Special and general relativistic MHD invert the
energy-momentum relations following Kastaun, Kalinani & Ciolfi (2021), reduced
to a single unknown mu and solved with two bracketed false position solves.
*/
package eos
