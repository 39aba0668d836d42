// Package netdef loads electrical-network definitions from HCL files into
// the element-table model. One file declares a network block plus any number
// of bus, line, transformer, ext_grid, gen, sgen, load, storage, shunt and
// switch blocks; defaults are applied during translation so the model is
// ready for the compiler as loaded.
package netdef
