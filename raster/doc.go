// Package raster models multi-band raster imagery and provides uniform,
// bounds-checked access to per-pixel spectral values regardless of how the
// underlying buffer physically interleaves band, row and column data.
//
// The central type is Store, which owns a flat value buffer in one of three
// physical data orders and exposes scalar and bulk read/write operations in
// both quantized-integer and floating-point representations. Band narrows a
// Store to a single spectral band and adds nearest-value edge clamping,
// coordinate addressing and histogram bookkeeping. Raster groups the bands
// of one scene together with its dimensions, format, identifier and
// geographic mapping.
//
// # Coordinate System
//
// Pixel indices are 0-based: rows run top-down, columns left-right and bands
// are numbered from 0. Geographic coordinates are orb.Point values resolved
// through a Mapper built from corner mappings.
//
// # Data Orders
//
// A buffer is stored in exactly one of three interleavings: band-sequential
// (RowColumnBand), band-interleaved-by-pixel (BandRowColumn) or
// band-interleaved-by-line (RowBandColumn). A Store may additionally service
// reads and writes in non-native orders by permuting elements on the fly;
// the set of orders it is willing to service is declared at construction.
//
// # Thread Safety
//
// A Store is not internally synchronized. Multiple goroutines may read
// concurrently as long as no writer is active; the owning application must
// serialize writers against readers. Lazily maintained band histograms are
// subject to the same discipline as the underlying buffer.
//
// # Error Handling
//
// All failures are immediate and synchronous and wrap one of three sentinel
// errors: ErrUnsupportedOperation, ErrIndexOutOfRange and ErrInvalidArgument.
// Bulk operations validate every precondition before mutating anything, so a
// failed call never leaves a partially written buffer. The NearestValue
// entry points are the single sanctioned soft-failure path: they clamp
// out-of-range indices instead of failing.
package raster
