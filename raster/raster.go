package raster

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Raster groups the band views of one scene together with the shared store,
// identifier, geographic mapping and descriptive parameters. It is the unit
// handed to geometry and imaging consumers.
//
// A Raster does not copy pixel data: its bands are projections over the one
// store passed at construction, and they do not outlive it.
type Raster struct {
	id     string
	store  *Store
	bands  []*Band
	mapper *Mapper
	params Params
}

// New builds a raster over an existing store.
//
// An empty id is replaced by a fresh UUID. The mapping table is either empty
// (the raster is unmapped) or exactly four corner mappings; anything else
// fails with ErrInvalidArgument, as does a nil store.
func New(id string, store *Store, mappings []Mapping, params Params) (*Raster, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: nil store", ErrInvalidArgument)
	}
	if id == "" {
		id = uuid.NewString()
	}

	var mapper *Mapper
	if len(mappings) > 0 {
		var err error
		mapper, err = NewMapper(mappings)
		if err != nil {
			return nil, err
		}
	}

	r := &Raster{
		id:     id,
		store:  store,
		mapper: mapper,
		params: params.clone(),
	}
	r.bands = make([]*Band, store.Dimensions().Bands())
	for i := range r.bands {
		r.bands[i] = newBand(store, i, mapper)
	}
	return r, nil
}

// ID returns the raster identifier.
func (r *Raster) ID() string { return r.id }

// Store returns the backing value store.
func (r *Raster) Store() *Store { return r.store }

// Dimensions returns the shared shape of all bands.
func (r *Raster) Dimensions() Dimensions { return r.store.Dimensions() }

// Format returns the canonical value representation.
func (r *Raster) Format() Format { return r.store.Format() }

// Band returns the view over the given band index.
func (r *Raster) Band(index int) (*Band, error) {
	if index < 0 || index >= len(r.bands) {
		return nil, fmt.Errorf("%w: band %d outside [0,%d)", ErrIndexOutOfRange, index, len(r.bands))
	}
	return r.bands[index], nil
}

// Bands returns all band views in index order.
func (r *Raster) Bands() []*Band {
	return append([]*Band(nil), r.bands...)
}

// IsMapped reports whether the raster carries a geographic mapping.
func (r *Raster) IsMapped() bool { return r.mapper != nil }

// Mapper returns the coordinate mapper, or nil when the raster is unmapped.
func (r *Raster) Mapper() *Mapper { return r.mapper }

// Envelope returns the geographic bound spanned by the corner mappings. An
// unmapped raster fails with ErrUnsupportedOperation.
func (r *Raster) Envelope() (orb.Bound, error) {
	if r.mapper == nil {
		return orb.Bound{}, fmt.Errorf("%w: raster carries no geographic mapping", ErrUnsupportedOperation)
	}
	return r.mapper.envelope(), nil
}

// Contains reports whether the coordinate falls inside the raster's
// envelope. An unmapped raster contains nothing.
func (r *Raster) Contains(pt orb.Point) bool {
	if r.mapper == nil {
		return false
	}
	return r.mapper.envelope().Contains(pt)
}

// Params returns the raster's descriptive parameter bag. The bag is owned by
// the raster; Lookup it, don't mutate it.
func (r *Raster) Params() Params { return r.params }
