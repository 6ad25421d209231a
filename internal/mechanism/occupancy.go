package mechanism

import "github.com/synbiolab/crngen/internal/crn"

// Occupancy state machine over a linear template bound by up to maxOcc
// carrier molecules, each in an open (elongating) or closed (newly bound,
// pre-isomerization) conformation.
//
// States, for occupancy level n:
//
//	Open(n)   = template + n open carriers, n = 1..maxOcc (Open(0) is the bare template)
//	Closed(n) = template + n open carriers + 1 closed carrier, n = 0..maxOcc-1
//
// Transitions, all at level-independent rates:
//
//	bind       Open(n) + C  --> Closed(n)            n = 1..maxOcc-1, plus T + C --> Closed(0)
//	unbind     Closed(n)    --> Open(n) + C          n = 1..maxOcc-1, plus Closed(0) --> T + C
//	isomerize  Closed(n)    --> Open(n+1)            n = 0..maxOcc-1
//	release    Open(n)      --> T + n C + n P        n = 1..maxOcc
//	release    Closed(n)    --> Closed(0) + n C + n P  n = 1..maxOcc-1
//
// Release frees every open-conformation carrier with one product each; a
// closed carrier stays bound, returning the template to Closed(0).
type occupancyMachine struct {
	template *crn.Species
	carrier  *crn.Species
	product  *crn.Species
	maxOcc   int
}

func (o occupancyMachine) open(n int) *crn.Species {
	return crn.OccupancyComplex(o.template, o.carrier, n, crn.ConformationOpen)
}

func (o occupancyMachine) closed(n int) *crn.Species {
	return crn.OccupancyComplex(o.template, o.carrier, n, crn.ConformationClosed)
}

// species enumerates every open and closed complex plus the free carrier,
// template, and product, so the compiler can register all of them before any
// reaction touches the boundary states.
func (o occupancyMachine) species() []*crn.Species {
	out := make([]*crn.Species, 0, 2*o.maxOcc+3)
	for n := 1; n <= o.maxOcc; n++ {
		out = append(out, o.open(n))
	}
	for n := 0; n < o.maxOcc; n++ {
		out = append(out, o.closed(n))
	}
	return append(out, o.carrier, o.template, o.product)
}

type occupancyRates struct {
	bind      float64
	unbind    float64
	isomerize float64
	release   float64
}

// reactions builds the full state machine: 2*(maxOcc-1) bind/unbind pairs,
// maxOcc isomerizations, maxOcc open releases, maxOcc-1 closed releases, and
// the 2 boundary reactions on the bare template. maxOcc 0 yields no
// reactions; maxOcc 1 yields the boundary-only machine.
func (o occupancyMachine) reactions(k occupancyRates) ([]*crn.Reaction, error) {
	if o.maxOcc == 0 {
		return nil, nil
	}

	var all []*crn.Reaction
	add := func(r *crn.Reaction, err error) error {
		if err != nil {
			return err
		}
		all = append(all, r)
		return nil
	}

	// binding and unbinding between occupied states
	for n := 1; n < o.maxOcc; n++ {
		err := add(crn.NewMassAction(
			[]*crn.Species{o.carrier, o.open(n)},
			[]*crn.Species{o.closed(n)},
			k.bind,
		))
		if err != nil {
			return nil, err
		}
		err = add(crn.NewMassAction(
			[]*crn.Species{o.closed(n)},
			[]*crn.Species{o.carrier, o.open(n)},
			k.unbind,
		))
		if err != nil {
			return nil, err
		}
	}

	// isomerization of the newest closed carrier
	for n := 0; n < o.maxOcc; n++ {
		err := add(crn.NewMassAction(
			[]*crn.Species{o.closed(n)},
			[]*crn.Species{o.open(n + 1)},
			k.isomerize,
		))
		if err != nil {
			return nil, err
		}
	}

	// release from open states: all n carriers and n products leave, the
	// template re-initializes bare
	for n := 1; n <= o.maxOcc; n++ {
		err := add(crn.NewMassAction(
			[]*crn.Species{o.open(n)},
			releaseOutputs(o.carrier, o.product, n, o.template),
			k.release,
		))
		if err != nil {
			return nil, err
		}
	}

	// release from closed states: the n open carriers leave, the single
	// closed carrier stays bound
	for n := 1; n < o.maxOcc; n++ {
		err := add(crn.NewMassAction(
			[]*crn.Species{o.closed(n)},
			releaseOutputs(o.carrier, o.product, n, o.closed(0)),
			k.release,
		))
		if err != nil {
			return nil, err
		}
	}

	// boundary: bare template binding and its reverse
	err := add(crn.NewMassAction(
		[]*crn.Species{o.template, o.carrier},
		[]*crn.Species{o.closed(0)},
		k.bind,
	))
	if err != nil {
		return nil, err
	}
	err = add(crn.NewMassAction(
		[]*crn.Species{o.closed(0)},
		[]*crn.Species{o.template, o.carrier},
		k.unbind,
	))
	if err != nil {
		return nil, err
	}

	return all, nil
}

func releaseOutputs(carrier, product *crn.Species, n int, rest *crn.Species) []*crn.Species {
	out := make([]*crn.Species, 0, 2*n+1)
	for i := 0; i < n; i++ {
		out = append(out, carrier)
	}
	for i := 0; i < n; i++ {
		out = append(out, product)
	}
	return append(out, rest)
}
