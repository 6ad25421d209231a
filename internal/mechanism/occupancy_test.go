package mechanism

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/synbiolab/crngen/internal/crn"
	"github.com/synbiolab/crngen/internal/params"
)

func multiTxTable(maxOcc float64) *params.Table {
	tbl := params.NewTable()
	tbl.Set("k1", 20.0)
	tbl.Set("k2", 5.0)
	tbl.Set("k_iso", 2.0)
	tbl.Set("ktx_solo", 0.5)
	tbl.Set("kbr", 15.0)
	tbl.Set("kur", 4.0)
	tbl.Set("k_iso_r", 1.5)
	tbl.Set("ktl_solo", 0.4)
	tbl.Set("max_occ", maxOcc)
	return tbl
}

func stoichOf(side []crn.WeightedSpecies, s *crn.Species) int {
	for _, w := range side {
		if w.Species.Equal(s) {
			return w.Stoichiometry
		}
	}
	return 0
}

func consumesOnly(r *crn.Reaction, s *crn.Species) bool {
	return len(r.Reactants) == 1 && r.Reactants[0].Species.Equal(s) && r.Reactants[0].Stoichiometry == 1
}

var _ = Describe("multi-occupancy transcription", func() {
	dna := crn.DNA("ptet")
	pol := crn.Protein("rnap")
	transcript := crn.RNA("tetR")

	open := func(n int) *crn.Species { return crn.OccupancyComplex(dna, pol, n, crn.ConformationOpen) }
	closed := func(n int) *crn.Species { return crn.OccupancyComplex(dna, pol, n, crn.ConformationClosed) }

	request := func(maxOcc float64) Request {
		return Request{
			DNA:        dna,
			Transcript: transcript,
			Params:     multiTxTable(maxOcc),
			PartID:     "ptet",
		}
	}

	newTx := func() *MultiTx {
		m, err := NewMultiTx(pol)
		Expect(err).NotTo(HaveOccurred())
		return m
	}

	Context("with max occupancy 3", func() {
		var (
			m       *MultiTx
			species []*crn.Species
			rxns    []*crn.Reaction
		)

		BeforeEach(func() {
			m = newTx()
			var err error
			species, err = m.Species(request(3))
			Expect(err).NotTo(HaveOccurred())
			rxns, err = m.Reactions(request(3))
			Expect(err).NotTo(HaveOccurred())
		})

		It("enumerates 3 open and 3 closed complexes plus the free species", func() {
			Expect(species).To(HaveLen(9))
			for n := 1; n <= 3; n++ {
				Expect(species).To(ContainElement(open(n)))
			}
			for n := 0; n < 3; n++ {
				Expect(species).To(ContainElement(closed(n)))
			}
			Expect(species).To(ContainElement(pol))
			Expect(species).To(ContainElement(dna))
			Expect(species).To(ContainElement(transcript))
		})

		It("builds the full state machine", func() {
			// 2 bind + 2 unbind between occupied states, 3 isomerizations,
			// 3 open releases, 2 closed releases, 2 boundary reactions
			Expect(rxns).To(HaveLen(14))
		})

		It("binds a carrier onto an open state to form the next closed state", func() {
			found := false
			for _, r := range rxns {
				if stoichOf(r.Reactants, pol) == 1 && stoichOf(r.Reactants, open(2)) == 1 &&
					stoichOf(r.Products, closed(2)) == 1 {
					found = true
					Expect(r.Propensity.(crn.MassAction).KForward).To(Equal(20.0))
				}
			}
			Expect(found).To(BeTrue(), "missing binding reaction Open(2) + pol -> Closed(2)")
		})

		It("isomerizes a closed state into the next open state", func() {
			found := false
			for _, r := range rxns {
				if consumesOnly(r, closed(1)) && stoichOf(r.Products, open(2)) == 1 {
					found = true
					Expect(r.Propensity.(crn.MassAction).KForward).To(Equal(2.0))
				}
			}
			Expect(found).To(BeTrue(), "missing isomerization Closed(1) -> Open(2)")
		})

		It("releases all carriers and products from an open state", func() {
			for n := 1; n <= 3; n++ {
				found := false
				for _, r := range rxns {
					if !consumesOnly(r, open(n)) {
						continue
					}
					if stoichOf(r.Products, pol) == n && stoichOf(r.Products, transcript) == n &&
						stoichOf(r.Products, dna) == 1 {
						found = true
					}
				}
				Expect(found).To(BeTrue(), "missing open release at occupancy %d", n)
			}
		})

		It("keeps the closed carrier bound on a closed-state release", func() {
			for n := 1; n < 3; n++ {
				found := false
				for _, r := range rxns {
					if !consumesOnly(r, closed(n)) {
						continue
					}
					if stoichOf(r.Products, pol) == n && stoichOf(r.Products, transcript) == n &&
						stoichOf(r.Products, closed(0)) == 1 {
						found = true
					}
				}
				Expect(found).To(BeTrue(), "missing closed release at level %d", n)
			}
		})

		It("includes the bare-template boundary reactions", func() {
			var bind, unbind bool
			for _, r := range rxns {
				if stoichOf(r.Reactants, dna) == 1 && stoichOf(r.Reactants, pol) == 1 &&
					stoichOf(r.Products, closed(0)) == 1 {
					bind = true
				}
				if consumesOnly(r, closed(0)) && stoichOf(r.Products, dna) == 1 &&
					stoichOf(r.Products, pol) == 1 {
					unbind = true
				}
			}
			Expect(bind).To(BeTrue())
			Expect(unbind).To(BeTrue())
		})

		It("uses every discovered species in at least one reaction", func() {
			for _, s := range species {
				used := false
				for _, r := range rxns {
					if r.Contains(s) {
						used = true
						break
					}
				}
				Expect(used).To(BeTrue(), "species %s unused", s)
			}
		})

		It("is deterministic across repeated construction", func() {
			again, err := newTx().Reactions(request(3))
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(HaveLen(len(rxns)))
			for i := range rxns {
				Expect(again[i].Equal(rxns[i])).To(BeTrue(), "reaction %d differs", i)
			}
		})
	})

	Context("edge occupancies", func() {
		It("degenerates to the boundary-only machine at max occupancy 1", func() {
			m := newTx()
			rxns, err := m.Reactions(request(1))
			Expect(err).NotTo(HaveOccurred())
			// boundary bind/unbind, one isomerization, one open release
			Expect(rxns).To(HaveLen(4))

			species, err := m.Species(request(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(species).To(ConsistOf(open(1), closed(0), pol, dna, transcript))
		})

		It("emits no reactions at max occupancy 0", func() {
			m := newTx()
			rxns, err := m.Reactions(request(0))
			Expect(err).NotTo(HaveOccurred())
			Expect(rxns).To(BeEmpty())

			species, err := m.Species(request(0))
			Expect(err).NotTo(HaveOccurred())
			Expect(species).To(ConsistOf(pol, dna, transcript))
		})

		It("rejects negative and fractional max occupancy", func() {
			m := newTx()
			_, err := m.Reactions(request(-1))
			Expect(err).To(HaveOccurred())
			_, err = m.Reactions(request(2.5))
			Expect(err).To(HaveOccurred())
		})
	})

	Context("configuration failures", func() {
		It("fails fast when a rate constant is missing", func() {
			tbl := params.NewTable()
			tbl.Set("max_occ", 3)
			m := newTx()
			rxns, err := m.Reactions(Request{DNA: dna, Transcript: transcript, Params: tbl, PartID: "ptet"})
			Expect(err).To(HaveOccurred())
			Expect(rxns).To(BeNil())
		})

		It("requires dna and transcript participants", func() {
			m := newTx()
			_, err := m.Species(Request{DNA: dna, Params: multiTxTable(3), PartID: "ptet"})
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("multi-occupancy translation", func() {
	transcript := crn.RNA("tetR")
	ribosome := crn.Protein("ribosome")
	protein := crn.Protein("tetR")

	request := func(maxOcc float64) Request {
		return Request{
			Transcript: transcript,
			Protein:    protein,
			Params:     multiTxTable(maxOcc),
			PartID:     "utr1",
		}
	}

	It("mirrors the transcription machine with ribosome and protein roles", func() {
		m, err := NewMultiTl(ribosome)
		Expect(err).NotTo(HaveOccurred())

		rxns, err := m.Reactions(request(3))
		Expect(err).NotTo(HaveOccurred())
		Expect(rxns).To(HaveLen(14))

		// release at occupancy 3 frees 3 ribosomes and 3 proteins
		open3 := crn.OccupancyComplex(transcript, ribosome, 3, crn.ConformationOpen)
		found := false
		for _, r := range rxns {
			if consumesOnly(r, open3) &&
				stoichOf(r.Products, ribosome) == 3 &&
				stoichOf(r.Products, protein) == 3 &&
				stoichOf(r.Products, transcript) == 1 {
				found = true
				Expect(r.Propensity.(crn.MassAction).KForward).To(Equal(0.4))
			}
		}
		Expect(found).To(BeTrue())
	})

	It("resolves its own rate constant names", func() {
		m, _ := NewMultiTl(ribosome)

		tbl := params.NewTable()
		tbl.Set("k1", 20.0) // transcription names must not satisfy translation
		tbl.Set("max_occ", 2)
		_, err := m.Reactions(Request{Transcript: transcript, Protein: protein, Params: tbl, PartID: "utr1"})
		Expect(err).To(HaveOccurred())
	})

	It("reports construction-time diagnostics", func() {
		m, _ := NewMultiTl(ribosome)
		diags := m.Diagnostics()
		Expect(diags).NotTo(BeEmpty())
		Expect(diags[0].Mechanism).To(Equal("multi_tl"))
	})
})
