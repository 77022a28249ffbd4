package compare_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vitor-souza-ime/foucault/internal/compare"
	"github.com/vitor-souza-ime/foucault/internal/field"
	"github.com/vitor-souza-ime/foucault/internal/material"
	"github.com/vitor-souza-ime/foucault/internal/solver"
)

var _ = Describe("Comparator", func() {
	var (
		exc field.Excitation
		dom field.Domain
		ctx context.Context
	)

	BeforeEach(func() {
		exc = field.Excitation{Frequency: 60, Amplitude: 0.1}
		dom = field.Domain{Length: 0.15, Points: 150}
		ctx = context.Background()
	})

	Describe("comparing the reference materials", func() {
		var table *compare.Table

		BeforeEach(func() {
			var err error
			table, err = compare.New().Compare(ctx, exc, dom)
			Expect(err).NotTo(HaveOccurred())
		})

		It("produces one row per material in registry order", func() {
			Expect(table.Rows).To(HaveLen(3))
			Expect(table.Rows[0].Material.Name).To(Equal("aluminum"))
			Expect(table.Rows[1].Material.Name).To(Equal("copper"))
			Expect(table.Rows[2].Material.Name).To(Equal("iron"))
			Expect(table.Solver).To(Equal("analytic"))
		})

		It("carries the material constants through unchanged", func() {
			Expect(table.Rows[0].Material.Sigma).To(Equal(3.5e7))
			Expect(table.Rows[1].Material.Sigma).To(Equal(5.8e7))
			Expect(table.Rows[2].Material.MuR).To(Equal(1000.0))
		})

		It("reproduces the textbook skin depths at 60 Hz", func() {
			wantMM := map[string]float64{"aluminum": 10.98, "copper": 8.53, "iron": 0.65}
			for _, row := range table.Rows {
				want := wantMM[row.Material.Name]
				Expect(row.SkinDepth * 1e3).To(BeNumerically("~", want, want*0.01),
					row.Material.Name)
			}
		})

		It("orders the skin depths iron < copper < aluminum", func() {
			byName := rowsByName(table)
			Expect(byName["iron"].SkinDepth).To(BeNumerically("<", byName["copper"].SkinDepth))
			Expect(byName["copper"].SkinDepth).To(BeNumerically("<", byName["aluminum"].SkinDepth))
		})

		It("recovers the skin depth from the envelope", func() {
			for _, row := range table.Rows {
				Expect(row.FittedSkinDepth).To(BeNumerically("~", row.SkinDepth, row.SkinDepth*0.005),
					row.Material.Name)
			}
		})

		It("measures the phase lag the closed form predicts", func() {
			for _, row := range table.Rows {
				want := math.Mod(row.ReferenceDepth/row.SkinDepth, 2*math.Pi)
				Expect(row.PhaseLag).To(BeNumerically("~", want, 0.02), row.Material.Name)
				Expect(row.PhaseDelay).To(BeNumerically("~", row.PhaseLag/exc.Omega(), 1e-12))
			}
		})

		It("keeps dissipation positive and the averages consistent", func() {
			for _, row := range table.Rows {
				Expect(row.TotalPower).To(BeNumerically(">", 0))
				Expect(row.PeakPowerDensity).To(BeNumerically(">", 0))
				Expect(row.PeakMeanRatio).To(BeNumerically(">", 1))
				// time-averaged density is exactly half the peak density
				Expect(row.TotalPower).To(BeNumerically("~", row.TotalPeakPower/2, row.TotalPeakPower*1e-12))
			}
		})

		It("retains the solved profiles for rendering", func() {
			for _, row := range table.Rows {
				Expect(row.Profile).NotTo(BeNil())
				Expect(row.Profile.X).To(HaveLen(dom.Points))
				Expect(row.Current).To(HaveLen(dom.Points))
				Expect(row.Power).To(HaveLen(dom.Points))
			}
		})
	})

	Describe("partial failure", func() {
		It("completes the healthy materials and reports the rest", func() {
			al, _ := material.ByName("aluminum")
			fe, _ := material.ByName("iron")
			bad := material.Properties{Name: "insulator", Sigma: 0, MuR: 1}

			table, err := compare.New(compare.WithMaterials(al, bad, fe)).Compare(ctx, exc, dom)
			Expect(err).To(HaveOccurred())

			var pre *compare.PartialResultError
			Expect(errors.As(err, &pre)).To(BeTrue())
			Expect(pre.Failed).To(HaveKey("insulator"))
			Expect(pre.Failed).To(HaveLen(1))
			Expect(pre.Rows).To(HaveLen(2))
			Expect(pre.Rows[0].Material.Name).To(Equal("aluminum"))
			Expect(pre.Rows[1].Material.Name).To(Equal("iron"))

			var ipe *field.InvalidParameterError
			Expect(errors.As(pre.Failed["insulator"], &ipe)).To(BeTrue())
			Expect(ipe.Name).To(Equal("sigma"))

			Expect(table).NotTo(BeNil())
			Expect(table.Rows).To(HaveLen(2))
			Expect(table.Rows[0].Material.Name).To(Equal("aluminum"))
			Expect(table.Rows[1].Material.Name).To(Equal("iron"))
		})

		It("reports every material when all of them fail", func() {
			bad1 := material.Properties{Name: "a", Sigma: -1, MuR: 1}
			bad2 := material.Properties{Name: "b", Sigma: 1e7, MuR: 0}

			table, err := compare.New(compare.WithMaterials(bad1, bad2)).Compare(ctx, exc, dom)
			Expect(err).To(HaveOccurred())

			var pre *compare.PartialResultError
			Expect(errors.As(err, &pre)).To(BeTrue())
			Expect(pre.Failed).To(HaveLen(2))
			Expect(pre.Rows).To(BeEmpty())
			Expect(table.Rows).To(BeEmpty())
		})

		It("surfaces solver instability through the error chain", func() {
			cu, _ := material.ByName("copper")
			unstable := &solver.FTCS{Dt: 1} // far above any stability limit

			_, err := compare.New(
				compare.WithMaterials(cu),
				compare.WithSolver(unstable),
			).Compare(ctx, exc, dom)
			Expect(err).To(HaveOccurred())

			var ude *solver.UnstableDiscretizationError
			Expect(errors.As(err, &ude)).To(BeTrue())
			Expect(ude.Dt).To(Equal(1.0))
		})
	})

	Describe("shared input validation", func() {
		It("rejects a degenerate domain before solving anything", func() {
			_, err := compare.New().Compare(ctx, exc, field.Domain{Length: 0.15, Points: 1})
			Expect(err).To(HaveOccurred())

			var dpe *field.DegenerateProfileError
			Expect(errors.As(err, &dpe)).To(BeTrue())
		})

		It("rejects a non-positive frequency up front", func() {
			_, err := compare.New().Compare(ctx, field.Excitation{Frequency: 0, Amplitude: 0.1}, dom)
			Expect(err).To(HaveOccurred())

			var ipe *field.InvalidParameterError
			Expect(errors.As(err, &ipe)).To(BeTrue())
			Expect(ipe.Name).To(Equal("frequency"))
		})
	})

	Describe("parallel execution", func() {
		It("matches the sequential run exactly", func() {
			seq, err := compare.New().Compare(ctx, exc, dom)
			Expect(err).NotTo(HaveOccurred())

			par, err := compare.New(compare.WithParallel(true)).Compare(ctx, exc, dom)
			Expect(err).NotTo(HaveOccurred())

			Expect(par.Rows).To(HaveLen(len(seq.Rows)))
			for i := range seq.Rows {
				Expect(par.Rows[i].Material.Name).To(Equal(seq.Rows[i].Material.Name))
				Expect(par.Rows[i].SkinDepth).To(Equal(seq.Rows[i].SkinDepth))
				Expect(par.Rows[i].FittedSkinDepth).To(Equal(seq.Rows[i].FittedSkinDepth))
				Expect(par.Rows[i].PhaseLag).To(Equal(seq.Rows[i].PhaseLag))
				Expect(par.Rows[i].TotalPower).To(Equal(seq.Rows[i].TotalPower))
				Expect(par.Rows[i].PeakCurrent).To(Equal(seq.Rows[i].PeakCurrent))
			}
		})
	})

	Describe("cancellation", func() {
		It("abandons the run when the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			table, err := compare.New().Compare(cancelled, exc, dom)
			Expect(err).To(MatchError(context.Canceled))
			Expect(table).To(BeNil())
		})
	})

	Describe("explicit solver", func() {
		It("agrees with the analytic summaries on a resolved grid", func() {
			cu, _ := material.ByName("copper")
			fine := field.Domain{Length: 0.05, Points: 80}

			numeric, err := compare.New(
				compare.WithMaterials(cu),
				compare.WithSolver(&solver.FTCS{}),
			).Compare(ctx, exc, fine)
			Expect(err).NotTo(HaveOccurred())
			Expect(numeric.Rows).To(HaveLen(1))
			Expect(numeric.Solver).To(Equal("ftcs"))

			row := numeric.Rows[0]
			Expect(row.FittedSkinDepth).To(BeNumerically("~", row.SkinDepth, row.SkinDepth*0.05))
			Expect(row.Profile.Phasor).To(BeNil())
		})
	})
})

func rowsByName(t *compare.Table) map[string]compare.Row {
	m := make(map[string]compare.Row, len(t.Rows))
	for _, row := range t.Rows {
		m[row.Material.Name] = row
	}
	return m
}
