package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Plan executes forward complex transforms of a fixed length.
// Forward must accept dst and src aliasing the same slice.
type Plan interface {
	Len() int
	Forward(dst, src []complex128) error
}

// Backend creates plans.
type Backend interface {
	Name() string
	NewPlan(n int) (Plan, error)
}

// AlgoFFT returns the algo-fft backend.
func AlgoFFT() Backend { return algoBackend{} }

// Gonum returns a backend built on gonum's complex FFT.
func Gonum() Backend { return gonumBackend{} }

type algoBackend struct{}

func (algoBackend) Name() string { return "algo-fft" }

func (algoBackend) NewPlan(n int) (Plan, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("algo-fft plan for size %d: %w", n, err)
	}

	return algoPlan{plan: plan, n: n}, nil
}

type algoPlan struct {
	plan *algofft.Plan[complex128]
	n    int
}

func (p algoPlan) Len() int { return p.n }

func (p algoPlan) Forward(dst, src []complex128) error {
	return p.plan.Forward(dst, src)
}

type gonumBackend struct{}

func (gonumBackend) Name() string { return "gonum" }

func (gonumBackend) NewPlan(n int) (Plan, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}

	return gonumPlan{fft: fourier.NewCmplxFFT(n), n: n}, nil
}

type gonumPlan struct {
	fft *fourier.CmplxFFT
	n   int
}

func (p gonumPlan) Len() int { return p.n }

func (p gonumPlan) Forward(dst, src []complex128) error {
	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("gonum fft expects %d points, got dst=%d src=%d", p.n, len(dst), len(src))
	}

	p.fft.Coefficients(dst, src)

	return nil
}
