package types_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/regtrack/regtrack/pkg/domain/types"
)

func TestLikelihood_Rank(t *testing.T) {
	tests := []struct {
		name       string
		likelihood types.Likelihood
		want       int
	}{
		{name: "low", likelihood: types.LikelihoodLow, want: 1},
		{name: "medium", likelihood: types.LikelihoodMedium, want: 2},
		{name: "high", likelihood: types.LikelihoodHigh, want: 3},
		{name: "invalid", likelihood: types.Likelihood("EXTREME"), want: 0},
		{name: "empty", likelihood: types.Likelihood(""), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.N(t, tt.likelihood.Rank()).Equal(tt.want)
		})
	}
}

func TestParseLikelihood(t *testing.T) {
	got, err := types.ParseLikelihood("MEDIUM")
	gt.NoError(t, err)
	gt.V(t, got).Equal(types.LikelihoodMedium)

	_, err = types.ParseLikelihood("EXTREME")
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrInvalidEnum)).True()

	_, err = types.ParseLikelihood("")
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrInvalidEnum)).True()
}

func TestAllLikelihoods(t *testing.T) {
	all := types.AllLikelihoods()
	gt.A(t, all).Length(3)

	// Ascending rank order
	for i := 1; i < len(all); i++ {
		gt.B(t, all[i].Rank() > all[i-1].Rank()).True()
	}
}
