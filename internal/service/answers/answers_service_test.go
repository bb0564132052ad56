package answers

import (
	"testing"

	"github.com/ecovance/disclose/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestMergeRows(t *testing.T) {
	stored := []domain.TableRow{
		{CurrentYear: "10", PreviousYear: "9"},
		{CurrentYear: "20", PreviousYear: "19"},
	}
	patch := []domain.TableRow{
		{CurrentYear: "11"},
		{PreviousYear: "99"},
	}

	merged := mergeRows(stored, patch)

	require.Equal(t, []domain.TableRow{
		{CurrentYear: "11", PreviousYear: "9"},
		{CurrentYear: "20", PreviousYear: "99"},
	}, merged)
}

func TestMergeRowsPatchLongerThanStored(t *testing.T) {
	stored := []domain.TableRow{
		{CurrentYear: "10"},
	}
	patch := []domain.TableRow{
		{},
		{CurrentYear: "5", PreviousYear: "4"},
	}

	merged := mergeRows(stored, patch)

	require.Equal(t, []domain.TableRow{
		{CurrentYear: "10"},
		{CurrentYear: "5", PreviousYear: "4"},
	}, merged)
}

func TestMergeRowsNoStored(t *testing.T) {
	patch := []domain.TableRow{{CurrentYear: "1", PreviousYear: "2"}}
	require.Equal(t, patch, mergeRows(nil, patch))
}
