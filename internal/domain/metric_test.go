package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeeklyMetricsSetMerge(t *testing.T) {
	accumulated := WeeklyMetricsSet{
		"SBX": {Sales: "+1%", Margin: "+1%"},
		"H&M": {Sales: "-2%", Margin: "+0.5%"},
	}

	// O arquivo mais recente sobrescreve a marca duplicada e adiciona a nova
	accumulated.Merge(WeeklyMetricsSet{
		"SBX": {Sales: "+2%", Margin: "+2%"},
		"FL":  {Sales: "-1%", Margin: "-1%"},
	})

	assert.Len(t, accumulated, 3)
	assert.Equal(t, BrandMetrics{Sales: "+2%", Margin: "+2%"}, accumulated["SBX"])
	assert.Equal(t, BrandMetrics{Sales: "-2%", Margin: "+0.5%"}, accumulated["H&M"])
	assert.Equal(t, BrandMetrics{Sales: "-1%", Margin: "-1%"}, accumulated["FL"])
}

func TestWeeklyMetricsSetMergeVazio(t *testing.T) {
	accumulated := WeeklyMetricsSet{}
	accumulated.Merge(WeeklyMetricsSet{"VS": {Sales: "+3%", Margin: "+1%"}})
	accumulated.Merge(WeeklyMetricsSet{})

	assert.Len(t, accumulated, 1)
	assert.Equal(t, BrandMetrics{Sales: "+3%", Margin: "+1%"}, accumulated["VS"])
}

func TestWeeklyMetricsSetNormalized(t *testing.T) {
	set := WeeklyMetricsSet{
		"FL":  {},
		"SBX": {Sales: "+5%"},
		"PM":  {Sales: "-6%", Margin: "-4%"},
	}

	normalized := set.Normalized()

	assert.Equal(t, BrandMetrics{Sales: MetricNotAvailable, Margin: MetricNotAvailable}, normalized["FL"])
	assert.Equal(t, BrandMetrics{Sales: "+5%", Margin: MetricNotAvailable}, normalized["SBX"])
	assert.Equal(t, BrandMetrics{Sales: "-6%", Margin: "-4%"}, normalized["PM"])

	// O conjunto original não é alterado
	assert.Equal(t, BrandMetrics{}, set["FL"])
}
