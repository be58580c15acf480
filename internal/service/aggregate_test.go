package service

import (
	"testing"

	"github.com/interrorpro/interrorpro/addone/extract"
	"github.com/stretchr/testify/assert"
)

// TestAggregateTotals 各字段独立求和，全网比率按汇总值计算
func TestAggregateTotals(t *testing.T) {
	metrics := []InterfaceMetrics{
		{InterfaceCounters: extract.InterfaceCounters{
			InputPackets: 1000000, OutputPackets: 500000,
			InputErrors: 400, CRCErrors: 100, OutputErrors: 7,
			InputDrops: 5, OutputDrops: 3,
		}},
		{InterfaceCounters: extract.InterfaceCounters{
			InputPackets: 3000000, OutputPackets: 1500000,
			InputErrors: 100, CRCErrors: 200, OutputErrors: 1,
			InputDrops: 2, OutputDrops: 9,
		}},
	}

	totals := Aggregate(metrics)
	assert.Equal(t, int64(4000000), totals.InputPackets)
	assert.Equal(t, int64(2000000), totals.OutputPackets)
	assert.Equal(t, int64(500), totals.InputErrors)
	assert.Equal(t, int64(300), totals.CRCErrors)
	assert.Equal(t, int64(8), totals.OutputErrors)
	assert.Equal(t, int64(7), totals.InputDrops)
	assert.Equal(t, int64(12), totals.OutputDrops)
	// (500+300)/4000000*100 = 0.02
	assert.InDelta(t, 0.02, totals.OverallErrorCRCRatio, 1e-12)
}

// TestAggregateEmpty 空集合下所有汇总为 0，比率受除零保护
func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil)
	assert.Zero(t, totals.InputPackets)
	assert.Zero(t, totals.OutputPackets)
	assert.Zero(t, totals.InputErrors)
	assert.Zero(t, totals.CRCErrors)
	assert.Zero(t, totals.OutputErrors)
	assert.Zero(t, totals.InputDrops)
	assert.Zero(t, totals.OutputDrops)
	assert.Zero(t, totals.OverallErrorCRCRatio)
}
