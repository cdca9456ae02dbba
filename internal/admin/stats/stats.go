// Package stats computes dashboard metrics from collections already loaded into memory.
// Every function is a single pass filter or reduce and never touches the store.
package stats

import (
	"sort"

	"bizadmin/internal/admin/model"

	"github.com/shopspring/decimal"
)

const unassigned = "unassigned"

// countBy tallies keys and returns them ordered by key.
func countBy[T any](items []T, key func(T) string) []model.CountByKey {
	counts := make(map[string]int)
	for _, it := range items {
		counts[key(it)]++
	}
	out := make([]model.CountByKey, 0, len(counts))
	for k, n := range counts {
		out = append(out, model.CountByKey{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// monthlyCounts buckets items by a YYYY-MM key, skipping items without one.
func monthlyCounts[T any](items []T, month func(T) string) []model.MonthlyCount {
	counts := make(map[string]int)
	for _, it := range items {
		if m := month(it); m != "" {
			counts[m]++
		}
	}
	out := make([]model.MonthlyCount, 0, len(counts))
	for m, n := range counts {
		out = append(out, model.MonthlyCount{Month: m, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// SumPayItems adds up the amounts of a list of allowances or deductions.
func SumPayItems(items []model.PayItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

// NetPay is the sum of allowances minus the sum of deductions.
func NetPay(rec *model.SalaryRecord) decimal.Decimal {
	return SumPayItems(rec.Allowances).Sub(SumPayItems(rec.Deductions))
}
