package tree

import (
	"context"
	"strconv"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	RBTreeStatsName = "xtree/rbtree"
)

type treeStats struct {
	entryCount   metric.Int64UpDownCounter
	insertCount  metric.Int64Counter
	replaceCount metric.Int64Counter
	removeCount  metric.Int64Counter
	rotations    metric.Int64Counter
	fixupDepths  metric.Int64Histogram
}

func (stats *treeStats) RecordInsert() {
	if stats == nil {
		return
	}
	stats.insertCount.Add(context.Background(), 1)
	stats.entryCount.Add(context.Background(), 1)
}

func (stats *treeStats) RecordReplace() {
	if stats == nil {
		return
	}
	stats.replaceCount.Add(context.Background(), 1)
}

func (stats *treeStats) RecordRemove() {
	if stats == nil {
		return
	}
	stats.removeCount.Add(context.Background(), 1)
	stats.entryCount.Add(context.Background(), -1)
}

func (stats *treeStats) RecordRotation() {
	if stats == nil {
		return
	}
	stats.rotations.Add(context.Background(), 1)
}

func (stats *treeStats) RecordFixupDepth(depth int64) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.String("rbtree.fixup.depth", strconv.FormatInt(depth, 10)),
	)
	stats.fixupDepths.Record(context.Background(), depth, metric.WithAttributeSet(as))
}

func newTreeStats() *treeStats {
	return &treeStats{
		entryCount: lo.Must[metric.Int64UpDownCounter](otel.Meter(RBTreeStatsName).
			Int64UpDownCounter(
				"rbtree.entry.count",
				metric.WithDescription("The number of entries stored in the tree."),
			),
		),
		insertCount: lo.Must[metric.Int64Counter](otel.Meter(RBTreeStatsName).
			Int64Counter(
				"rbtree.insert.count",
				metric.WithDescription("The number of entries inserted into the tree."),
			),
		),
		replaceCount: lo.Must[metric.Int64Counter](otel.Meter(RBTreeStatsName).
			Int64Counter(
				"rbtree.replace.count",
				metric.WithDescription("The number of inserts that replaced an existing entry."),
			),
		),
		removeCount: lo.Must[metric.Int64Counter](otel.Meter(RBTreeStatsName).
			Int64Counter(
				"rbtree.remove.count",
				metric.WithDescription("The number of entries removed from the tree."),
			),
		),
		rotations: lo.Must[metric.Int64Counter](otel.Meter(RBTreeStatsName).
			Int64Counter(
				"rbtree.rotation.count",
				metric.WithDescription("The number of rotations performed by the rebalance."),
			),
		),
		fixupDepths: lo.Must[metric.Int64Histogram](otel.Meter(RBTreeStatsName).
			Int64Histogram(
				"rbtree.fixup.depth",
				metric.WithDescription("The loop depth of a single rebalance pass."),
			),
		),
	}
}
