// Package series holds the pure transforms between raw API records and
// view-ready series.
//
// # Overview
//
// Every dashboard screen derives its chart data the same way: take the raw
// day- or hour-keyed records from the coach API, aggregate or bucket them,
// and flag the entry matching the current date cursor. These transforms are
// deterministic and side-effect free, so they live here rather than in the
// screens.
//
// # Numeric semantics
//
// A few rules hold everywhere and are easy to get subtly wrong:
//
//   - WeeklyAverage over zero records reports "no data" via its ok return.
//     Zero is a valid average and must not be conflated with missing data.
//   - PercentOfGoal clamps to [0, 100] and signals "no goal" for goal <= 0
//     instead of producing Inf or NaN.
//   - BucketByHour always yields 24 slots; hours without samples are 0.
//     When several samples share an hour the BucketStrategy decides; the
//     default FirstSampleWins mirrors the upstream behavior.
//   - Sleep series flag the cursor's prior night, not the cursor day.
package series
