// File: utils/constants.go
package utils

// FullDayStart and FullDayEnd are substituted for missing leave times.
const FullDayStart = "00:00"
const FullDayEnd = "23:59"

// MaxOccurrences bounds a recurrence expansion; out-of-range counts are
// clamped, not rejected.
const MaxOccurrences = 52

// FixedSplitGapDays is the gap between generated fixed-split slots.
const FixedSplitGapDays = 2
