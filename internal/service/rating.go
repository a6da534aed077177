package service

import "github.com/shopspring/decimal"

// ratingPrecision is the number of fractional digits kept by AverageRating.
const ratingPrecision = 16

// AverageRating is the arithmetic mean of ratings, or zero when there are
// none.
func AverageRating(ratings []int) decimal.Decimal {
	if len(ratings) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromInt(int64(r)))
	}

	return sum.DivRound(decimal.NewFromInt(int64(len(ratings))), ratingPrecision)
}
