package charter

import (
	"fmt"
	"math"

	"yachtmatch/catalog"
	"yachtmatch/models"
)

// ComputePrice calculates the final cost for a yacht from its hourly rate
// and the charter duration. Failures come back as structured payloads, not
// panics, so the pipeline can surface them to the user. The multiplication
// runs in integer cents to keep currency exact.
func ComputePrice(cat *catalog.Catalog, yachtID string, durationHr float64) (*models.PriceQuote, *models.PriceError) {
	if durationHr <= 0 {
		return nil, &models.PriceError{
			Code:    "invalidDuration",
			Message: fmt.Sprintf("charter duration must be positive, got %v", durationHr),
		}
	}

	yacht, ok := cat.YachtByID(yachtID)
	if !ok {
		return nil, &models.PriceError{
			Code:    "yachtNotFound",
			Message: fmt.Sprintf("Yacht ID %s not found.", yachtID),
		}
	}

	rateCents := math.Round(yacht.RateHr * 100)
	totalCents := math.Round(rateCents * durationHr)

	return &models.PriceQuote{
		YachtName:        yacht.YachtName,
		RatePerHour:      yacht.RateHr,
		DurationHr:       durationHr,
		TotalCharterCost: totalCents / 100,
		FoodIncluded:     yacht.FoodIncluded,
	}, nil
}
