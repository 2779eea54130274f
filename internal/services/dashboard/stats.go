package dashboard

import (
	"fmt"

	"motoradmin/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ComputeStats derives the stat cards from the loaded collections.
func ComputeStats(users []models.UserProfile, cars []models.CarListing, requests []models.VerificationRequest) models.AdminStats {
	stats := models.AdminStats{
		TotalUsers: len(users),
		TotalCars:  len(cars),
	}
	for _, u := range users {
		if u.IsVerified {
			stats.VerifiedUsers++
		}
	}
	for _, c := range cars {
		if c.IsVerified {
			stats.VerifiedCars++
		}
		if c.IsFeatured {
			stats.FeaturedCars++
		}
		if c.IsSold {
			stats.SoldCars++
		}
		stats.TotalViews += c.ViewCount()
		stats.TotalValue += c.Price
	}
	for _, r := range requests {
		if r.Status == models.VerificationPending {
			stats.PendingVerifications++
		}
	}
	return stats
}

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders rupee amounts the way the stat cards show them:
// crores above 1e7, lakhs above 1e5, grouped digits below.
func FormatPrice(price float64) string {
	switch {
	case price >= 10000000:
		return fmt.Sprintf("₹%.2f Cr", price/10000000)
	case price >= 100000:
		return fmt.Sprintf("₹%.1f Lakh", price/100000)
	default:
		return "₹" + pricePrinter.Sprint(number.Decimal(price, number.MaxFractionDigits(3)))
	}
}
