package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Review.validate(); err != nil {
		return fmt.Errorf("review: %w", err)
	}

	if c.Finalize.URL != "" && !strings.HasPrefix(c.Finalize.URL, "http") {
		return fmt.Errorf("finalize.url must be an http(s) URL (got %q)", c.Finalize.URL)
	}
	if c.Finalize.BreakerFailureRatio <= 0 || c.Finalize.BreakerFailureRatio > 1 {
		return fmt.Errorf("finalize.breaker_failure_ratio must be in (0, 1] (got %v)", c.Finalize.BreakerFailureRatio)
	}

	if c.Assets.Enabled() && (c.Assets.AccessKey == "" || c.Assets.SecretKey == "") {
		return fmt.Errorf("assets: access_key and secret_key are required when endpoint is set")
	}

	return nil
}

func (r *ReviewConfig) validate() error {
	if r.MaxActiveClaims <= 0 {
		return fmt.Errorf("max_active_claims must be > 0 (got %d)", r.MaxActiveClaims)
	}
	if r.BulkMaxSize <= 0 {
		return fmt.Errorf("bulk_max_size must be > 0 (got %d)", r.BulkMaxSize)
	}

	amounts := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"easy_payout", r.EasyPayoutRaw, new(decimal.Decimal)},
		{"medium_payout", r.MediumPayoutRaw, new(decimal.Decimal)},
		{"hard_payout", r.HardPayoutRaw, new(decimal.Decimal)},
		{"review_fee", r.ReviewFeeRaw, &r.Rates.ReviewFee},
		{"rejection_penalty", r.RejectionPenaltyRaw, &r.Rates.RejectionPenalty},
		{"false_rejection_credit", r.CompensationRaw, &r.Rates.FalseRejectionCompensation},
	}
	for _, a := range amounts {
		v, err := decimal.NewFromString(strings.TrimSpace(a.raw))
		if err != nil {
			return fmt.Errorf("%s: invalid amount %q: %w", a.name, a.raw, err)
		}
		if v.IsNegative() {
			return fmt.Errorf("%s must be >= 0 (got %s)", a.name, v)
		}
		*a.dst = v
	}

	r.Rates.Approval = map[domain.Difficulty]decimal.Decimal{
		domain.DifficultyEasy:   *amounts[0].dst,
		domain.DifficultyMedium: *amounts[1].dst,
		domain.DifficultyHard:   *amounts[2].dst,
	}

	return nil
}
