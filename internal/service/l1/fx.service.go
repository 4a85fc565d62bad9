package l1_service

import (
	"context"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/logger"
	"wealthtrack/internal/repository"
	"wealthtrack/internal/util"
)

type FxService interface {
	// GetFxRates always returns a usable table, falling back to the static
	// one when the live source is unreachable.
	GetFxRates(ctx context.Context) domain.FxRates
}

type fxServiceHandler struct {
	FxRateRepository repository.FxRateRepository
	Cache            util.Cache[domain.FxRates]
	TtlSeconds       int
	FallbackRates    domain.FxRates
}

const fxCacheKey = "USD"

func NewFxService(fxRateRepository repository.FxRateRepository, cache util.Cache[domain.FxRates], ttlSeconds int, fallbackRates map[string]float64) FxService {
	return fxServiceHandler{
		FxRateRepository: fxRateRepository,
		Cache:            cache,
		TtlSeconds:       ttlSeconds,
		FallbackRates:    domain.FxRates(fallbackRates).Copy(),
	}
}

func (h fxServiceHandler) GetFxRates(ctx context.Context) domain.FxRates {
	log := logger.FromContext(ctx)

	if h.Cache != nil {
		if rates, ok := h.Cache.Get(fxCacheKey); ok {
			return rates.Copy()
		}
	}

	if h.FxRateRepository == nil {
		return h.FallbackRates.Copy()
	}

	live, err := h.FxRateRepository.GetLatestRates(ctx, domain.USD)
	if err != nil {
		log.Warnw("failed to get live fx rates, using fallback table", "error", err.Error())
		return h.FallbackRates.Copy()
	}

	// the static table fills currencies the live source does not quote
	rates := h.FallbackRates.Copy()
	for currency, rate := range domain.FxRates(live).Copy() {
		rates[currency] = rate
	}

	if h.Cache != nil {
		h.Cache.Set(fxCacheKey, rates, h.TtlSeconds)
	}
	return rates.Copy()
}
