package service

import (
	"context"

	"mini-market/internal/model"

	"github.com/rs/zerolog"
)

// ruleService implements RuleService over the catalog loaded at startup.
type ruleService struct {
	rules  []model.RuleConfig
	logger zerolog.Logger
}

// NewRuleService creates a new rule service.
func NewRuleService(rules []model.RuleConfig, logger zerolog.Logger) RuleService {
	return &ruleService{
		rules:  rules,
		logger: logger.With().Str("service", "rule").Logger(),
	}
}

// GetAll returns the pricing rules the till was configured with.
func (s *ruleService) GetAll(ctx context.Context) []model.RuleConfig {
	// Copy so callers cannot mutate the active catalog
	rules := make([]model.RuleConfig, len(s.rules))
	copy(rules, s.rules)

	s.logger.Debug().Int("count", len(rules)).Msg("retrieved pricing rules")

	return rules
}
