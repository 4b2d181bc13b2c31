package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"mini-market/internal/model"

	"github.com/rs/zerolog"
)

// BuildRules constructs pricing rules from catalog entries, preserving
// catalog order. Duplicate product codes are left for NewTill to reject.
func BuildRules(configs []model.RuleConfig) ([]Rule, error) {
	rules := make([]Rule, 0, len(configs))

	for _, rc := range configs {
		rule, err := buildRule(rc)
		if err != nil {
			return nil, fmt.Errorf("invalid %s rule for product %q: %w", rc.Type, rc.Product, err)
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// buildRule maps one catalog entry through the matching rule constructor.
func buildRule(rc model.RuleConfig) (Rule, error) {
	product, err := productCode(rc.Product)
	if err != nil {
		return nil, err
	}

	switch rc.Type {
	case model.RuleTypeFlat:
		return NewFlatPrice(product, rc.UnitCost)
	case model.RuleTypeBundle:
		return NewBundlePrice(product, rc.LoneCost, rc.BundleSize, rc.BundleCost)
	default:
		return nil, model.ErrInvalidRuleType
	}
}

// productCode decodes a catalog product field into a single code.
func productCode(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, model.ErrInvalidProductCode
	}

	code, _ := utf8.DecodeRuneInString(s)
	return code, nil
}

// fileLoader implements Loader for reading rule catalogs from the local
// file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a JSON rule catalog from the local file system.
func (l *fileLoader) Load(ctx context.Context, path string) (*model.RuleCatalog, error) {
	l.logger.Info().Str("file", path).Msg("loading rule catalog")

	// Catalogs are small; a single check before reading suffices
	select {
	case <-ctx.Done():
		l.logger.Warn().Str("file", path).Msg("catalog loading cancelled")
		return nil, ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open rule catalog")
		return nil, fmt.Errorf("failed to open rule catalog %s: %w", path, err)
	}
	defer file.Close()

	var catalog model.RuleCatalog
	if err := json.NewDecoder(file).Decode(&catalog); err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode rule catalog")
		return nil, fmt.Errorf("failed to decode rule catalog %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("rules_loaded", len(catalog.Rules)).
		Msg("rule catalog loaded successfully")

	return &catalog, nil
}
