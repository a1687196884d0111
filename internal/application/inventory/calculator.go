package inventory

import (
	"fmt"

	"github.com/stonetrade/backend/internal/domain/costing"
	"github.com/stonetrade/backend/internal/domain/intake"
	"github.com/stonetrade/backend/internal/infrastructure/config"
)

// NewCalculator builds the shared calculator from the calculation settings.
// An empty variant name keeps the board (÷144) formula for that kind.
func NewCalculator(cfg config.CalculationConfig) (*costing.Calculator, error) {
	opts := []costing.Option{
		costing.WithAreaScale(cfg.AreaScale),
		costing.WithMoneyScale(cfg.MoneyScale),
	}
	variants := map[intake.Kind]string{
		intake.KindTodi:       cfg.TodiVariant,
		intake.KindGala:       cfg.GalaVariant,
		intake.KindTodiRaskat: cfg.TodiRaskatVariant,
	}
	for kind, name := range variants {
		if name == "" {
			continue
		}
		v, err := costing.ParseVariant(name)
		if err != nil {
			return nil, fmt.Errorf("calculation %s variant: %w", kind, err)
		}
		opts = append(opts, costing.WithVariant(string(kind), v))
	}
	return costing.NewCalculator(opts...), nil
}
