package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/validation"
)

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, validation.Field("validade", "formato de fecha esperado "+dto.DateLayout)
	}
	return t, nil
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
