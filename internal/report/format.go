package report

import (
	"github.com/guregu/null/v6"

	"github.com/seenimoa/stockinfo/pkg/models"
	"github.com/seenimoa/stockinfo/pkg/utils"
)

// formatField renders a field by its kind, or the placeholder when absent.
func (r *Renderer) formatField(f models.Field) string {
	if !f.Present() {
		return r.placeholder
	}
	v := f.Number.Float64
	switch f.Kind {
	case models.KindText:
		return f.Text.String
	case models.KindDate:
		return utils.FormatDate(f.Time.Time)
	case models.KindCurrency:
		return utils.FormatCurrency(v)
	case models.KindCount:
		return utils.FormatCount(v)
	case models.KindPercent:
		return utils.FormatPercent(v)
	case models.KindBillions:
		return utils.FormatBillions(v)
	case models.KindMultiplier:
		return utils.FormatMultiplier(v)
	default:
		return utils.FormatNumber(v)
	}
}

func (r *Renderer) price(v null.Float) string {
	if !v.Valid {
		return r.placeholder
	}
	return utils.FormatNumber(v.Float64)
}

func (r *Renderer) count(v null.Int) string {
	if !v.Valid {
		return r.placeholder
	}
	return utils.FormatCount(float64(v.Int64))
}

func (r *Renderer) compact(v null.Float) string {
	if !v.Valid {
		return r.placeholder
	}
	return utils.FormatCompact(v.Float64)
}
