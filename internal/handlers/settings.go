package handlers

import (
	"net/http"

	"github.com/diewo77/indh-market/httpx"
	"github.com/diewo77/indh-market/i18n"
	"github.com/diewo77/indh-market/internal/currency"
	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/internal/settings"
	"github.com/diewo77/indh-market/validation"
)

type notificationsPatch struct {
	NewTenants     *bool `json:"newTenants"`
	LatePayments   *bool `json:"latePayments"`
	MonthlyReports *bool `json:"monthlyReports"`
}

// settingsPatch carries only the fields being changed.
type settingsPatch struct {
	Language      *string             `json:"language"`
	Currency      *string             `json:"currency"`
	Notifications *notificationsPatch `json:"notifications"`
	Animations    *bool               `json:"animations"`
	Theme         *string             `json:"theme"`
}

func (p settingsPatch) validate() error {
	v := validation.Violations{}
	if p.Language != nil {
		validation.OneOf("language", *p.Language, i18n.Supported, v)
	}
	if p.Currency != nil {
		validation.OneOf("currency", *p.Currency, currency.Codes(), v)
	}
	if p.Theme != nil {
		validation.OneOf("theme", *p.Theme, settings.Themes, v)
	}
	return domain.NewValidationError(v)
}

func GetSettings(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, AppFrom(r.Context()).Settings.Get())
}

// PatchSettings validates the whole patch, then applies it one setter at a
// time. Each setter persists.
func PatchSettings(w http.ResponseWriter, r *http.Request) {
	var p settingsPatch
	if err := httpx.DecodeJSON(r, &p); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if err := p.validate(); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	ctx := r.Context()
	st := AppFrom(ctx).Settings
	var steps []func() error
	if p.Language != nil {
		steps = append(steps, func() error { return st.SetLanguage(ctx, *p.Language) })
	}
	if p.Currency != nil {
		steps = append(steps, func() error { return st.SetCurrency(ctx, *p.Currency) })
	}
	if n := p.Notifications; n != nil {
		for key, val := range map[string]*bool{
			settings.NotifyNewTenants:     n.NewTenants,
			settings.NotifyLatePayments:   n.LatePayments,
			settings.NotifyMonthlyReports: n.MonthlyReports,
		} {
			if val != nil {
				steps = append(steps, func() error { return st.SetNotification(ctx, key, *val) })
			}
		}
	}
	if p.Animations != nil {
		steps = append(steps, func() error { return st.SetAnimations(ctx, *p.Animations) })
	}
	if p.Theme != nil {
		steps = append(steps, func() error { return st.SetTheme(ctx, settings.Theme(*p.Theme)) })
	}
	for _, step := range steps {
		if err := step(); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
	}
	httpx.JSON(w, http.StatusOK, st.Get())
}
