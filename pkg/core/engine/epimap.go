package engine

import (
	"policysim/pkg/core/epi"
)

// Per-unit contributions of scenario interventions to compartmental model
// parameters. Each constant scales the intervention's normalized delta, so a
// program at baseline contributes nothing and one at max contributes the
// full constant.
const (
	vaccinationBetaCut      = 0.50
	cleanWaterVectorBetaCut = 0.50
	cleanWaterCommBetaCut   = 0.20
	clinicsTreatmentGain    = 0.40
	clinicsVectorTreatment  = 0.30
	telemedicineControl     = 0.40
	telemedicineMortality   = 0.25
	screeningDiagnosisGain  = 0.60
	nutritionPrevention     = 0.30
	sugarTaxPrevention      = 0.20
	tobaccoTaxPrevention    = 0.20
)

// epiIntervention translates clamped scenario levels into the perturbations
// applied to the three compartmental models on the enhanced path.
func (e *Engine) epiIntervention(levels map[string]float64) epi.IntegratedIntervention {
	delta := func(id string) float64 {
		iv, ok := e.catalog.Intervention(id)
		if !ok {
			return 0
		}
		level, ok := levels[id]
		if !ok {
			return 0
		}
		return iv.NormalizedDelta(level)
	}

	var out epi.IntegratedIntervention
	out.Communicable = epi.CommunicableIntervention{
		BetaReduction:      vaccinationBetaCut*delta("vaccination") + cleanWaterCommBetaCut*delta("clean_water"),
		TreatmentIncrease:  clinicsTreatmentGain * delta("rural_clinics"),
		MortalityReduction: telemedicineMortality * delta("telemedicine"),
	}
	out.VectorBorne = epi.VectorBorneIntervention{
		BetaReduction:     cleanWaterVectorBetaCut * delta("clean_water"),
		TreatmentIncrease: clinicsVectorTreatment * delta("rural_clinics"),
	}
	out.Chronic = epi.ChronicIntervention{
		ScreeningBoost:     screeningDiagnosisGain * delta("screening_program"),
		ControlImprovement: telemedicineControl * delta("telemedicine"),
		PreventionStrength: nutritionPrevention*delta("school_nutrition") +
			sugarTaxPrevention*delta("sugar_tax") +
			tobaccoTaxPrevention*delta("tobacco_tax"),
	}
	return out
}
