package seed

import "github.com/marcelomendesnai/medpet/internal/models"

// Medications is the starter dataset used on first run and as the recovery
// fallback when a persisted snapshot cannot be parsed. Everything starts
// paused so nothing shows up as late until the caregiver opts in.
func Medications() []models.Medication {
	return []models.Medication{
		{ID: "1", SubjectName: "Sijugrino", Name: "GAVIZ 10MG", Dosage: "1/2 comprimido", FrequencyHours: 24, TimeSlots: []string{"06:00"}, Obs1: "em JEJUM", Obs2: "Dar 2ml de agua dps", PeriodDays: 10, StartDate: "2025-02-02", Status: models.MedicationPaused},
		{ID: "2", SubjectName: "Sijugrino", Name: "AGEMOXI 250MG", Dosage: "1/2 comprimido", FrequencyHours: 12, TimeSlots: []string{"06:00", "18:00"}, Obs1: "Alimentada", Obs2: "Dar 2ml de agua dps", PeriodDays: 10, StartDate: "2025-02-02", Status: models.MedicationPaused},
		{ID: "3", SubjectName: "Sijugrino", Name: "PREDSIM 3MG/ML", Dosage: "1ml", FrequencyHours: 24, TimeSlots: []string{"06:00"}, PeriodDays: 7, StartDate: "2025-02-02", Status: models.MedicationPaused},
		{ID: "4", SubjectName: "Sijugrino", Name: "Mucomucil", Dosage: "2 doses", FrequencyHours: 8, TimeSlots: []string{"08:00", "16:00", "00:00"}, PeriodDays: 30, StartDate: "2025-02-02", Status: models.MedicationPaused},
		{ID: "5", SubjectName: "Sijugrino", Name: "Promun Cat", Dosage: "1ml", FrequencyHours: 24, TimeSlots: []string{"08:00"}, PeriodDays: 30, StartDate: "2025-02-02", Status: models.MedicationPaused},
		{ID: "6", SubjectName: "Lua", Name: "ACIDO URSODESOXICOLICO", Dosage: "1 dose", FrequencyHours: 24, TimeSlots: []string{"08:00"}, PeriodDays: 30, StartDate: "2025-02-02", Status: models.MedicationPaused},
		{ID: "7", SubjectName: "Lua", Name: "SAME/SILIMAR/VIT.E", Dosage: "1 dose", FrequencyHours: 24, TimeSlots: []string{"08:00"}, PeriodDays: 30, StartDate: "2025-02-02", Status: models.MedicationPaused},
		{ID: "8", SubjectName: "Lua", Name: "MACROGARD PASTA", Dosage: "5cm", FrequencyHours: 24, TimeSlots: []string{"08:00"}, Obs2: "Na boca ou pata", PeriodDays: 30, StartDate: "2025-02-02", Status: models.MedicationPaused},
	}
}
